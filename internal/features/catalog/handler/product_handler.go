package handler

import (
	"errors"
	"net/http"

	"storefront/internal/core/httperr"
	"storefront/internal/core/logger"
	"storefront/internal/features/catalog/domain"
	"storefront/internal/features/catalog/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ProductHandler handles HTTP requests related to the catalog.
type ProductHandler struct {
	// service is the ProductService instance.
	service *service.ProductService
}

// NewProductHandler creates a new instance of ProductHandler.
func NewProductHandler(s *service.ProductService) *ProductHandler {
	return &ProductHandler{
		service: s,
	}
}

// ListProducts handles GET /products.
// @Summary List products
// @Description Returns one page of the catalog.
// @Tags Catalog
// @Produce json
// @Param page query int false "Page number, 1-based" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} domain.ProductPage
// @Failure 502 {object} httperr.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", domain.DefaultPageSize)

	result, err := h.service.ListProducts(c.UserContext(), page, limit)
	if err != nil {
		logger.Get().Error("Failed to list products",
			zap.Int("page", page),
			zap.Int("limit", limit),
			zap.String("ray_id", httperr.RayID(c)),
			zap.Error(err),
		)
		return httperr.Respond(c, http.StatusBadGateway, domain.ErrProductsFetch.Error())
	}

	return c.Status(http.StatusOK).JSON(result)
}

// GetProduct handles GET /products/:id.
// @Summary Get product by ID
// @Description Fetch a single product including its stock flag.
// @Tags Catalog
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 400 {object} httperr.ErrorResponse
// @Failure 404 {object} httperr.ErrorResponse
// @Failure 502 {object} httperr.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return httperr.Respond(c, http.StatusBadRequest, "Product ID must be a positive integer")
	}

	product, err := h.service.GetProduct(c.UserContext(), id)
	if err != nil {
		logger.Get().Error("Failed to fetch product",
			zap.Int("product_id", id),
			zap.String("ray_id", httperr.RayID(c)),
			zap.Error(err),
		)

		if errors.Is(err, domain.ErrProductNotFound) {
			return httperr.Respond(c, http.StatusNotFound, "Product not found")
		}
		return httperr.Respond(c, http.StatusBadGateway, domain.ErrProductFetch.Error())
	}

	return c.Status(http.StatusOK).JSON(product)
}
