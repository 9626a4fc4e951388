package handler

import (
	"errors"
	"net/http"

	"storefront/internal/core/httperr"
	"storefront/internal/core/logger"
	"storefront/internal/features/cart/domain"
	"storefront/internal/features/cart/service"
	catalogdomain "storefront/internal/features/catalog/domain"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CartHandler handles HTTP requests for shopper carts.
type CartHandler struct {
	service *service.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(s *service.CartService) *CartHandler {
	return &CartHandler{
		service: s,
	}
}

// AddItemRequest represents the request body for adding a product.
type AddItemRequest struct {
	ProductID int `json:"product_id"`
}

// SetQuantityRequest represents the request body for changing a quantity.
type SetQuantityRequest struct {
	// Quantity below 1 removes the line.
	Quantity int `json:"quantity"`
}

// Create handles POST /carts.
// @Summary Create a cart
// @Description Starts a new empty in-memory cart.
// @Tags Cart
// @Produce json
// @Success 201 {object} domain.View
// @Router /carts [post]
func (h *CartHandler) Create(c *fiber.Ctx) error {
	view := h.service.Create(c.UserContext())
	return c.Status(http.StatusCreated).JSON(view)
}

// Get handles GET /carts/:id.
// @Summary Get a cart
// @Tags Cart
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} domain.View
// @Failure 404 {object} httperr.ErrorResponse
// @Router /carts/{id} [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	view, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// Delete handles DELETE /carts/:id.
// @Summary Delete a cart
// @Tags Cart
// @Param id path string true "Cart ID"
// @Success 204
// @Failure 404 {object} httperr.ErrorResponse
// @Router /carts/{id} [delete]
func (h *CartHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.respondError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// AddItem handles POST /carts/:id/items.
// @Summary Add a product to a cart
// @Description Adds one unit; a product already in the cart has its quantity incremented.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param item body AddItemRequest true "Product to add"
// @Success 200 {object} domain.View
// @Failure 400 {object} httperr.ErrorResponse
// @Failure 404 {object} httperr.ErrorResponse
// @Failure 502 {object} httperr.ErrorResponse
// @Router /carts/{id}/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.Respond(c, http.StatusBadRequest, "Invalid request body")
	}

	view, err := h.service.AddProduct(c.UserContext(), c.Params("id"), req.ProductID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// SetQuantity handles PUT /carts/:id/items/:productId.
// @Summary Set a line quantity
// @Description Overwrites the quantity; a quantity below 1 removes the line.
// @Tags Cart
// @Accept json
// @Produce json
// @Param id path string true "Cart ID"
// @Param productId path int true "Product ID"
// @Param quantity body SetQuantityRequest true "New quantity"
// @Success 200 {object} domain.View
// @Failure 400 {object} httperr.ErrorResponse
// @Failure 404 {object} httperr.ErrorResponse
// @Router /carts/{id}/items/{productId} [put]
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil {
		return httperr.Respond(c, http.StatusBadRequest, "Product ID must be an integer")
	}

	var req SetQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return httperr.Respond(c, http.StatusBadRequest, "Invalid request body")
	}

	view, err := h.service.SetQuantity(c.UserContext(), c.Params("id"), productID, req.Quantity)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// RemoveItem handles DELETE /carts/:id/items/:productId.
// @Summary Remove a product from a cart
// @Description Removing a product that is not in the cart is a no-op.
// @Tags Cart
// @Produce json
// @Param id path string true "Cart ID"
// @Param productId path int true "Product ID"
// @Success 200 {object} domain.View
// @Failure 400 {object} httperr.ErrorResponse
// @Failure 404 {object} httperr.ErrorResponse
// @Router /carts/{id}/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	productID, err := c.ParamsInt("productId")
	if err != nil {
		return httperr.Respond(c, http.StatusBadRequest, "Product ID must be an integer")
	}

	view, err := h.service.Remove(c.UserContext(), c.Params("id"), productID)
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// Clear handles DELETE /carts/:id/items.
// @Summary Empty a cart
// @Tags Cart
// @Produce json
// @Param id path string true "Cart ID"
// @Success 200 {object} domain.View
// @Failure 404 {object} httperr.ErrorResponse
// @Router /carts/{id}/items [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	view, err := h.service.Clear(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(view)
}

// Checkout handles GET /carts/:id/checkout.
// @Summary Check whether a cart can proceed to checkout
// @Description Validates the pincode, resolves its carrier and evaluates delivery for every line.
// @Tags Cart
// @Produce json
// @Param id path string true "Cart ID"
// @Param pincode query string true "Six-digit pincode"
// @Success 200 {object} service.Checkout
// @Failure 404 {object} httperr.ErrorResponse
// @Router /carts/{id}/checkout [get]
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	result, err := h.service.Checkout(c.UserContext(), c.Params("id"), c.Query("pincode"))
	if err != nil {
		return h.respondError(c, err)
	}
	return c.Status(http.StatusOK).JSON(result)
}

func (h *CartHandler) respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrCartNotFound):
		return httperr.Respond(c, http.StatusNotFound, "Cart not found")
	case errors.Is(err, service.ErrInvalidProductID):
		return httperr.Respond(c, http.StatusBadRequest, "Product ID must be a positive integer")
	case errors.Is(err, catalogdomain.ErrProductNotFound):
		return httperr.Respond(c, http.StatusNotFound, "Product not found")
	}

	logger.Get().Error("Cart operation failed",
		zap.String("cart_id", c.Params("id")),
		zap.String("ray_id", httperr.RayID(c)),
		zap.Error(err),
	)
	return httperr.Respond(c, http.StatusBadGateway, catalogdomain.ErrProductFetch.Error())
}
