package domain

// Product is a catalog entry as served by the storefront API. It is
// read-only on this side; the API is the source of truth.
type Product struct {
	// ID is the unique product identifier.
	ID int `json:"product_id"`
	// Name is the display name.
	Name string `json:"product_name"`
	// Price is the unit price, never negative.
	Price float64 `json:"price"`
	// Image is the URL of the product photo.
	Image string `json:"product_image"`
	// InStock reports whether the product can ship now.
	InStock bool `json:"in_stock"`
}

// DefaultPageSize is the page size used when a caller does not ask for one.
const DefaultPageSize = 10

// MaxPageSize bounds caller-supplied page sizes.
const MaxPageSize = 100

// ProductPage is one page of the product listing.
type ProductPage struct {
	Items      []Product `json:"items"`
	Total      int       `json:"total"`
	Page       int       `json:"page"`
	TotalPages int       `json:"total_pages"`
	HasNext    bool      `json:"has_next"`
	HasPrev    bool      `json:"has_prev"`
}

// NormalizePaging applies defaults and bounds to listing parameters.
func NormalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return page, limit
}
