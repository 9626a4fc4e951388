package domain

import "errors"

var (
	// ErrProductNotFound is returned when the API has no product with the id.
	ErrProductNotFound = errors.New("product not found")
	// ErrProductFetch is returned for any other product fetch failure.
	ErrProductFetch = errors.New("Failed to fetch product")
	// ErrProductsFetch is returned when a listing page cannot be fetched.
	ErrProductsFetch = errors.New("Failed to fetch products")
)
