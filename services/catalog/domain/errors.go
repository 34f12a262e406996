package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
// Not-found is never an error here: services report it with a boolean.
var (
	// ErrInvalidProduct indicates a product violates domain constraints.
	ErrInvalidProduct = errors.New("invalid product")

	// ErrInvalidItem indicates an item violates domain constraints.
	ErrInvalidItem = errors.New("invalid item")

	// ErrUnknownProduct indicates an item references a product that does not exist.
	ErrUnknownProduct = errors.New("referenced product does not exist")
)
