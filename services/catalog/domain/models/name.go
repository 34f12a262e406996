package models

import (
	"fmt"
	"unicode/utf8"
)

const (
	minNameLength = 1
	maxNameLength = 255
)

// checkName enforces 1 <= characters <= 255. Length is counted in runes to
// match the VARCHAR(255) column, which counts characters, not bytes.
func checkName(kind, s string) error {
	n := utf8.RuneCountInString(s)
	if n < minNameLength {
		return fmt.Errorf("%s name must be at least %d character", kind, minNameLength)
	}
	if n > maxNameLength {
		return fmt.Errorf("%s name must not exceed %d characters", kind, maxNameLength)
	}
	return nil
}

// ProductName is a value object representing a valid product name.
type ProductName string

// NewProductName constructs a valid ProductName or returns an error if constraints are violated.
func NewProductName(s string) (ProductName, error) {
	if err := checkName("product", s); err != nil {
		return "", err
	}
	return ProductName(s), nil
}

// String returns the underlying string value.
func (n ProductName) String() string {
	return string(n)
}

// ItemName is a value object representing a valid item name.
type ItemName string

// NewItemName constructs a valid ItemName or returns an error if constraints are violated.
func NewItemName(s string) (ItemName, error) {
	if err := checkName("item", s); err != nil {
		return "", err
	}
	return ItemName(s), nil
}

// String returns the underlying string value.
func (n ItemName) String() string {
	return string(n)
}
