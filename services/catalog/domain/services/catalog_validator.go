// Package services contains stateless domain services for the catalog bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/ghuser/productcatalog/services/catalog/domain"
	"github.com/ghuser/productcatalog/services/catalog/domain/models"
)

// ValidateName enforces rules a name must satisfy beyond its length:
//   - Must not be only whitespace characters
//   - No control characters (Unicode category Cc)
func ValidateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("name must not be blank")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("name must not contain control characters")
		}
	}
	return nil
}

// ValidateProduct checks a product after mapping or merging and before it is
// persisted. Failures wrap domain.ErrInvalidProduct.
func ValidateProduct(p *models.Product) error {
	if p == nil {
		return fmt.Errorf("%w: product cannot be nil", domain.ErrInvalidProduct)
	}
	if _, err := models.NewProductName(p.ProductName.String()); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidProduct, err)
	}
	if err := ValidateName(p.ProductName.String()); err != nil {
		return fmt.Errorf("%w: product %w", domain.ErrInvalidProduct, err)
	}
	return nil
}

// ValidateItem checks an item after mapping or merging and before it is
// persisted. Failures wrap domain.ErrInvalidItem.
func ValidateItem(i *models.Item) error {
	if i == nil {
		return fmt.Errorf("%w: item cannot be nil", domain.ErrInvalidItem)
	}
	if i.ProductID <= 0 {
		return fmt.Errorf("%w: product_id must be positive", domain.ErrInvalidItem)
	}
	if _, err := models.NewItemName(i.ItemName.String()); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidItem, err)
	}
	if err := ValidateName(i.ItemName.String()); err != nil {
		return fmt.Errorf("%w: item %w", domain.ErrInvalidItem, err)
	}
	if i.Quantity < 0 {
		return fmt.Errorf("%w: quantity must not be negative", domain.ErrInvalidItem)
	}
	if i.Quantity > math.MaxInt32 {
		return fmt.Errorf("%w: quantity must not exceed %d", domain.ErrInvalidItem, math.MaxInt32)
	}
	return nil
}
