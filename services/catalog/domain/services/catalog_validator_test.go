package services

import (
	"errors"
	"strings"
	"testing"

	"github.com/ghuser/productcatalog/services/catalog/domain"
	"github.com/ghuser/productcatalog/services/catalog/domain/models"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid name", "Garden Hose", false},
		{"special chars", "Hose-25m_#1", false},
		{"surrounding spaces are kept", " Hose ", false},
		{"only whitespace", "   ", true},
		{"tab character", "Hose\tReel", true},
		{"null byte", "Hose\x00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ValidateName(%q) error = %v, wantErr = %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateProduct(t *testing.T) {
	tests := []struct {
		name    string
		product *models.Product
		wantErr bool
	}{
		{"valid", &models.Product{ProductName: "Hose"}, false},
		{"nil", nil, true},
		{"empty name", &models.Product{}, true},
		{"blank name", &models.Product{ProductName: "  "}, true},
		{"name too long", &models.Product{ProductName: models.ProductName(strings.Repeat("x", 256))}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProduct(tt.product)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr = %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidProduct) {
				t.Fatalf("expected ErrInvalidProduct, got %v", err)
			}
		})
	}
}

func TestValidateItem(t *testing.T) {
	valid := func() *models.Item {
		return &models.Item{ProductID: 1, ItemName: "Nozzle", Quantity: 0}
	}

	tests := []struct {
		name    string
		mutate  func(*models.Item)
		wantErr bool
	}{
		{"valid with zero quantity", func(*models.Item) {}, false},
		{"missing product", func(i *models.Item) { i.ProductID = 0 }, true},
		{"negative quantity", func(i *models.Item) { i.Quantity = -1 }, true},
		{"quantity beyond column range", func(i *models.Item) { i.Quantity = 1 << 31 }, true},
		{"empty name", func(i *models.Item) { i.ItemName = "" }, true},
		{"control char in name", func(i *models.Item) { i.ItemName = "a\nb" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := valid()
			tt.mutate(item)
			err := ValidateItem(item)
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr = %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, domain.ErrInvalidItem) {
				t.Fatalf("expected ErrInvalidItem, got %v", err)
			}
		})
	}

	if err := ValidateItem(nil); !errors.Is(err, domain.ErrInvalidItem) {
		t.Fatalf("nil item: expected ErrInvalidItem, got %v", err)
	}
}
