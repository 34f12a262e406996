// Package dto holds the wire-level request and response shapes of the
// catalog API.
package dto

import "time"

// ProductDTO is the read view of a product. RelatedItems is only filled by a
// get-by-id read; lists and create responses leave it null.
type ProductDTO struct {
	ID           int64            `json:"id"            example:"1"`
	ProductName  string           `json:"product_name"  example:"Garden Hose"`
	CreatedBy    string           `json:"created_by"    example:"bituser"`
	CreatedOn    time.Time        `json:"created_on"    example:"2024-01-15T10:30:00Z"`
	ModifiedBy   *string          `json:"modified_by"   example:"bituser"`
	ModifiedOn   *time.Time       `json:"modified_on"   example:"2024-01-16T08:00:00Z"`
	RelatedItems []RelatedItemDTO `json:"related_items"`
} // @name Product

// RelatedItemDTO is the reduced item projection embedded in a product read.
type RelatedItemDTO struct {
	ID       int64  `json:"id"        example:"10"`
	ItemName string `json:"item_name" example:"Nozzle"`
	Quantity int    `json:"quantity"  example:"4"`
} // @name RelatedItem

// CreateProductDTO is the request body for POST /products.
type CreateProductDTO struct {
	ProductName string `json:"product_name" validate:"required,notblank,nocontrol,max=255" example:"Garden Hose"`
} // @name CreateProduct

// UpdateProductDTO is the request body for PUT /products/{id}. Omitted or
// null fields leave the stored value untouched.
type UpdateProductDTO struct {
	ProductName *string `json:"product_name" validate:"omitempty,notblank,nocontrol,max=255" example:"Garden Hose 25m"`
} // @name UpdateProduct
