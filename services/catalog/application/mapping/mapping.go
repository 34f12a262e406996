// Package mapping converts between catalog DTOs and domain models. Every
// function is pure: it reads its inputs and returns or mutates only the
// entity it is given.
package mapping

import (
	"github.com/ghuser/productcatalog/services/catalog/application/dto"
	"github.com/ghuser/productcatalog/services/catalog/domain/models"
)

// assign overwrites *dst with conv(*src) when src is present. It is the one
// rule behind every update merge: a nil field on an update DTO means "leave
// the stored value alone".
func assign[S, D any](dst *D, src *S, conv func(S) D) {
	if src == nil {
		return
	}
	*dst = conv(*src)
}

func same[T any](v T) T { return v }

// ProductToDTO copies a product into its read view. RelatedItems stays nil.
func ProductToDTO(p *models.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ID:          p.ID,
		ProductName: p.ProductName.String(),
		CreatedBy:   p.CreatedBy,
		CreatedOn:   p.CreatedOn,
		ModifiedBy:  p.ModifiedBy,
		ModifiedOn:  p.ModifiedOn,
	}
}

// ProductsToDTO maps a list of products; the result is never nil.
func ProductsToDTO(ps []*models.Product) []dto.ProductDTO {
	out := make([]dto.ProductDTO, 0, len(ps))
	for _, p := range ps {
		out = append(out, ProductToDTO(p))
	}
	return out
}

// RelatedItemsToDTO projects items to {id, item_name, quantity}; the result
// is never nil.
func RelatedItemsToDTO(items []*models.Item) []dto.RelatedItemDTO {
	out := make([]dto.RelatedItemDTO, 0, len(items))
	for _, i := range items {
		out = append(out, dto.RelatedItemDTO{
			ID:       i.ID,
			ItemName: i.ItemName.String(),
			Quantity: i.Quantity,
		})
	}
	return out
}

// CreateProductToModel copies the request fields. ID and audit fields are
// left zero for the service and the store to fill.
func CreateProductToModel(in dto.CreateProductDTO) *models.Product {
	return &models.Product{ProductName: models.ProductName(in.ProductName)}
}

// MergeProduct applies a sparse patch to an already loaded product.
func MergeProduct(p *models.Product, in dto.UpdateProductDTO) {
	assign(&p.ProductName, in.ProductName, func(s string) models.ProductName { return models.ProductName(s) })
}

// ItemToDTO copies an item into its read view. The item's Product relation
// must be loaded for ProductName to be filled.
func ItemToDTO(i *models.Item) dto.ItemDTO {
	return dto.ItemDTO{
		ID:          i.ID,
		ProductID:   i.ProductID,
		ProductName: i.OwnerName(),
		ItemName:    i.ItemName.String(),
		Quantity:    i.Quantity,
	}
}

// ItemsToDTO maps a list of items; the result is never nil.
func ItemsToDTO(items []*models.Item) []dto.ItemDTO {
	out := make([]dto.ItemDTO, 0, len(items))
	for _, i := range items {
		out = append(out, ItemToDTO(i))
	}
	return out
}

// CreateItemToModel copies the request fields; ID is left zero.
func CreateItemToModel(in dto.CreateItemDTO) *models.Item {
	return &models.Item{
		ProductID: in.ProductID,
		ItemName:  models.ItemName(in.ItemName),
		Quantity:  in.Quantity,
	}
}

// MergeItem applies a sparse patch to an already loaded item. Moving the
// item to another product drops the loaded Product relation, which no
// longer describes the owner.
func MergeItem(i *models.Item, in dto.UpdateItemDTO) {
	if in.ProductID != nil && *in.ProductID != i.ProductID {
		i.Product = nil
	}
	assign(&i.ProductID, in.ProductID, same[int64])
	assign(&i.ItemName, in.ItemName, func(s string) models.ItemName { return models.ItemName(s) })
	assign(&i.Quantity, in.Quantity, same[int])
}
