package services

import (
	"context"
	"fmt"

	"github.com/ghuser/productcatalog/services/catalog/application/dto"
	"github.com/ghuser/productcatalog/services/catalog/application/mapping"
	catalogdomain "github.com/ghuser/productcatalog/services/catalog/domain"
	"github.com/ghuser/productcatalog/services/catalog/domain/repositories"
	domainsvcs "github.com/ghuser/productcatalog/services/catalog/domain/services"
)

// ItemService orchestrates item reads and writes. Item reads always carry the
// owning product's name, so every write is followed by a re-read where the
// caller needs the view.
type ItemService struct {
	items    repositories.ItemRepository
	products repositories.ProductRepository
}

// NewItemService returns an ItemService. products is used for existence
// checks on the referenced product.
func NewItemService(items repositories.ItemRepository, products repositories.ProductRepository) *ItemService {
	return &ItemService{items: items, products: products}
}

// GetAll returns every item with its product name.
func (s *ItemService) GetAll(ctx context.Context) ([]dto.ItemDTO, error) {
	items, err := s.items.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return mapping.ItemsToDTO(items), nil
}

// GetByID returns the item, or false when it does not exist.
func (s *ItemService) GetByID(ctx context.Context, id int64) (dto.ItemDTO, bool, error) {
	i, err := s.items.GetByID(ctx, id)
	if err != nil {
		return dto.ItemDTO{}, false, fmt.Errorf("get item: %w", err)
	}
	if i == nil {
		return dto.ItemDTO{}, false, nil
	}
	return mapping.ItemToDTO(i), true, nil
}

// Create persists the item and returns it re-read with its product joined,
// which is the only way ProductName is correct.
func (s *ItemService) Create(ctx context.Context, in dto.CreateItemDTO) (dto.ItemDTO, error) {
	i := mapping.CreateItemToModel(in)
	if err := domainsvcs.ValidateItem(i); err != nil {
		return dto.ItemDTO{}, err
	}
	if err := s.requireProduct(ctx, i.ProductID); err != nil {
		return dto.ItemDTO{}, err
	}

	added, err := s.items.Add(ctx, i)
	if err != nil {
		return dto.ItemDTO{}, fmt.Errorf("add item: %w", err)
	}

	stored, err := s.items.GetByID(ctx, added.ID)
	if err != nil {
		return dto.ItemDTO{}, fmt.Errorf("reload item: %w", err)
	}
	if stored == nil {
		return dto.ItemDTO{}, fmt.Errorf("reload item %d: row vanished after insert", added.ID)
	}
	return mapping.ItemToDTO(stored), nil
}

// Update applies a sparse patch. It returns false when the item does not exist.
func (s *ItemService) Update(ctx context.Context, id int64, in dto.UpdateItemDTO) (bool, error) {
	i, err := s.items.GetByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("get item: %w", err)
	}
	if i == nil {
		return false, nil
	}

	moved := in.ProductID != nil && *in.ProductID != i.ProductID
	mapping.MergeItem(i, in)

	if err := domainsvcs.ValidateItem(i); err != nil {
		return false, err
	}
	if moved {
		if err := s.requireProduct(ctx, i.ProductID); err != nil {
			return false, err
		}
	}
	if err := s.items.Update(ctx, i); err != nil {
		return false, fmt.Errorf("update item: %w", err)
	}
	return true, nil
}

// Delete removes the item. It returns false when the item does not exist.
func (s *ItemService) Delete(ctx context.Context, id int64) (bool, error) {
	i, err := s.items.GetByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("get item: %w", err)
	}
	if i == nil {
		return false, nil
	}
	if err := s.items.Delete(ctx, i); err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	return true, nil
}

func (s *ItemService) requireProduct(ctx context.Context, productID int64) error {
	ok, err := s.products.Exists(ctx, productID)
	if err != nil {
		return fmt.Errorf("check product: %w", err)
	}
	if !ok {
		return fmt.Errorf("%w: %d", catalogdomain.ErrUnknownProduct, productID)
	}
	return nil
}
