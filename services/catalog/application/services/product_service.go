package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ghuser/productcatalog/pkg/auth"
	"github.com/ghuser/productcatalog/services/catalog/application/dto"
	"github.com/ghuser/productcatalog/services/catalog/application/mapping"
	"github.com/ghuser/productcatalog/services/catalog/domain/repositories"
	domainsvcs "github.com/ghuser/productcatalog/services/catalog/domain/services"
)

// ProductService orchestrates product reads and writes. Not-found is reported
// with a false return, never an error; errors are storage faults or domain
// validation failures.
type ProductService struct {
	repo repositories.ProductRepository
	now  func() time.Time
}

// NewProductService returns a ProductService backed by repo.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{repo: repo, now: time.Now}
}

// GetAll returns every product without related items.
func (s *ProductService) GetAll(ctx context.Context) ([]dto.ProductDTO, error) {
	products, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return mapping.ProductsToDTO(products), nil
}

// GetByID returns the product with its related items attached.
func (s *ProductService) GetByID(ctx context.Context, id int64) (dto.ProductDTO, bool, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return dto.ProductDTO{}, false, fmt.Errorf("get product: %w", err)
	}
	if p == nil {
		return dto.ProductDTO{}, false, nil
	}

	related, err := s.repo.GetRelatedItems(ctx, id)
	if err != nil {
		return dto.ProductDTO{}, false, fmt.Errorf("get related items: %w", err)
	}

	out := mapping.ProductToDTO(p)
	out.RelatedItems = mapping.RelatedItemsToDTO(related)
	return out, true, nil
}

// Create stamps the creation audit fields, persists the product and returns
// the stored row.
func (s *ProductService) Create(ctx context.Context, in dto.CreateProductDTO) (dto.ProductDTO, error) {
	p := mapping.CreateProductToModel(in)
	p.StampCreated(auth.ActorFromCtx(ctx), s.now())

	if err := domainsvcs.ValidateProduct(p); err != nil {
		return dto.ProductDTO{}, err
	}

	added, err := s.repo.Add(ctx, p)
	if err != nil {
		return dto.ProductDTO{}, fmt.Errorf("add product: %w", err)
	}

	stored, err := s.repo.GetByID(ctx, added.ID)
	if err != nil {
		return dto.ProductDTO{}, fmt.Errorf("reload product: %w", err)
	}
	if stored == nil {
		return dto.ProductDTO{}, fmt.Errorf("reload product %d: row vanished after insert", added.ID)
	}
	return mapping.ProductToDTO(stored), nil
}

// Update applies a sparse patch. It returns false when the product does not exist.
func (s *ProductService) Update(ctx context.Context, id int64, in dto.UpdateProductDTO) (bool, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("get product: %w", err)
	}
	if p == nil {
		return false, nil
	}

	mapping.MergeProduct(p, in)
	p.StampModified(auth.ActorFromCtx(ctx), s.now())

	if err := domainsvcs.ValidateProduct(p); err != nil {
		return false, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return false, fmt.Errorf("update product: %w", err)
	}
	return true, nil
}

// Delete removes the product and, through the store's cascade, its items.
// It returns false when the product does not exist.
func (s *ProductService) Delete(ctx context.Context, id int64) (bool, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return false, fmt.Errorf("get product: %w", err)
	}
	if p == nil {
		return false, nil
	}
	if err := s.repo.Delete(ctx, p); err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return true, nil
}
