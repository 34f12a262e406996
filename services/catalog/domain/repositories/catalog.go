package repositories

import (
	"context"

	"github.com/ghuser/productcatalog/services/catalog/domain/models"
)

// ProductRepository is the persistence interface for products.
// The domain layer owns this interface; infrastructure implements it.
// Storage errors are returned as-is; no method translates or retries them.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]*models.Product, error)

	// GetByID returns (nil, nil) when no product has the given ID.
	GetByID(ctx context.Context, id int64) (*models.Product, error)

	Exists(ctx context.Context, id int64) (bool, error)

	// Add inserts p and returns it with the generated ID populated.
	Add(ctx context.Context, p *models.Product) (*models.Product, error)

	// Update writes the already-merged state of p.
	Update(ctx context.Context, p *models.Product) error

	// Delete removes p; its items are removed by the store's cascade.
	Delete(ctx context.Context, p *models.Product) error

	// GetRelatedItems returns the items owned by the product, without their
	// Product relation.
	GetRelatedItems(ctx context.Context, productID int64) ([]*models.Item, error)
}

// ItemRepository is the persistence interface for items. Every item returned
// by a read carries its owning Product.
type ItemRepository interface {
	GetAll(ctx context.Context) ([]*models.Item, error)

	// GetByID returns (nil, nil) when no item has the given ID.
	GetByID(ctx context.Context, id int64) (*models.Item, error)

	Exists(ctx context.Context, id int64) (bool, error)
	Add(ctx context.Context, i *models.Item) (*models.Item, error)
	Update(ctx context.Context, i *models.Item) error
	Delete(ctx context.Context, i *models.Item) error
}
