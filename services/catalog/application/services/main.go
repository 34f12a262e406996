package services

import (
	"github.com/ghuser/productcatalog/pkg/app"
	"github.com/ghuser/productcatalog/services/catalog/domain/repositories"
	"github.com/ghuser/productcatalog/services/catalog/infrastructure/persistence/postgres"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Product *ProductService
	Item    *ItemService
}

// New wires the catalog services against PostgreSQL from the Application container.
func New(a *app.Application) *Services {
	return NewWithRepositories(
		postgres.NewProductRepository(a.Db, a.EventBus),
		postgres.NewItemRepository(a.Db, a.EventBus),
	)
}

// NewWithRepositories wires the catalog services against any repository
// implementation.
func NewWithRepositories(products repositories.ProductRepository, items repositories.ItemRepository) *Services {
	return &Services{
		Product: NewProductService(products),
		Item:    NewItemService(items, products),
	}
}
