package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ghuser/productcatalog/pkg/database"
	"github.com/ghuser/productcatalog/pkg/events"
	domainevents "github.com/ghuser/productcatalog/services/catalog/domain/events"
	"github.com/ghuser/productcatalog/services/catalog/domain/models"
	"github.com/ghuser/productcatalog/services/catalog/infrastructure/persistence/postgres/db"
)

// ProductRepository implements repositories.ProductRepository against PostgreSQL.
// Storage errors are wrapped with context and returned; none are translated.
type ProductRepository struct {
	db  *database.Database
	bus eventPublisher
}

// NewProductRepository returns a ProductRepository backed by the given pool.
// When bus is non-nil every mutation also writes a change event in the same
// transaction.
func NewProductRepository(database *database.Database, bus *events.EventBus) *ProductRepository {
	r := &ProductRepository{db: database}
	if bus != nil {
		r.bus = bus
	}
	return r
}

func (r *ProductRepository) GetAll(ctx context.Context) ([]*models.Product, error) {
	rows, err := db.New(r.db.DB()).ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	out := make([]*models.Product, len(rows))
	for i, row := range rows {
		out[i] = rowToProduct(row)
	}
	return out, nil
}

// GetByID returns (nil, nil) when no product has the given ID.
func (r *ProductRepository) GetByID(ctx context.Context, id int64) (*models.Product, error) {
	row, err := db.New(r.db.DB()).GetProductByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query product: %w", err)
	}
	return rowToProduct(row), nil
}

func (r *ProductRepository) Exists(ctx context.Context, id int64) (bool, error) {
	exists, err := db.New(r.db.DB()).ProductExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check product exists: %w", err)
	}
	return exists, nil
}

// Add inserts p and returns a copy carrying the generated ID.
func (r *ProductRepository) Add(ctx context.Context, p *models.Product) (*models.Product, error) {
	added := *p
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		id, err := db.New(tx).InsertProduct(ctx, db.InsertProductParams{
			ProductName: p.ProductName.String(),
			CreatedBy:   p.CreatedBy,
			CreatedOn:   p.CreatedOn,
		})
		if err != nil {
			return fmt.Errorf("insert product: %w", err)
		}
		added.ID = id
		return r.publish(ctx, tx, domainevents.TopicProductCreated, &added, p.CreatedBy)
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

// Update writes the name and modification audit columns. Creation audit
// columns are never part of the statement.
func (r *ProductRepository) Update(ctx context.Context, p *models.Product) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).UpdateProduct(ctx, db.UpdateProductParams{
			ID:          p.ID,
			ProductName: p.ProductName.String(),
			ModifiedBy:  nullString(p.ModifiedBy),
			ModifiedOn:  nullTime(p.ModifiedOn),
		})
		if err != nil {
			return fmt.Errorf("update product: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("update product %d: %w", p.ID, sql.ErrNoRows)
		}
		return r.publish(ctx, tx, domainevents.TopicProductUpdated, p, deref(p.ModifiedBy))
	})
}

// Delete removes the row; ON DELETE CASCADE removes its items. With a bus
// attached, the product row is locked first so no item can be attached
// concurrently, and every cascaded item gets its own item.deleted event.
func (r *ProductRepository) Delete(ctx context.Context, p *models.Product) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		queries := db.New(tx)
		var cascaded []db.CatalogItem
		if r.bus != nil {
			n, err := queries.LockProduct(ctx, p.ID)
			if err != nil {
				return fmt.Errorf("lock product: %w", err)
			}
			if n == 0 {
				return fmt.Errorf("delete product %d: %w", p.ID, sql.ErrNoRows)
			}
			if cascaded, err = queries.ListItemsByProductID(ctx, p.ID); err != nil {
				return fmt.Errorf("query cascaded items: %w", err)
			}
		}

		n, err := queries.DeleteProduct(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("delete product %d: %w", p.ID, sql.ErrNoRows)
		}
		for _, row := range cascaded {
			if err := publishItem(ctx, r.bus, tx, domainevents.TopicItemDeleted, rowToItem(row)); err != nil {
				return err
			}
		}
		return r.publish(ctx, tx, domainevents.TopicProductDeleted, p, "")
	})
}

// GetRelatedItems returns the product's items without their Product relation.
func (r *ProductRepository) GetRelatedItems(ctx context.Context, productID int64) ([]*models.Item, error) {
	rows, err := db.New(r.db.DB()).ListItemsByProductID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("query related items: %w", err)
	}
	out := make([]*models.Item, len(rows))
	for i, row := range rows {
		out[i] = rowToItem(row)
	}
	return out, nil
}

func (r *ProductRepository) publish(ctx context.Context, tx *sql.Tx, topic string, p *models.Product, actor string) error {
	if r.bus == nil {
		return nil
	}
	evt := domainevents.NewProductChanged(p.ID, p.ProductName.String(), actor, time.Now())
	if err := r.bus.PublishInTx(ctx, tx, topic, evt.EventID.String(), evt.Version, evt); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}
