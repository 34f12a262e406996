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

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
// Every read joins catalog.products so the owning product is loaded.
type ItemRepository struct {
	db  *database.Database
	bus eventPublisher
}

// NewItemRepository returns an ItemRepository backed by the given pool.
// When bus is non-nil every mutation also writes a change event in the same
// transaction.
func NewItemRepository(database *database.Database, bus *events.EventBus) *ItemRepository {
	r := &ItemRepository{db: database}
	if bus != nil {
		r.bus = bus
	}
	return r
}

func (r *ItemRepository) GetAll(ctx context.Context) ([]*models.Item, error) {
	rows, err := db.New(r.db.DB()).ListItemsWithProduct(ctx)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	out := make([]*models.Item, len(rows))
	for i, row := range rows {
		item := rowToItem(db.CatalogItem{ID: row.ID, ProductID: row.ProductID, ItemName: row.ItemName, Quantity: row.Quantity})
		item.Product = rowToProduct(row.CatalogProduct)
		out[i] = item
	}
	return out, nil
}

// GetByID returns (nil, nil) when no item has the given ID.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	row, err := db.New(r.db.DB()).GetItemWithProduct(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query item: %w", err)
	}
	item := rowToItem(db.CatalogItem{ID: row.ID, ProductID: row.ProductID, ItemName: row.ItemName, Quantity: row.Quantity})
	item.Product = rowToProduct(row.CatalogProduct)
	return item, nil
}

func (r *ItemRepository) Exists(ctx context.Context, id int64) (bool, error) {
	exists, err := db.New(r.db.DB()).ItemExists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("check item exists: %w", err)
	}
	return exists, nil
}

// Add inserts i and returns a copy carrying the generated ID. A missing
// product surfaces as the driver's foreign key error.
func (r *ItemRepository) Add(ctx context.Context, i *models.Item) (*models.Item, error) {
	added := *i
	added.Product = nil
	err := r.db.WithTx(ctx, func(tx *sql.Tx) error {
		id, err := db.New(tx).InsertItem(ctx, db.InsertItemParams{
			ProductID: i.ProductID,
			ItemName:  i.ItemName.String(),
			Quantity:  int32(i.Quantity),
		})
		if err != nil {
			return fmt.Errorf("insert item: %w", err)
		}
		added.ID = id
		return r.publish(ctx, tx, domainevents.TopicItemCreated, &added)
	})
	if err != nil {
		return nil, err
	}
	return &added, nil
}

func (r *ItemRepository) Update(ctx context.Context, i *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).UpdateItem(ctx, db.UpdateItemParams{
			ID:        i.ID,
			ProductID: i.ProductID,
			ItemName:  i.ItemName.String(),
			Quantity:  int32(i.Quantity),
		})
		if err != nil {
			return fmt.Errorf("update item: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("update item %d: %w", i.ID, sql.ErrNoRows)
		}
		return r.publish(ctx, tx, domainevents.TopicItemUpdated, i)
	})
}

func (r *ItemRepository) Delete(ctx context.Context, i *models.Item) error {
	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		n, err := db.New(tx).DeleteItem(ctx, i.ID)
		if err != nil {
			return fmt.Errorf("delete item: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("delete item %d: %w", i.ID, sql.ErrNoRows)
		}
		return r.publish(ctx, tx, domainevents.TopicItemDeleted, i)
	})
}

func (r *ItemRepository) publish(ctx context.Context, tx *sql.Tx, topic string, i *models.Item) error {
	return publishItem(ctx, r.bus, tx, topic, i)
}

func publishItem(ctx context.Context, bus eventPublisher, tx *sql.Tx, topic string, i *models.Item) error {
	if bus == nil {
		return nil
	}
	evt := domainevents.NewItemChanged(i.ID, i.ProductID, i.ItemName.String(), i.Quantity, time.Now())
	if err := bus.PublishInTx(ctx, tx, topic, evt.EventID.String(), evt.Version, evt); err != nil {
		return fmt.Errorf("publish %s: %w", topic, err)
	}
	return nil
}
