package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/ghuser/productcatalog/services/catalog/domain/models"
	"github.com/ghuser/productcatalog/services/catalog/infrastructure/persistence/postgres/db"
)

// eventPublisher is satisfied by *events.EventBus.
type eventPublisher interface {
	PublishInTx(ctx context.Context, tx *sql.Tx, topic, eventID string, version int, payload any) error
}

func rowToProduct(row db.CatalogProduct) *models.Product {
	p := &models.Product{
		ID:          row.ID,
		ProductName: models.ProductName(row.ProductName),
		CreatedBy:   row.CreatedBy,
		CreatedOn:   row.CreatedOn.UTC(),
	}
	if row.ModifiedBy.Valid {
		by := row.ModifiedBy.String
		p.ModifiedBy = &by
	}
	if row.ModifiedOn.Valid {
		on := row.ModifiedOn.Time.UTC()
		p.ModifiedOn = &on
	}
	return p
}

func rowToItem(row db.CatalogItem) *models.Item {
	return &models.Item{
		ID:        row.ID,
		ProductID: row.ProductID,
		ItemName:  models.ItemName(row.ItemName),
		Quantity:  int(row.Quantity),
	}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
