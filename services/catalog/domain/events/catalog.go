// Package events defines the change events written to the outbox alongside
// every catalog mutation.
package events

import (
	"time"

	"github.com/google/uuid"
)

// Watermill topics for catalog change events.
const (
	TopicProductCreated = "product.created"
	TopicProductUpdated = "product.updated"
	TopicProductDeleted = "product.deleted"

	TopicItemCreated = "item.created"
	TopicItemUpdated = "item.updated"
	TopicItemDeleted = "item.deleted"
)

// CurrentVersion is the schema version stamped on every event; increment on
// breaking changes.
const CurrentVersion = 1

// Topics lists every topic the catalog publishes to, for outbox initialisation.
func Topics() []string {
	return []string{
		TopicProductCreated, TopicProductUpdated, TopicProductDeleted,
		TopicItemCreated, TopicItemUpdated, TopicItemDeleted,
	}
}

// ProductChangedEvent is published after a product row is inserted, updated
// or deleted. The topic carries the kind of change.
type ProductChangedEvent struct {
	EventID     uuid.UUID `json:"event_id"`
	Version     int       `json:"version"`
	ProductID   int64     `json:"product_id"`
	ProductName string    `json:"product_name"`
	Actor       string    `json:"actor,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// ItemChangedEvent is published after an item row is inserted, updated or
// deleted. Cascade deletes of a product's items are covered by the
// product.deleted event and publish nothing per item.
type ItemChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	Version    int       `json:"version"`
	ItemID     int64     `json:"item_id"`
	ProductID  int64     `json:"product_id"`
	ItemName   string    `json:"item_name"`
	Quantity   int       `json:"quantity"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewProductChanged builds a versioned event with a fresh ID.
func NewProductChanged(id int64, name, actor string, at time.Time) ProductChangedEvent {
	return ProductChangedEvent{
		EventID:     uuid.New(),
		Version:     CurrentVersion,
		ProductID:   id,
		ProductName: name,
		Actor:       actor,
		OccurredAt:  at.UTC(),
	}
}

// NewItemChanged builds a versioned event with a fresh ID.
func NewItemChanged(id, productID int64, name string, quantity int, at time.Time) ItemChangedEvent {
	return ItemChangedEvent{
		EventID:    uuid.New(),
		Version:    CurrentVersion,
		ItemID:     id,
		ProductID:  productID,
		ItemName:   name,
		Quantity:   quantity,
		OccurredAt: at.UTC(),
	}
}
