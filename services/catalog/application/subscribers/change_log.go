// Package subscribers consumes catalog change events from the outbox.
package subscribers

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/productcatalog/pkg/events"
	"github.com/ghuser/productcatalog/pkg/logger"
	catalogevents "github.com/ghuser/productcatalog/services/catalog/domain/events"
)

// ChangeLog writes one structured audit record per catalog change event.
type ChangeLog struct {
	log logger.Logger
}

// NewChangeLog returns a ChangeLog writing to log.
func NewChangeLog(log logger.Logger) *ChangeLog {
	return &ChangeLog{log: log.With("component", "change_log")}
}

// Handle is an events.Handler. Undecodable or unknown-version messages are
// logged and acked; redelivering them cannot succeed.
func (c *ChangeLog) Handle(ctx context.Context, msg *message.Message) error {
	topic := msg.Metadata.Get(events.MetadataEventType)
	version, err := strconv.Atoi(msg.Metadata.Get(events.MetadataVersion))
	if err != nil || version != catalogevents.CurrentVersion {
		c.log.WarnContext(ctx, "skipping event with unsupported version",
			"event_id", msg.UUID, "topic", topic, "version", msg.Metadata.Get(events.MetadataVersion))
		return nil
	}

	switch topic {
	case catalogevents.TopicProductCreated, catalogevents.TopicProductUpdated, catalogevents.TopicProductDeleted:
		var evt catalogevents.ProductChangedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			c.log.ErrorContext(ctx, "undecodable product event", "event_id", msg.UUID, "topic", topic, "error", err)
			return nil
		}
		c.log.InfoContext(ctx, "product changed",
			"event_id", evt.EventID,
			"change", topic,
			"product_id", evt.ProductID,
			"product_name", evt.ProductName,
			"actor", evt.Actor,
			"occurred_at", evt.OccurredAt,
		)
	case catalogevents.TopicItemCreated, catalogevents.TopicItemUpdated, catalogevents.TopicItemDeleted:
		var evt catalogevents.ItemChangedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			c.log.ErrorContext(ctx, "undecodable item event", "event_id", msg.UUID, "topic", topic, "error", err)
			return nil
		}
		c.log.InfoContext(ctx, "item changed",
			"event_id", evt.EventID,
			"change", topic,
			"item_id", evt.ItemID,
			"product_id", evt.ProductID,
			"item_name", evt.ItemName,
			"quantity", evt.Quantity,
			"occurred_at", evt.OccurredAt,
		)
	default:
		c.log.WarnContext(ctx, "skipping event for unknown topic", "event_id", msg.UUID, "topic", topic)
	}
	return nil
}
