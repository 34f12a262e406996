// Package events writes domain change events to a PostgreSQL outbox built on
// Watermill's SQL transport.
//
// Events are published through a publisher bound to the caller's *sql.Tx, so
// a row change and its event commit or roll back together. Consumers read the
// watermill_<topic> tables through Subscribe, which tracks offsets per
// consumer group.
//
// OTel context propagation: trace context is injected into message metadata
// on publish and restored in Subscribe, so a consumer continues the span tree.
package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	watermillsql "github.com/ThreeDotsLabs/watermill-sql/v3/pkg/sql"
	"github.com/ThreeDotsLabs/watermill/message"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"

	"github.com/ghuser/productcatalog/pkg/logger"
)

// Metadata keys set on every outbox message.
const (
	MetadataEventType = "event_type"
	MetadataVersion   = "event_version"
)

// EventBus owns the outbox schema and hands out transaction-bound publishers.
type EventBus struct {
	db         *sql.DB
	subscriber *watermillsql.Subscriber
	log        logger.Logger
	wg         sync.WaitGroup
}

// NewEventBus returns an EventBus over db. consumerGroup names the offsets
// row used when the topic tables are initialised.
func NewEventBus(db *sql.DB, consumerGroup string, log logger.Logger) (*EventBus, error) {
	sub, err := watermillsql.NewSubscriber(
		db,
		watermillsql.SubscriberConfig{
			SchemaAdapter:    watermillsql.DefaultPostgreSQLSchema{},
			OffsetsAdapter:   watermillsql.DefaultPostgreSQLOffsetsAdapter{},
			InitializeSchema: true,
			ConsumerGroup:    consumerGroup,
		},
		&slogAdapter{log: log},
	)
	if err != nil {
		return nil, fmt.Errorf("events: new subscriber: %w", err)
	}
	return &EventBus{db: db, subscriber: sub, log: log}, nil
}

// InitializeTopics creates the message and offset tables for every topic.
// Transaction-bound publishers never create tables, so call this at startup.
func (q *EventBus) InitializeTopics(topics ...string) error {
	for _, topic := range topics {
		if err := q.subscriber.SubscribeInitialize(topic); err != nil {
			return fmt.Errorf("events: initialize %s: %w", topic, err)
		}
	}
	return nil
}

// NewTxPublisher returns a Publisher bound to the given *sql.Tx.
// All Publish calls on the returned publisher execute within that transaction.
//
// AutoInitializeSchema is false: tables exist after InitializeTopics.
func (q *EventBus) NewTxPublisher(tx *sql.Tx) (message.Publisher, error) {
	pub, err := watermillsql.NewPublisher(
		tx,
		watermillsql.PublisherConfig{
			SchemaAdapter:        watermillsql.DefaultPostgreSQLSchema{},
			AutoInitializeSchema: false,
		},
		&slogAdapter{log: q.log},
	)
	if err != nil {
		return nil, fmt.Errorf("events: new tx publisher: %w", err)
	}
	return pub, nil
}

// PublishInTx JSON-encodes payload and writes it to topic inside tx.
func (q *EventBus) PublishInTx(ctx context.Context, tx *sql.Tx, topic, eventID string, version int, payload any) error {
	msg, err := NewMessage(ctx, topic, eventID, version, payload)
	if err != nil {
		return err
	}
	pub, err := q.NewTxPublisher(tx)
	if err != nil {
		return err
	}
	if err := pub.Publish(topic, msg); err != nil {
		return fmt.Errorf("events: publish to %s: %w", topic, err)
	}
	return nil
}

// NewMessage builds an outbox message keyed by eventID. The trace context of
// ctx is injected into the metadata.
func NewMessage(ctx context.Context, topic, eventID string, version int, payload any) (*message.Message, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("events: marshal %s payload: %w", topic, err)
	}

	msg := message.NewMessage(eventID, data)
	msg.SetContext(ctx)
	msg.Metadata.Set(MetadataEventType, topic)
	msg.Metadata.Set(MetadataVersion, fmt.Sprint(version))

	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for k, v := range carrier {
		msg.Metadata.Set(k, v)
	}
	return msg, nil
}

// DB returns the pool the outbox lives in.
func (q *EventBus) DB() *sql.DB {
	return q.db
}

// Ping checks the outbox database connection health.
func (q *EventBus) Ping(ctx context.Context) error {
	if err := q.db.PingContext(ctx); err != nil {
		return fmt.Errorf("events: ping db: %w", err)
	}
	return nil
}

// Close stops the subscriber and waits up to shutdownTimeout for in-flight
// handlers. The database pool belongs to the caller.
func (q *EventBus) Close() error {
	if err := q.subscriber.Close(); err != nil {
		return fmt.Errorf("events: close subscriber: %w", err)
	}

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(shutdownTimeout):
		q.log.Error("events: timed out waiting for in-flight handlers to complete")
	}
	return nil
}

// slogAdapter bridges logger.Logger to watermill.LoggerAdapter.
type slogAdapter struct{ log logger.Logger }

func (a *slogAdapter) Error(msg string, err error, fields watermill.LogFields) {
	a.log.Error(msg, append(fieldsToArgs(fields), "error", err)...)
}
func (a *slogAdapter) Info(msg string, fields watermill.LogFields) {
	a.log.Info(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Debug(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) Trace(msg string, fields watermill.LogFields) {
	a.log.Debug(msg, fieldsToArgs(fields)...)
}
func (a *slogAdapter) With(fields watermill.LogFields) watermill.LoggerAdapter {
	return &slogAdapter{log: a.log.With(fieldsToArgs(fields)...)}
}

func fieldsToArgs(fields watermill.LogFields) []any {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return args
}
