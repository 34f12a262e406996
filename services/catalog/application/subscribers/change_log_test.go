package subscribers

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/productcatalog/pkg/events"
	"github.com/ghuser/productcatalog/pkg/logger"
	catalogevents "github.com/ghuser/productcatalog/services/catalog/domain/events"
)

func newMsg(t *testing.T, topic string, payload any) *message.Message {
	t.Helper()
	msg, err := events.NewMessage(context.Background(), topic, "evt-1", catalogevents.CurrentVersion, payload)
	if err != nil {
		t.Fatalf("new message: %v", err)
	}
	return msg
}

func TestChangeLog_Handle(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		msg  func(t *testing.T) *message.Message
		want []string
	}{
		{
			name: "product change",
			msg: func(t *testing.T) *message.Message {
				return newMsg(t, catalogevents.TopicProductUpdated, catalogevents.NewProductChanged(7, "Bolt", "bituser", at))
			},
			want: []string{`"msg":"product changed"`, `"change":"product.updated"`, `"product_id":7`, `"actor":"bituser"`},
		},
		{
			name: "item change",
			msg: func(t *testing.T) *message.Message {
				return newMsg(t, catalogevents.TopicItemCreated, catalogevents.NewItemChanged(3, 7, "Nut", 12, at))
			},
			want: []string{`"msg":"item changed"`, `"item_id":3`, `"quantity":12`},
		},
		{
			name: "unknown version",
			msg: func(t *testing.T) *message.Message {
				m := newMsg(t, catalogevents.TopicItemDeleted, struct{}{})
				m.Metadata.Set(events.MetadataVersion, "99")
				return m
			},
			want: []string{`"msg":"skipping event with unsupported version"`},
		},
		{
			name: "undecodable payload",
			msg: func(t *testing.T) *message.Message {
				return newMsg(t, catalogevents.TopicProductCreated, "not an object")
			},
			want: []string{`"msg":"undecodable product event"`},
		},
		{
			name: "unknown topic",
			msg: func(t *testing.T) *message.Message {
				return newMsg(t, "order.created", struct{}{})
			},
			want: []string{`"msg":"skipping event for unknown topic"`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := NewChangeLog(logger.NewWithWriter(&buf, "debug"))

			if err := c.Handle(context.Background(), tt.msg(t)); err != nil {
				t.Fatalf("handle must ack, got %v", err)
			}
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("log missing %s: %s", w, buf.String())
				}
			}
		})
	}
}
