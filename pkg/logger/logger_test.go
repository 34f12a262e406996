package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func setupTracer(t *testing.T) {
	t.Helper()
	tp := sdktrace.NewTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
}

// records decodes every JSON line written to buf.
func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("log line %q is not JSON: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func last(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	recs := records(t, buf)
	if len(recs) == 0 {
		t.Fatal("no log records written")
	}
	return recs[len(recs)-1]
}

func TestContextMethods_AttachSpanIDs(t *testing.T) {
	setupTracer(t)
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "debug")

	ctx, span := otel.Tracer("test").Start(context.Background(), "create-product")
	defer span.End()

	log.ErrorContext(ctx, "insert failed", "error", errors.New("boom"), "product_id", int64(12))

	rec := last(t, &buf)
	if rec["trace_id"] != span.SpanContext().TraceID().String() {
		t.Errorf("trace_id: got %v", rec["trace_id"])
	}
	if rec["span_id"] != span.SpanContext().SpanID().String() {
		t.Errorf("span_id: got %v", rec["span_id"])
	}
	if rec["error"] != "boom" || rec["product_id"] != float64(12) {
		t.Errorf("attributes not preserved: %v", rec)
	}
}

func TestContextMethods_NoSpan(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&buf, "info").InfoContext(context.Background(), "startup")

	rec := last(t, &buf)
	for _, k := range []string{"trace_id", "span_id", "request_id"} {
		if _, ok := rec[k]; ok {
			t.Errorf("%s must be absent without a span or request", k)
		}
	}
}

func TestChildSpanSharesTrace(t *testing.T) {
	setupTracer(t)
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info")
	tracer := otel.Tracer("test")

	ctx, parent := tracer.Start(context.Background(), "parent")
	defer parent.End()
	log.InfoContext(ctx, "parent")
	childCtx, child := tracer.Start(ctx, "child")
	defer child.End()
	log.InfoContext(childCtx, "child")

	recs := records(t, &buf)
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0]["trace_id"] != recs[1]["trace_id"] {
		t.Error("parent and child must share a trace_id")
	}
	if recs[0]["span_id"] == recs[1]["span_id"] {
		t.Error("parent and child must have different span_ids")
	}
}

func TestWith_BindsAttributes(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info").With("component", "change_log")

	log.Info("hello")

	if rec := last(t, &buf); rec["component"] != "change_log" {
		t.Fatalf("bound attribute missing: %v", rec)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info+2", slog.LevelInfo + 2},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewWithWriter_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn")

	log.Info("dropped")
	log.Warn("kept")

	recs := records(t, &buf)
	if len(recs) != 1 || recs[0]["msg"] != "kept" {
		t.Fatalf("expected only the warn record, got %v", recs)
	}
}
