package httpx_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ghuser/productcatalog/pkg/httpx"
)

type pingFunc func(context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

var (
	up   = pingFunc(func(context.Context) error { return nil })
	down = pingFunc(func(context.Context) error { return errors.New("conn refused") })
)

func TestHealthHandler(t *testing.T) {
	tests := []struct {
		name       string
		probes     []httpx.Probe
		wantStatus int
		wantBody   string
		wantChecks map[string]string
	}{
		{
			name:       "all reachable",
			probes:     []httpx.Probe{{Name: "database", Pinger: up}, {Name: "outbox", Pinger: up}},
			wantStatus: http.StatusOK,
			wantBody:   "ok",
			wantChecks: map[string]string{"database": "ok", "outbox": "ok"},
		},
		{
			name:       "database down",
			probes:     []httpx.Probe{{Name: "database", Pinger: down}, {Name: "outbox", Pinger: up}},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "degraded",
			wantChecks: map[string]string{"database": "unreachable", "outbox": "ok"},
		},
		{
			name:       "outbox not wired",
			probes:     []httpx.Probe{{Name: "database", Pinger: up}, {Name: "outbox"}},
			wantStatus: http.StatusServiceUnavailable,
			wantBody:   "degraded",
			wantChecks: map[string]string{"database": "ok", "outbox": "unconfigured"},
		},
		{
			name:       "no probes",
			wantStatus: http.StatusOK,
			wantBody:   "ok",
			wantChecks: map[string]string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			httpx.HealthHandler("1.2.3", tt.probes...).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

			if rr.Code != tt.wantStatus {
				t.Fatalf("status: got %d, want %d", rr.Code, tt.wantStatus)
			}
			var report httpx.HealthReport
			if err := json.NewDecoder(rr.Body).Decode(&report); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if report.Status != tt.wantBody || report.Version != "1.2.3" {
				t.Errorf("unexpected report: %+v", report)
			}
			if len(report.Checks) != len(tt.wantChecks) {
				t.Fatalf("checks: got %v, want %v", report.Checks, tt.wantChecks)
			}
			for k, v := range tt.wantChecks {
				if report.Checks[k] != v {
					t.Errorf("%s: got %q, want %q", k, report.Checks[k], v)
				}
			}
		})
	}
}

func TestHealthHandler_ProbesShareDeadline(t *testing.T) {
	var sawDeadline bool
	probe := pingFunc(func(ctx context.Context) error {
		_, sawDeadline = ctx.Deadline()
		return nil
	})

	rr := httptest.NewRecorder()
	httpx.HealthHandler("", httpx.Probe{Name: "database", Pinger: probe}).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", http.NoBody))

	if !sawDeadline {
		t.Fatal("probe context has no deadline")
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json; charset=utf-8" {
		t.Errorf("Content-Type: got %q", ct)
	}
}
