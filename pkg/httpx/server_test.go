package httpx_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghuser/productcatalog/pkg/httpx"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestSecurityHeaders(t *testing.T) {
	h := httpx.SecurityHeaders(false)(http.HandlerFunc(okHandler))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	checks := map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"Referrer-Policy":         "strict-origin-when-cross-origin",
		"Content-Security-Policy": "default-src 'self'",
	}
	for header, expected := range checks {
		if got := rr.Header().Get(header); got != expected {
			t.Errorf("%s: got %q, want %q", header, got, expected)
		}
	}
}

func TestRequestBodyLimit(t *testing.T) {
	const limit = 16

	tests := []struct {
		name       string
		body       string
		undeclared bool
		want       int
	}{
		{"within limit", strings.Repeat("a", limit), false, http.StatusOK},
		{"declared too large", strings.Repeat("a", limit+1), false, http.StatusRequestEntityTooLarge},
		{"undeclared too large", strings.Repeat("a", limit+1), true, http.StatusRequestEntityTooLarge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if _, err := io.ReadAll(r.Body); err != nil {
					httpx.JSONError(w, http.StatusRequestEntityTooLarge, httpx.PayloadTooLargeMessage)
					return
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			if tt.undeclared {
				req.ContentLength = -1
			}
			rr := httptest.NewRecorder()
			httpx.RequestBodyLimit(limit)(inner).ServeHTTP(rr, req)

			if rr.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rr.Code)
			}
		})
	}
}

func TestRateLimit_JSON429(t *testing.T) {
	h := httpx.RateLimit(2)(http.HandlerFunc(okHandler))

	var last *httptest.ResponseRecorder
	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/api/products", http.NoBody)
		req.RemoteAddr = "203.0.113.7:5000"
		last = httptest.NewRecorder()
		h.ServeHTTP(last, req)
	}

	if last.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 on third request, got %d", last.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(last.Body.Bytes(), &body); err != nil || body["error"] != httpx.TooManyRequestsMessage {
		t.Fatalf("unexpected 429 body %q (%v)", last.Body.String(), err)
	}
}

func TestCORSMiddleware_ExposesLocation(t *testing.T) {
	h := httpx.CORSMiddleware("https://app.example.com")(http.HandlerFunc(okHandler))

	req := httptest.NewRequest(http.MethodGet, "/api/products", http.NoBody)
	req.Header.Set("Origin", "https://app.example.com")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("allow origin: got %q", got)
	}
	if got := rr.Header().Get("Access-Control-Expose-Headers"); !strings.Contains(got, "Location") {
		t.Errorf("expose headers: got %q", got)
	}
}

func TestNewRouter_AppliesMiddlewareInOrder(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := httpx.NewRouter(
		httpx.ServerConfig{ServiceName: "test", IsDevelopment: true, CORSAllowedOrigins: "*"},
		httpx.Middlewares{
			Logging:  mark("logging"),
			Recovery: mark("recovery"),
			Sentry:   mark("sentry"),
			Tracing:  mark("tracing"),
		},
	)
	r.Get("/ping", okHandler)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	want := []string{"recovery", "sentry", "tracing", "logging"}
	if strings.Join(order, ",") != strings.Join(want, ",") {
		t.Fatalf("middleware order: got %v, want %v", order, want)
	}
}

func TestNewRouter_NilMiddlewaresSkipped(t *testing.T) {
	r := httpx.NewRouter(httpx.ServerConfig{IsDevelopment: true}, httpx.Middlewares{})
	r.Get("/ping", okHandler)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}
