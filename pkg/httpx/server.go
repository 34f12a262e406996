package httpx

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/unrolled/secure"
)

const (
	defaultRequestsPerMinute = 100
	defaultMaxBodyBytes      = 1 << 20 // 1 MB
	defaultHandlerTimeout    = 30 * time.Second

	// TooManyRequestsMessage is the body of a rate-limited response.
	TooManyRequestsMessage = "Too many requests. Try again later."
	// PayloadTooLargeMessage is the body of a response to an oversized request.
	PayloadTooLargeMessage = "Request body too large."
)

// ServerConfig holds the options for NewRouter. Zero values fall back to
// defaults.
type ServerConfig struct {
	ServiceName   string
	IsDevelopment bool
	// RequestsPerMinute caps requests per client IP (default 100).
	RequestsPerMinute int
	// MaxBodyBytes caps request bodies (default 1 MB).
	MaxBodyBytes int64
	// HandlerTimeout bounds each handler (default 30s).
	HandlerTimeout time.Duration
	// CORSAllowedOrigins is a comma-separated list of allowed origins.
	// "*" or an empty list allows every origin.
	CORSAllowedOrigins string
}

// Middlewares are the application-supplied layers of the stack. A nil entry
// is skipped.
type Middlewares struct {
	Recovery func(http.Handler) http.Handler
	Sentry   func(http.Handler) http.Handler
	Tracing  func(http.Handler) http.Handler
	Logging  func(http.Handler) http.Handler
}

// NewRouter returns a chi.Mux with the standard middleware stack, outermost
// first:
//
//	Recovery, Sentry, RequestID, Tracing, Logging, RealIP, rate limit,
//	CORS, body limit, timeout, security headers
//
// Recovery sits outside Sentry so a panic Sentry re-raises still becomes a
// JSON 500. Logging runs inside Tracing and RequestID so request records carry
// both IDs.
func NewRouter(cfg ServerConfig, mw Middlewares) *chi.Mux {
	r := chi.NewRouter()

	stack := []func(http.Handler) http.Handler{
		mw.Recovery,
		mw.Sentry,
		middleware.RequestID,
		mw.Tracing,
		mw.Logging,
		middleware.RealIP,
		RateLimit(orDefault(cfg.RequestsPerMinute, defaultRequestsPerMinute)),
		CORSMiddleware(cfg.CORSAllowedOrigins),
		RequestBodyLimit(orDefault(cfg.MaxBodyBytes, defaultMaxBodyBytes)),
		middleware.Timeout(orDefault(cfg.HandlerTimeout, defaultHandlerTimeout)),
		SecurityHeaders(cfg.IsDevelopment),
	}
	for _, m := range stack {
		if m != nil {
			r.Use(m)
		}
	}
	return r
}

func orDefault[T int | int64 | time.Duration](v, def T) T {
	if v <= 0 {
		return def
	}
	return v
}

// RateLimit allows perMinute requests per client IP and answers the rest with
// a JSON 429. It must run after middleware.RealIP.
func RateLimit(perMinute int) func(http.Handler) http.Handler {
	return httprate.Limit(perMinute, time.Minute,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			JSONError(w, http.StatusTooManyRequests, TooManyRequestsMessage)
		}),
	)
}

// SecurityHeaders sets HSTS, CSP, frame, referrer and permissions headers.
// In development unrolled/secure skips the HTTPS-only checks.
func SecurityHeaders(isDevelopment bool) func(http.Handler) http.Handler {
	return secure.New(secure.Options{
		STSSeconds:            63072000,
		STSIncludeSubdomains:  true,
		FrameDeny:             true,
		ContentTypeNosniff:    true,
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'",
		PermissionsPolicy:     "geolocation=(), microphone=(), camera=(), usb=()",
		IsDevelopment:         isDevelopment,
	}).Handler
}

// CORSMiddleware returns a CORS handler for the comma-separated
// allowedOrigins. Credentials are never allowed; the API authenticates with
// the Authorization header.
func CORSMiddleware(allowedOrigins string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   parseOrigins(allowedOrigins),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"Location", "X-Request-Id"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}

func parseOrigins(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// RequestBodyLimit rejects a declared Content-Length above maxBytes with a
// JSON 413 and caps undeclared bodies with http.MaxBytesReader, so an
// oversized chunked body fails to decode.
func RequestBodyLimit(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				w.Header().Set("X-Max-Body-Bytes", strconv.FormatInt(maxBytes, 10))
				JSONError(w, http.StatusRequestEntityTooLarge, PayloadTooLargeMessage)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// NewServer returns an *http.Server with timeouts set.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      defaultHandlerTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
}
