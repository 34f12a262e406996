package telemetry

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	sentryhttp "github.com/getsentry/sentry-go/http"

	"github.com/ghuser/productcatalog/pkg/config"
)

const (
	sentryFlushTimeout = 2 * time.Second
	redacted           = "[redacted]"
)

// SetupSentry initializes crash reporting. An empty SENTRY_DSN disables it.
func SetupSentry(cfg *config.Config) error {
	if cfg.SentryDSN == "" {
		return nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.Environment,
		Release:          cfg.ServiceName + "@" + cfg.ServiceVersion,
		ServerName:       cfg.ServiceName,
		TracesSampleRate: 0.2,
		SendDefaultPII:   false,
		BeforeSend:       scrubEvent,
	})
	if err != nil {
		return fmt.Errorf("sentry init: %w", err)
	}
	return nil
}

// SentryFlush waits briefly for buffered events before process exit.
func SentryFlush() {
	sentry.Flush(sentryFlushTimeout)
}

// SentryMiddleware reports panics to Sentry and re-panics so the outer
// recovery middleware still writes the 500.
func SentryMiddleware() func(http.Handler) http.Handler {
	return sentryhttp.New(sentryhttp.Options{Repanic: true}).Handle
}

// scrubEvent removes credentials from the captured request: bearer tokens in
// Authorization and the login body.
func scrubEvent(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	if event == nil || event.Request == nil {
		return event
	}
	for k := range event.Request.Headers {
		if strings.EqualFold(k, "Authorization") || strings.EqualFold(k, "Cookie") {
			event.Request.Headers[k] = redacted
		}
	}
	event.Request.Cookies = ""
	if strings.HasSuffix(event.Request.URL, "/auth/login") {
		event.Request.Data = redacted
	}
	return event
}
