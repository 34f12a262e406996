package httpx

import (
	"context"
	"net/http"
	"time"
)

const healthProbeTimeout = 2 * time.Second

// Pinger is any dependency that can report reachability.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Probe is one named dependency reported by the health endpoint. A nil
// Pinger is reported as "unconfigured" and counts as degraded.
type Probe struct {
	Name   string
	Pinger Pinger
}

// HealthReport is the /health response body.
type HealthReport struct {
	Status  string            `json:"status"`
	Version string            `json:"version,omitempty"`
	Checks  map[string]string `json:"checks"`
}

// HealthHandler pings every probe under a shared deadline. It answers 200
// when all are reachable and 503 otherwise.
func HealthHandler(version string, probes ...Probe) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthProbeTimeout)
		defer cancel()

		report := HealthReport{Status: "ok", Version: version, Checks: make(map[string]string, len(probes))}
		for _, p := range probes {
			state := "ok"
			switch {
			case p.Pinger == nil:
				state = "unconfigured"
			case p.Pinger.Ping(ctx) != nil:
				state = "unreachable"
			}
			report.Checks[p.Name] = state
			if state != "ok" {
				report.Status = "degraded"
			}
		}

		status := http.StatusOK
		if report.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, report)
	}
}
