package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/vibecoders/site/pkg/logger"
)

// HealthCheck is a named readiness probe.
type HealthCheck struct {
	Name  string
	Check func(context.Context) error
}

// HealthCheckHandler serves liveness and readiness probes.
//
// With no checks it answers 200 "ALIVE". Otherwise every check runs against
// the request context: all passing yields 200 "READY", any failure yields
// 503 "NOT_READY" and the failure is logged with the check name.
func HealthCheckHandler(log *slog.Logger, checks ...HealthCheck) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")

		if len(checks) == 0 {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte("ALIVE"))
			return
		}

		for _, c := range checks {
			if c.Check == nil {
				continue
			}
			if err := c.Check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed",
					logger.Component(c.Name),
					logger.Error(err),
				)
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("NOT_READY"))
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("READY"))
	}
}
