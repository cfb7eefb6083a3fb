// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"net/http"
	"slices"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/barbersoft/account-service/internal/logging"
	"github.com/barbersoft/account-service/internal/monitoring"
)

// Middleware wraps the router with otel server spans
type Middleware struct {
	untraced []string

	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (mdw *Middleware) OpenTelemetry(handler http.Handler) http.Handler {
	return otelhttp.NewHandler(
		handler,
		"server",
		otelhttp.WithFilter(mdw.traced),
	)
}

// health checks and metric scrapes stay out of the traces
func (mdw *Middleware) traced(r *http.Request) bool {
	return !slices.Contains(mdw.untraced, r.URL.Path)
}

// NewMiddleware returns the tracing middleware, requests to any of the untraced paths do not open a span
func NewMiddleware(monitor monitoring.MonitorInterface, logger logging.LoggerInterface, untraced ...string) *Middleware {
	mdw := new(Middleware)

	mdw.untraced = untraced
	mdw.monitor = monitor
	mdw.logger = logger

	return mdw
}
