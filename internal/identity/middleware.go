// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/barbersoft/account-service/internal/logging"
	"github.com/barbersoft/account-service/internal/monitoring"
	"github.com/barbersoft/account-service/internal/tracing"
)

type submitterKey struct{}

// Submitter describes who sent a request, recorded next to term acceptances
type Submitter struct {
	IP        string
	UserAgent string
}

// FromContext returns the submitter stored by the middleware, zero valued when absent
func FromContext(ctx context.Context) Submitter {
	if s, ok := ctx.Value(submitterKey{}).(Submitter); ok {
		return s
	}
	return Submitter{}
}

func WithSubmitter(ctx context.Context, s Submitter) context.Context {
	return context.WithValue(ctx, submitterKey{}, s)
}

type Middleware struct {
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewMiddleware(tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Middleware {
	return &Middleware{
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (m *Middleware) HTTPMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := m.tracer.Start(r.Context(), "identity.Middleware.HTTPMiddleware")
		defer span.End()

		ctx = WithSubmitter(ctx, Submitter{
			IP:        clientIP(r),
			UserAgent: r.UserAgent(),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// clientIP prefers the first forwarded hop, chi's RealIP has usually rewritten RemoteAddr already
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		return ip
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
