// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/barbersoft/account-service/internal/logging"
	"github.com/barbersoft/account-service/internal/monitoring"
	"github.com/barbersoft/account-service/internal/tracing"
)

func TestMiddleware_HTTPMiddleware(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		expectedIP string
	}{
		{
			name:       "remote address",
			remoteAddr: "10.0.0.7:51234",
			expectedIP: "10.0.0.7",
		},
		{
			name:       "forwarded for",
			remoteAddr: "10.0.0.7:51234",
			headers:    map[string]string{"X-Forwarded-For": "200.1.2.3, 10.0.0.1"},
			expectedIP: "200.1.2.3",
		},
		{
			name:       "real ip",
			remoteAddr: "10.0.0.7:51234",
			headers:    map[string]string{"X-Real-IP": "200.9.9.9"},
			expectedIP: "200.9.9.9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMiddleware(tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			var got Submitter
			h := m.HTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = FromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/v0/rpc/accept_barber_term", nil)
			req.RemoteAddr = tt.remoteAddr
			req.Header.Set("User-Agent", "Mozilla/5.0")
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}

			h.ServeHTTP(httptest.NewRecorder(), req)

			if got.IP != tt.expectedIP {
				t.Errorf("expected ip %s, got %s", tt.expectedIP, got.IP)
			}
			if got.UserAgent != "Mozilla/5.0" {
				t.Errorf("expected user agent to be recorded, got %q", got.UserAgent)
			}
		})
	}
}
