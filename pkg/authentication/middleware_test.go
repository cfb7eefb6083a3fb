// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/barbersoft/account-service/internal/logging"
	"github.com/barbersoft/account-service/internal/monitoring"
	"github.com/barbersoft/account-service/internal/tracing"
)

//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_tracer.go -source=../../internal/tracing/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authentication -destination ./mock_verifier.go -source=./interfaces.go

// echoCaller writes the authenticated user id back
var echoCaller = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	_, _ = w.Write([]byte(userID))
})

func TestMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name           string
		header         string
		language       string
		verify         func(*MockTokenVerifierInterface)
		failure        string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "no header at all",
			failure:        "missing authorization header",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"No authorization header"}` + "\n",
		},
		{
			name:           "basic credentials",
			header:         "Basic b3duZXI6c2VjcmV0",
			failure:        "authorization header is not a bearer token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Invalid token"}` + "\n",
		},
		{
			name:           "bearer without a token",
			header:         "Bearer   ",
			language:       "en-US",
			failure:        "authorization header is not a bearer token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Invalid token"}` + "\n",
		},
		{
			name:   "expired session",
			header: "Bearer stale",
			verify: func(v *MockTokenVerifierInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "stale").Return("", errors.New("token has invalid claims: token is expired"))
			},
			failure:        "invalid bearer token",
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"error":"Invalid token"}` + "\n",
		},
		{
			name:   "owner session",
			header: "Bearer fresh",
			verify: func(v *MockTokenVerifierInterface) {
				v.EXPECT().VerifyToken(gomock.Any(), "fresh").Return("3b1f8f3e-owner", nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "3b1f8f3e-owner",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockSecurity := NewMockSecurityLoggerInterface(ctrl)
			mockVerifier := NewMockTokenVerifierInterface(ctrl)

			mockTracer.EXPECT().Start(gomock.Any(), "authentication.Middleware.Authenticate").DoAndReturn(
				func(ctx context.Context, _ string, _ ...trace.SpanStartOption) (context.Context, trace.Span) {
					return ctx, trace.SpanFromContext(ctx)
				},
			)
			mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any()).AnyTimes()
			if tt.failure != "" {
				mockLogger.EXPECT().Security().Return(mockSecurity)
				mockSecurity.EXPECT().AuthnFailure(tt.failure)
			}
			if tt.verify != nil {
				tt.verify(mockVerifier)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/v0/account/delete", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			if tt.language != "" {
				req.Header.Set("Accept-Language", tt.language)
			}
			w := httptest.NewRecorder()

			NewMiddleware(mockVerifier, mockTracer, NewMockMonitorInterface(ctrl), mockLogger).Authenticate()(echoCaller).ServeHTTP(w, req)

			if w.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, w.Code)
			}
			if w.Body.String() != tt.expectedBody {
				t.Errorf("expected body %q, got %q", tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestMiddleware_AuthenticateWithSharedSecret(t *testing.T) {
	secret := []byte("project-jwt-secret")
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test")
	logger := logging.NewNoopLogger()

	mw := NewMiddleware(NewSecretVerifier(secret, "authenticated", tracer, monitor, logger), tracer, monitor, logger)
	handler := mw.Authenticate()(echoCaller)

	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "owner-42",
		Audience:  jwt.ClaimStrings{"authenticated"},
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}).SignedString(secret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v0/billing/portal", nil)
	req.Header.Set("Authorization", "Bearer "+raw)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK || w.Body.String() != "owner-42" {
		t.Fatalf("expected owner-42 to pass, got %d %q", w.Code, w.Body.String())
	}

	req = httptest.NewRequest(http.MethodPost, "/api/v0/billing/portal", nil)
	req.Header.Set("Authorization", "Bearer "+raw+"x")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected a tampered token to be refused, got %d", w.Code)
	}
}
