// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/barbersoft/account-service/internal/logging"
	"github.com/barbersoft/account-service/internal/monitoring"
	"github.com/barbersoft/account-service/internal/tracing"
)

func sign(t *testing.T, method jwt.SigningMethod, key any, claims jwt.RegisteredClaims) string {
	t.Helper()

	raw, err := jwt.NewWithClaims(method, claims).SignedString(key)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return raw
}

func TestSecretVerifier_VerifyToken(t *testing.T) {
	secret := []byte("super-secret-jwt-key")
	future := jwt.NewNumericDate(time.Now().Add(time.Hour))
	past := jwt.NewNumericDate(time.Now().Add(-time.Hour))

	tests := []struct {
		name          string
		audience      string
		token         func(*testing.T) string
		expectedSub   string
		expectedError bool
	}{
		{
			name: "valid token",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: future})
			},
			expectedSub: "user-1",
		},
		{
			name:     "valid token with audience",
			audience: "authenticated",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: future, Audience: jwt.ClaimStrings{"authenticated"}})
			},
			expectedSub: "user-1",
		},
		{
			name:     "wrong audience",
			audience: "authenticated",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: future, Audience: jwt.ClaimStrings{"anon"}})
			},
			expectedError: true,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: past})
			},
			expectedError: true,
		},
		{
			name: "no expiry",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{Subject: "user-1"})
			},
			expectedError: true,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, []byte("other"), jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: future})
			},
			expectedError: true,
		},
		{
			name: "wrong algorithm",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS512, secret, jwt.RegisteredClaims{Subject: "user-1", ExpiresAt: future})
			},
			expectedError: true,
		},
		{
			name: "no subject",
			token: func(t *testing.T) string {
				return sign(t, jwt.SigningMethodHS256, secret, jwt.RegisteredClaims{ExpiresAt: future})
			},
			expectedError: true,
		},
		{
			name:          "garbage",
			token:         func(*testing.T) string { return "not-a-jwt" },
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := NewSecretVerifier(secret, tt.audience, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())

			sub, err := v.VerifyToken(context.Background(), tt.token(t))

			if tt.expectedError {
				if err == nil {
					t.Fatalf("expected error, got subject %q", sub)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if sub != tt.expectedSub {
				t.Errorf("expected subject %q, got %q", tt.expectedSub, sub)
			}
		})
	}
}

func TestNewAuthenticator(t *testing.T) {
	tracer := tracing.NewNoopTracer()
	monitor := monitoring.NewNoopMonitor("test")
	logger := logging.NewNoopLogger()

	v, err := NewAuthenticator(context.Background(), Config{JWTSecret: "s"}, tracer, monitor, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(*SecretVerifier); !ok {
		t.Errorf("expected a secret verifier, got %T", v)
	}

	v, err = NewAuthenticator(context.Background(), Config{Issuer: "https://auth.example.com", JwksURL: "https://auth.example.com/jwks"}, tracer, monitor, logger)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := v.(*JWTVerifier); !ok {
		t.Errorf("expected a jwks verifier, got %T", v)
	}

	if _, err := NewAuthenticator(context.Background(), Config{}, tracer, monitor, logger); err == nil {
		t.Error("expected an error without issuer or secret")
	}
}
