// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/barbersoft/account-service/internal/logging"
	"github.com/barbersoft/account-service/internal/monitoring"
	"github.com/barbersoft/account-service/internal/tracing"
)

type Config struct {
	Issuer    string
	JwksURL   string
	JWTSecret string
	Audience  string
}

// NewAuthenticator picks the bearer verifier matching cfg: a shared HS256 secret wins over OIDC.
func NewAuthenticator(
	ctx context.Context,
	cfg Config,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) (TokenVerifierInterface, error) {
	if cfg.JWTSecret != "" {
		logger.Info("JWT authentication is enabled with a shared secret")
		return NewSecretVerifier([]byte(cfg.JWTSecret), cfg.Audience, tracer, monitor, logger), nil
	}

	if cfg.Issuer == "" {
		return nil, fmt.Errorf("issuer or jwt secret is required for JWT authentication")
	}

	if cfg.JwksURL != "" {
		logger.Infof("Using manual JWKS URL: %s", cfg.JwksURL)
		idTokenVerifier := NewProviderWithJWKS(ctx, cfg.Issuer, cfg.JwksURL, cfg.Audience)
		logger.Info("JWT authentication is enabled with manual JWKS URL")
		return NewJWTVerifierDirect(idTokenVerifier, tracer, monitor, logger), nil
	}

	logger.Infof("Using OIDC discovery for issuer: %s", cfg.Issuer)
	provider, err := NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to create OIDC provider: %v", err)
	}
	logger.Info("JWT authentication is enabled with OIDC discovery")

	return NewJWTVerifier(provider, cfg.Audience, tracer, monitor, logger), nil
}
