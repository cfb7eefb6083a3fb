// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package authentication

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/barbersoft/account-service/internal/logging"
	"github.com/barbersoft/account-service/internal/monitoring"
	"github.com/barbersoft/account-service/internal/tracing"
)

// SecretVerifier validates HS256 access tokens signed with the auth provider's shared secret
type SecretVerifier struct {
	secret   []byte
	audience string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (v *SecretVerifier) VerifyToken(ctx context.Context, rawToken string) (string, error) {
	_, span := v.tracer.Start(ctx, "authentication.SecretVerifier.VerifyToken")
	defer span.End()

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	claims := new(jwt.RegisteredClaims)
	token, err := jwt.ParseWithClaims(rawToken, claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("token is not valid")
	}

	if claims.Subject == "" {
		return "", fmt.Errorf("token has no subject")
	}

	return claims.Subject, nil
}

func NewSecretVerifier(secret []byte, audience string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *SecretVerifier {
	v := new(SecretVerifier)
	v.secret = secret
	v.audience = audience

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
