// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/barbersoft/account-service/internal/db"
	"github.com/barbersoft/account-service/internal/identity"
	"github.com/barbersoft/account-service/internal/logging"
	"github.com/barbersoft/account-service/internal/monitoring"
	"github.com/barbersoft/account-service/internal/storage"
	"github.com/barbersoft/account-service/internal/tracing"
	"github.com/barbersoft/account-service/pkg/account"
	"github.com/barbersoft/account-service/pkg/metrics"
	"github.com/barbersoft/account-service/pkg/shopinfo"
	"github.com/barbersoft/account-service/pkg/status"
	"github.com/barbersoft/account-service/pkg/terms"
)

type Config struct {
	SiteURL            string
	AllowedOrigins     []string
	ShopInfoAPIKey     string
	ShopInfoCacheTTL   time.Duration
	CascadeParallelism int
}

// Dependencies are the outbound clients, each one may be a noop implementation
type Dependencies struct {
	Authn   func(http.Handler) http.Handler
	Authz   account.AuthzInterface
	Kratos  account.KratosClientInterface
	Billing account.BillingClientInterface
	Mailer  terms.MailerInterface
}

func NewRouter(
	cfg Config,
	s *storage.Storage,
	dbClient db.DBClientInterface,
	deps Dependencies,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(cfg.AllowedOrigins),
		identity.NewMiddleware(tracer, monitor, logger).HTTPMiddleware,
	)

	router.Use(middlewares...)

	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(dbClient, tracer, monitor, logger).RegisterEndpoints(router)

	accountService := account.NewService(s, deps.Authz, deps.Kratos, deps.Billing, cfg.CascadeParallelism, tracer, monitor, logger)
	account.NewAPI(accountService, cfg.SiteURL, tracer, logger).RegisterEndpoints(router, deps.Authn)

	termsService := terms.NewService(s, dbClient, deps.Mailer, cfg.SiteURL, tracer, monitor, logger)
	terms.NewAPI(termsService, tracer, logger).RegisterEndpoints(router, deps.Authn, db.TransactionMiddleware(dbClient, logger))

	shopService := shopinfo.NewService(s, cfg.ShopInfoCacheTTL, tracer, monitor, logger)
	shopinfo.NewAPI(shopService, cfg.ShopInfoAPIKey, tracer, logger).RegisterEndpoints(router)

	return tracing.NewMiddleware(monitor, logger, "/api/v0/status", "/api/v0/metrics").OpenTelemetry(router)
}
