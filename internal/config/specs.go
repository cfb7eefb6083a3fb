// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package config

import (
	"time"
)

// EnvSpec is the basic environment configuration setup needed for the app to start
type EnvSpec struct {
	OtelGRPCEndpoint string `envconfig:"otel_grpc_endpoint"`
	OtelHTTPEndpoint string `envconfig:"otel_http_endpoint"`
	TracingEnabled   bool   `envconfig:"tracing_enabled" default:"true"`

	LogLevel string `envconfig:"log_level" default:"error"`
	Debug    bool   `envconfig:"debug" default:"false"`

	Port               int      `envconfig:"port" default:"8080"`
	CORSAllowedOrigins []string `envconfig:"cors_allowed_origins"`

	DSN string `envconfig:"DSN" required:"true"`

	DBMaxConns        int32         `envconfig:"db_max_conns" default:"25"`
	DBMinConns        int32         `envconfig:"db_min_conns" default:"2"`
	DBMaxConnLifetime time.Duration `envconfig:"db_max_conn_lifetime" default:"1h"`
	DBMaxConnIdleTime time.Duration `envconfig:"db_max_conn_idle_time" default:"30m"`

	AuthenticationEnabled   bool   `envconfig:"authentication_enabled" default:"true"`
	AuthenticationIssuer    string `envconfig:"authentication_issuer"`
	AuthenticationJwksURL   string `envconfig:"authentication_jwks_url"`
	AuthenticationJWTSecret string `envconfig:"authentication_jwt_secret"`
	AuthenticationAudience  string `envconfig:"authentication_audience"`

	AuthorizationEnabled bool   `envconfig:"authorization_enabled" default:"false"`
	OpenfgaApiScheme     string `envconfig:"openfga_api_scheme" default:""`
	OpenfgaApiHost       string `envconfig:"openfga_api_host"`
	OpenfgaApiToken      string `envconfig:"openfga_api_token"`
	OpenfgaStoreId       string `envconfig:"openfga_store_id"`
	OpenfgaModelId       string `envconfig:"openfga_authorization_model_id" default:""`

	KratosAdminURL string `envconfig:"kratos_admin_url" required:"true"`

	StripeSecretKey     string `envconfig:"stripe_secret_key"`
	StripeWebhookSecret string `envconfig:"stripe_webhook_secret"`

	ResendAPIKey string `envconfig:"resend_api_key"`
	MailFrom     string `envconfig:"mail_from" default:"BarberSoft <noreply@barbersoft.com.br>"`
	SiteURL      string `envconfig:"site_url" default:"https://barbersoft.com.br"`

	ShopInfoAPIKey   string        `envconfig:"shop_info_api_key"`
	ShopInfoCacheTTL time.Duration `envconfig:"shop_info_cache_ttl" default:"30s"`

	CascadeParallelism int `envconfig:"cascade_parallelism" default:"4"`
}
