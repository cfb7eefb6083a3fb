// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"

	"github.com/barbersoft/account-service/internal/authorization"
	"github.com/barbersoft/account-service/internal/billing"
	"github.com/barbersoft/account-service/internal/config"
	"github.com/barbersoft/account-service/internal/db"
	"github.com/barbersoft/account-service/internal/kratos"
	"github.com/barbersoft/account-service/internal/logging"
	"github.com/barbersoft/account-service/internal/mail"
	"github.com/barbersoft/account-service/internal/monitoring/prometheus"
	"github.com/barbersoft/account-service/internal/openfga"
	"github.com/barbersoft/account-service/internal/storage"
	"github.com/barbersoft/account-service/internal/tracing"
	"github.com/barbersoft/account-service/pkg/account"
	"github.com/barbersoft/account-service/pkg/authentication"
	"github.com/barbersoft/account-service/pkg/web"
)

const serviceName = "account-service"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serve starts the web server",
	Long:  `Launch the web application, list of environment variables is available in the readme`,
	Run: func(cmd *cobra.Command, args []string) {
		main()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// loadSpecs reads ENV_FILE (.env by default) before the environment, a missing file is not an error
func loadSpecs() (*config.EnvSpec, error) {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		return nil, fmt.Errorf("issues with environment sourcing: %w", err)
	}

	return specs, nil
}

func serve() error {
	specs, err := loadSpecs()
	if err != nil {
		panic(err)
	}

	logger := logging.NewLogger(specs.LogLevel)
	defer logger.Sync()

	monitor := prometheus.NewMonitor(serviceName, logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, logger))

	dbConfig := db.Config{
		DSN:             specs.DSN,
		MaxConns:        specs.DBMaxConns,
		MinConns:        specs.DBMinConns,
		MaxConnLifetime: specs.DBMaxConnLifetime,
		MaxConnIdleTime: specs.DBMaxConnIdleTime,
		TracingEnabled:  specs.TracingEnabled,
	}
	dbClient, err := db.NewDBClient(dbConfig, tracer, monitor, logger)
	if err != nil {
		return fmt.Errorf("failed to create database client: %v", err)
	}
	defer dbClient.Close()
	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var authorizer *authorization.Authorizer
	if specs.AuthorizationEnabled {
		ofga := openfga.NewClient(
			openfga.NewConfig(
				specs.OpenfgaApiScheme,
				specs.OpenfgaApiHost,
				specs.OpenfgaStoreId,
				specs.OpenfgaApiToken,
				specs.OpenfgaModelId,
				specs.Debug,
				tracer,
				monitor,
				logger,
			),
		)
		authorizer = authorization.NewAuthorizer(ofga, tracer, monitor, logger)
		logger.Info("Authorization is enabled")
		if authorizer.ValidateModel(context.Background()) != nil {
			panic("Invalid authorization model provided")
		}
	} else {
		authorizer = authorization.NewAuthorizer(openfga.NewNoopClient(tracer, monitor, logger), tracer, monitor, logger)
		logger.Info("Using noop authorizer")
	}

	var verifier authentication.TokenVerifierInterface
	if specs.AuthenticationEnabled {
		verifier, err = authentication.NewAuthenticator(
			context.Background(),
			authentication.Config{
				Issuer:    specs.AuthenticationIssuer,
				JwksURL:   specs.AuthenticationJwksURL,
				JWTSecret: specs.AuthenticationJWTSecret,
				Audience:  specs.AuthenticationAudience,
			},
			tracer,
			monitor,
			logger,
		)
		if err != nil {
			return fmt.Errorf("failed to set up authentication: %w", err)
		}
	} else {
		logger.Warn("Authentication is disabled, bearer tokens are taken as user ids")
		verifier = authentication.NewNoopVerifier()
	}

	var billingClient account.BillingClientInterface = billing.NewNoopClient(logger)
	if specs.StripeSecretKey != "" {
		billingClient = billing.NewClient(specs.StripeSecretKey, specs.StripeWebhookSecret, nil, tracer, monitor, logger)
	} else {
		logger.Warn("Billing is not configured")
	}

	var mailer mail.SenderInterface = mail.NewNoopSender(logger)
	if specs.ResendAPIKey != "" {
		sender, err := mail.NewSender(specs.ResendAPIKey, specs.MailFrom, "", tracer, monitor, logger)
		if err != nil {
			return err
		}
		mailer = sender
	} else {
		logger.Warn("Email delivery is not configured")
	}

	deps := web.Dependencies{
		Authn:   authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate(),
		Authz:   authorizer,
		Kratos:  kratos.NewClient(specs.KratosAdminURL, tracer, monitor, logger),
		Billing: billingClient,
		Mailer:  mailer,
	}

	router := web.NewRouter(
		web.Config{
			SiteURL:            specs.SiteURL,
			AllowedOrigins:     specs.CORSAllowedOrigins,
			ShopInfoAPIKey:     specs.ShopInfoAPIKey,
			ShopInfoCacheTTL:   specs.ShopInfoCacheTTL,
			CascadeParallelism: specs.CascadeParallelism,
		},
		s,
		dbClient,
		deps,
		tracer,
		monitor,
		logger,
	)
	logger.Infof("Starting HTTP server on port %v", specs.Port)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%v", specs.Port),
		WriteTimeout: time.Second * 60,
		ReadTimeout:  time.Second * 15,
		IdleTimeout:  time.Second * 60,
		Handler:      router,
	}

	var serverError error
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		logger.Security().SystemStartup()
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverError = fmt.Errorf("server error: %w", err)
			c <- os.Interrupt
		}
	}()

	<-c

	// Create a deadline to wait for.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(ctx); err != nil {
		serverError = fmt.Errorf("server shutdown error: %w", err)
	}

	return serverError
}

func main() {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}
