// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/kelseyhightower/envconfig"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/canonical/property-service/internal/authorization"
	"github.com/canonical/property-service/internal/config"
	"github.com/canonical/property-service/internal/db"
	"github.com/canonical/property-service/internal/events"
	"github.com/canonical/property-service/internal/kratos"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/mail"
	"github.com/canonical/property-service/internal/monitoring/prometheus"
	"github.com/canonical/property-service/internal/openfga"
	"github.com/canonical/property-service/internal/storage"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/migrations"
	"github.com/canonical/property-service/pkg/applications"
	"github.com/canonical/property-service/pkg/authentication"
	"github.com/canonical/property-service/pkg/maintenance"
	"github.com/canonical/property-service/pkg/properties"
	"github.com/canonical/property-service/pkg/rent"
	"github.com/canonical/property-service/pkg/web"
	"github.com/canonical/property-service/pkg/webhooks"
)

const serviceName = "property-service"

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

func serve() error {
	specs := new(config.EnvSpec)
	if err := envconfig.Process("", specs); err != nil {
		panic(fmt.Errorf("issues with environment sourcing: %s", err))
	}

	logger := logging.NewLogger(specs.LogLevel)
	logger.Debugf("env vars: %v", specs)
	defer logger.Sync()

	monitor := prometheus.NewMonitor(serviceName, logger)
	tracer := tracing.NewTracer(tracing.NewConfig(specs.TracingEnabled, serviceName, specs.OtelGRPCEndpoint, specs.OtelHTTPEndpoint, specs.TracingSampleRatio, logger))

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

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

	schema, err := migrations.NewChecker(dbClient.DB())
	if err != nil {
		return fmt.Errorf("failed to load migrations: %v", err)
	}

	s := storage.NewStorage(dbClient, tracer, monitor, logger)

	var authorizer *authorization.Authorizer
	if specs.AuthorizationEnabled {
		ofgaConfig := openfga.NewConfig(
			specs.OpenfgaApiScheme,
			specs.OpenfgaApiHost,
			specs.OpenfgaStoreId,
			specs.OpenfgaApiToken,
			specs.OpenfgaModelId,
			specs.Debug,
			tracer,
			monitor,
			logger,
		)
		if err := validator.New().Struct(ofgaConfig); err != nil {
			return fmt.Errorf("invalid openfga configuration: %w", err)
		}

		authorizer = authorization.NewAuthorizer(
			openfga.NewClient(ofgaConfig),
			tracer,
			monitor,
			logger,
		)
		logger.Info("Authorization is enabled")
		if authorizer.ValidateModel(ctx) != nil {
			panic("Invalid authorization model provided")
		}
	} else {
		authorizer = authorization.NewAuthorizer(
			openfga.NewNoopClient(tracer, monitor, logger),
			tracer,
			monitor,
			logger,
		)
		logger.Info("Using noop authorizer")
	}

	kratosClient := kratos.NewClient(
		specs.KratosAdminURL,
		tracer,
		monitor,
		logger,
	)

	verifier, err := authentication.NewAuthenticator(
		ctx,
		authentication.Config{
			Enabled:         specs.AuthenticationEnabled,
			Issuer:          specs.AuthenticationIssuer,
			JWKSURL:         specs.AuthenticationJWKSURL,
			AllowedSubjects: specs.AllowedSubjects,
			RequiredScope:   specs.RequiredScope,
		},
		tracer,
		monitor,
		logger,
	)
	if err != nil {
		return fmt.Errorf("failed to set up authentication: %w", err)
	}
	authn := authentication.NewMiddleware(verifier, kratosClient, authorizer, tracer, monitor, logger)

	var sinks []events.SinkInterface
	var redisSink *events.RedisSink
	if specs.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     specs.RedisAddr,
			Password: specs.RedisPassword,
			DB:       specs.RedisDB,
		})
		defer rdb.Close()

		redisSink = events.NewRedisSink(rdb, events.DefaultChannel, uuid.NewString(), tracer, monitor, logger)
		sinks = append(sinks, redisSink)
		logger.Infof("Forwarding change events to redis at %s", specs.RedisAddr)
	}

	broker := events.NewBroker(specs.EventsBuffer, sinks, tracer, monitor, logger)
	defer broker.Close()

	if redisSink != nil {
		go func() {
			if err := redisSink.Relay(ctx, broker); err != nil {
				logger.Errorf("event relay stopped: %v", err)
			}
		}()
	}

	mailCfg := mail.Config{
		ResendAPIKey:     specs.ResendAPIKey,
		From:             specs.MailFrom,
		AppURL:           specs.AppURL,
		ZeroBounceAPIKey: specs.ZeroBounceAPIKey,
	}

	var mailer mail.SenderInterface = mail.NewNoopSender(logger)
	if specs.ResendAPIKey != "" {
		mailer = mail.NewResendSender(mailCfg, tracer, monitor, logger)
	}

	var emails mail.ValidatorInterface = mail.NoopValidator{}
	if specs.ZeroBounceAPIKey != "" {
		emails = mail.NewZeroBounceValidator(mailCfg, tracer, monitor, logger)
	}

	services := web.Services{
		Properties:   properties.NewService(s, dbClient, authorizer, kratosClient, broker, tracer, monitor, logger),
		Applications: applications.NewService(s, dbClient, authorizer, broker, tracer, monitor, logger),
		Rent:         rent.NewService(s, dbClient, kratosClient, broker, tracer, monitor, logger),
		Maintenance:  maintenance.NewService(s, authorizer, broker, tracer, monitor, logger),
		Webhooks:     webhooks.NewService(authorizer, kratosClient, mailer, emails, tracer, monitor, logger),
	}

	router := web.NewRouter(
		web.Config{
			AllowedOrigins: specs.CORSAllowedOrigins,
			Heartbeat:      specs.EventsHeartbeat,
			Schema:         schema,
		},
		services,
		authn,
		broker,
		dbClient,
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

	// event streams only end once the broker closes their subscriptions
	stop()
	broker.Close()

	// Create a deadline to wait for.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logger.Security().SystemShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
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
