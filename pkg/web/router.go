// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/property-service/internal/db"
	"github.com/canonical/property-service/internal/events"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
	"github.com/canonical/property-service/pkg/applications"
	"github.com/canonical/property-service/pkg/authentication"
	"github.com/canonical/property-service/pkg/maintenance"
	"github.com/canonical/property-service/pkg/metrics"
	"github.com/canonical/property-service/pkg/properties"
	"github.com/canonical/property-service/pkg/rent"
	"github.com/canonical/property-service/pkg/status"
	"github.com/canonical/property-service/pkg/stream"
	"github.com/canonical/property-service/pkg/webhooks"
)

const APIPrefix = "/api/v0"

// Services groups the domain services the router exposes
type Services struct {
	Properties   properties.ServiceInterface
	Applications applications.ServiceInterface
	Rent         rent.ServiceInterface
	Maintenance  maintenance.ServiceInterface
	Webhooks     webhooks.ServiceInterface
}

type Config struct {
	AllowedOrigins []string
	Heartbeat      time.Duration
	Schema         status.SchemaCheckerInterface
}

func NewRouter(
	cfg Config,
	services Services,
	authn *authentication.Middleware,
	broker events.SubscriberInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS(origins),
	)

	router.Use(middlewares...)

	router.Route(APIPrefix, func(r chi.Router) {
		metrics.NewAPI(logger).RegisterEndpoints(r)
		status.NewAPI(dbClient, cfg.Schema, tracer, monitor, logger).RegisterEndpoints(r)
		webhooks.NewAPI(services.Webhooks, logger).RegisterEndpoints(r)

		propertiesAPI := properties.NewAPI(services.Properties, logger)
		propertiesAPI.RegisterPublicEndpoints(r)

		r.Group(func(r chi.Router) {
			r.Use(authn.Authenticate())

			propertiesAPI.RegisterEndpoints(r)
			applications.NewAPI(services.Applications, logger).RegisterEndpoints(r)
			maintenance.NewAPI(services.Maintenance, logger).RegisterEndpoints(r)
			stream.NewAPI(broker, cfg.Heartbeat, tracer, monitor, logger).RegisterEndpoints(r)

			r.Group(func(r chi.Router) {
				r.Use(authn.RequireRole(types.RoleTenant))
				rent.NewAPI(services.Rent, logger).RegisterEndpoints(r)
			})
		})
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
