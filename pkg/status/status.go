// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package status

import (
	"context"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"

	httptypes "github.com/canonical/property-service/internal/http/types"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/version"
)

const (
	okValue      = "ok"
	degraded     = "degraded"
	pingDeadline = 2 * time.Second
)

type PingerInterface interface {
	Ping(context.Context) error
}

// SchemaCheckerInterface fails while the database lags behind the schema
// this build expects
type SchemaCheckerInterface interface {
	CheckSchema(context.Context) error
}

type Status struct {
	Status    string     `json:"status"`
	BuildInfo *BuildInfo `json:"buildInfo,omitempty"`
}

type BuildInfo struct {
	Version    string `json:"version"`
	CommitHash string `json:"commit_hash"`
	Name       string `json:"name"`
}

type API struct {
	db     PingerInterface
	schema SchemaCheckerInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/status", a.alive)
	mux.Get("/ready", a.ready)
	mux.Get("/version", a.version)
}

func (a *API) alive(w http.ResponseWriter, r *http.Request) {
	_ = httptypes.WriteJSON(w, http.StatusOK, Status{Status: okValue, BuildInfo: buildInfo()})
}

// ready reports whether the database answers with the expected schema,
// load balancers take the instance out of rotation on 503
func (a *API) ready(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "status.API.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, pingDeadline)
	defer cancel()

	if err := a.db.Ping(ctx); err != nil {
		a.logger.Errorf("readiness check failed: %v", err)
		_ = a.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, 0)
		_ = httptypes.WriteJSON(w, http.StatusServiceUnavailable, Status{Status: degraded})
		return
	}

	_ = a.monitor.SetDependencyAvailability(map[string]string{"component": "database"}, 1)

	if a.schema != nil {
		if err := a.schema.CheckSchema(ctx); err != nil {
			a.logger.Errorf("schema check failed: %v", err)
			_ = a.monitor.SetDependencyAvailability(map[string]string{"component": "schema"}, 0)
			_ = httptypes.WriteJSON(w, http.StatusServiceUnavailable, Status{Status: degraded})
			return
		}
		_ = a.monitor.SetDependencyAvailability(map[string]string{"component": "schema"}, 1)
	}

	_ = httptypes.WriteJSON(w, http.StatusOK, Status{Status: okValue})
}

func (a *API) version(w http.ResponseWriter, r *http.Request) {
	info := buildInfo()
	if info == nil {
		info = &BuildInfo{Version: version.Version}
	}

	_ = httptypes.WriteJSON(w, http.StatusOK, info)
}

func buildInfo() *BuildInfo {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return nil
	}

	b := &BuildInfo{
		Name:    info.Main.Path,
		Version: version.Version,
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			b.CommitHash = setting.Value
		}
	}

	return b
}

// NewAPI builds the status endpoints, a nil schema checker skips the schema
// part of the readiness check
func NewAPI(db PingerInterface, schema SchemaCheckerInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.db = db
	a.schema = schema

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
