// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

// Package stream serves change events to browsers as server-sent events.
package stream

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/canonical/property-service/internal/events"
	httptypes "github.com/canonical/property-service/internal/http/types"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/pkg/authentication"
)

const DefaultHeartbeat = 25 * time.Second

type API struct {
	broker    events.SubscriberInterface
	heartbeat time.Duration

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/events", a.stream)
}

// stream holds the connection open and writes every event concerning the
// caller until the client goes away or the broker shuts down
func (a *API) stream(w http.ResponseWriter, r *http.Request) {
	principal, ok := authentication.PrincipalFromContext(r.Context())
	if !ok {
		_ = httptypes.WriteError(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	rc := http.NewResponseController(w)
	// the server write timeout would otherwise cut long lived streams
	if err := rc.SetWriteDeadline(time.Time{}); err != nil {
		a.logger.Debugf("failed to clear write deadline: %v", err)
	}

	ch, cancel := a.broker.Subscribe(events.ForUser(principal.ID))
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if _, err := fmt.Fprint(w, ": connected\n\n"); err != nil {
		return
	}
	if err := rc.Flush(); err != nil {
		a.logger.Errorf("streaming not supported: %v", err)
		return
	}

	a.logger.Debugf("event stream opened for %s", principal.ID)
	defer a.logger.Debugf("event stream closed for %s", principal.ID)

	ticker := time.NewTicker(a.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return
			}
		case e, open := <-ch:
			if !open {
				return
			}

			data, err := json.Marshal(e)
			if err != nil {
				a.logger.Errorf("failed to encode event %s: %v", e.ID, err)
				continue
			}

			if _, err := fmt.Fprintf(w, "id: %s\nevent: %s\ndata: %s\n\n", e.ID, e.Kind, data); err != nil {
				return
			}
		}

		if err := rc.Flush(); err != nil {
			return
		}
	}
}

func NewAPI(broker events.SubscriberInterface, heartbeat time.Duration, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *API {
	a := new(API)

	a.broker = broker
	a.heartbeat = heartbeat
	if a.heartbeat <= 0 {
		a.heartbeat = DefaultHeartbeat
	}

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
