// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package stream

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/property-service/internal/events"
	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
	"github.com/canonical/property-service/pkg/authentication"
)

func newTestServer(t *testing.T, broker *events.Broker, principal *authentication.Principal) *httptest.Server {
	t.Helper()

	mux := chi.NewMux()
	if principal != nil {
		mux.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				next.ServeHTTP(w, r.WithContext(authentication.WithPrincipal(r.Context(), *principal)))
			})
		})
	}
	NewAPI(broker, time.Hour, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger()).RegisterEndpoints(mux)

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestBroker() *events.Broker {
	return events.NewBroker(8, nil, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestStreamUnauthenticated(t *testing.T) {
	srv := newTestServer(t, newTestBroker(), nil)

	resp, err := http.Get(srv.URL + "/events")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestStreamDeliversOwnEvents(t *testing.T) {
	broker := newTestBroker()
	srv := newTestServer(t, broker, &authentication.Principal{ID: "tenant-1", Role: types.RoleTenant})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events", nil)
	require.NoError(t, err)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	line, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, ": connected\n", line)

	require.Eventually(t, func() bool { return broker.Subscribers() == 1 }, time.Second, 10*time.Millisecond)

	broker.Publish(context.Background(), events.ChangeEvent{ID: "evt-other", Kind: events.KindRentPaid, TenantID: "tenant-2"})
	broker.Publish(context.Background(), events.ChangeEvent{ID: "evt-1", Kind: events.KindApplicationDecided, EntityID: "app-1", TenantID: "tenant-1"})

	var frame []string
	for {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimSuffix(line, "\n")
		if line == "" {
			if len(frame) > 0 {
				break
			}
			continue
		}
		frame = append(frame, line)
	}

	require.Len(t, frame, 3)
	assert.Equal(t, "id: evt-1", frame[0])
	assert.Equal(t, "event: application.decided", frame[1])

	var e events.ChangeEvent
	require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(frame[2], "data: ")), &e))
	assert.Equal(t, "app-1", e.EntityID)

	cancel()
	assert.Eventually(t, func() bool { return broker.Subscribers() == 0 }, time.Second, 10*time.Millisecond)
}

func TestStreamEndsWhenBrokerCloses(t *testing.T) {
	broker := newTestBroker()
	srv := newTestServer(t, broker, &authentication.Principal{ID: "landlord-1", Role: types.RoleLandlord})

	resp, err := http.Get(srv.URL + "/events")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Eventually(t, func() bool { return broker.Subscribers() == 1 }, time.Second, 10*time.Millisecond)
	broker.Close()

	done := make(chan struct{})
	go func() {
		_, _ = bufio.NewReader(resp.Body).ReadString(0)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not end after broker close")
	}
}
