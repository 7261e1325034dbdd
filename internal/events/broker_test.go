// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
)

type recordingSink struct {
	events []ChangeEvent
	err    error
}

func (s *recordingSink) Forward(_ context.Context, e ChangeEvent) error {
	s.events = append(s.events, e)
	return s.err
}

func newTestBroker(buffer int, sinks ...SinkInterface) *Broker {
	return NewBroker(buffer, sinks, tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
}

func TestBrokerRoutesByParty(t *testing.T) {
	b := newTestBroker(4)

	tenantCh, cancelTenant := b.Subscribe(ForUser("tenant-1"))
	defer cancelTenant()
	strangerCh, cancelStranger := b.Subscribe(ForUser("stranger"))
	defer cancelStranger()

	b.Publish(context.Background(), ChangeEvent{
		Kind:       KindApplicationDecided,
		Entity:     "application",
		EntityID:   "app-1",
		TenantID:   "tenant-1",
		LandlordID: "landlord-1",
	})

	select {
	case e := <-tenantCh:
		assert.Equal(t, KindApplicationDecided, e.Kind)
		assert.NotEmpty(t, e.ID)
		assert.False(t, e.OccurredAt.IsZero())
	case <-time.After(time.Second):
		t.Fatal("tenant did not receive the event")
	}

	assert.Len(t, strangerCh, 0)
}

func TestBrokerDropsForSlowSubscriber(t *testing.T) {
	b := newTestBroker(1)

	ch, cancel := b.Subscribe(nil)
	defer cancel()

	for i := 0; i < 3; i++ {
		b.Publish(context.Background(), ChangeEvent{Kind: KindRentCreated})
	}

	assert.Len(t, ch, 1)
}

func TestBrokerCancelClosesChannel(t *testing.T) {
	b := newTestBroker(1)

	ch, cancel := b.Subscribe(nil)
	require.Equal(t, 1, b.Subscribers())

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, b.Subscribers())

	b.Publish(context.Background(), ChangeEvent{Kind: KindRentPaid})
}

func TestBrokerForwardsToSinks(t *testing.T) {
	failing := &recordingSink{err: errors.New("redis down")}
	ok := &recordingSink{}
	b := newTestBroker(1, failing, ok)

	b.Publish(context.Background(), ChangeEvent{Kind: KindTenantRemoved, EntityID: "prop-1"})

	require.Len(t, failing.events, 1)
	require.Len(t, ok.events, 1)
	assert.Equal(t, "prop-1", ok.events[0].EntityID)
}

func TestBrokerClose(t *testing.T) {
	b := newTestBroker(1)

	ch, _ := b.Subscribe(nil)
	b.Close()

	_, open := <-ch
	assert.False(t, open)

	late, _ := b.Subscribe(nil)
	_, open = <-late
	assert.False(t, open)
}

func TestChangeEventConcerns(t *testing.T) {
	e := ChangeEvent{TenantID: "t", LandlordID: "l"}

	assert.True(t, e.Concerns("t"))
	assert.True(t, e.Concerns("l"))
	assert.False(t, e.Concerns("x"))
	assert.False(t, ChangeEvent{}.Concerns(""))
}
