// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
)

func TestRedisSinkForwardUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	sink := NewRedisSink(client, "", "instance-a", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	assert.Equal(t, DefaultChannel, sink.channel)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	err := sink.Forward(ctx, ChangeEvent{Kind: KindRentCreated})
	assert.Error(t, err)
}

func relayMessage(t *testing.T, origin string, e ChangeEvent) *redis.Message {
	payload, err := json.Marshal(envelope{Origin: origin, Event: e})
	require.NoError(t, err)
	return &redis.Message{Channel: DefaultChannel, Payload: string(payload)}
}

func TestRedisSinkRelay(t *testing.T) {
	sink := NewRedisSink(nil, "", "instance-a", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	b := newTestBroker(4)

	ch, cancel := b.Subscribe(nil)
	defer cancel()

	messages := make(chan *redis.Message, 3)
	messages <- relayMessage(t, "instance-a", ChangeEvent{ID: "own", Kind: KindRentPaid})
	messages <- &redis.Message{Channel: DefaultChannel, Payload: "{not json"}
	messages <- relayMessage(t, "instance-b", ChangeEvent{ID: "remote", Kind: KindRentPaid})
	close(messages)

	err := sink.relay(context.Background(), messages, b)
	require.NoError(t, err)

	require.Len(t, ch, 1)
	e := <-ch
	assert.Equal(t, "remote", e.ID)
}

func TestRedisSinkRelayStopsOnCancel(t *testing.T) {
	sink := NewRedisSink(nil, "", "instance-a", tracing.NewNoopTracer(), monitoring.NewNoopMonitor("test"), logging.NewNoopLogger())
	b := newTestBroker(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- sink.relay(ctx, make(chan *redis.Message), b)
	}()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("relay did not stop after cancel")
	}
}
