// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
)

const DefaultChannel = "property-service.events"

type envelope struct {
	Origin string      `json:"origin"`
	Event  ChangeEvent `json:"event"`
}

// RedisSink publishes events on a Redis Pub/Sub channel so that other
// instances can relay them to their own subscribers.
type RedisSink struct {
	client  redis.UniversalClient
	channel string
	origin  string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *RedisSink) Forward(ctx context.Context, e ChangeEvent) error {
	ctx, span := s.tracer.Start(ctx, "events.RedisSink.Forward")
	defer span.End()

	payload, err := json.Marshal(envelope{Origin: s.origin, Event: e})
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	err = s.client.Publish(ctx, s.channel, payload).Err()
	s.setAvailability(err)

	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// Relay delivers events published by other instances to the local broker
// until ctx is done.
func (s *RedisSink) Relay(ctx context.Context, b *Broker) error {
	pubsub := s.client.Subscribe(ctx, s.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		s.setAvailability(err)
		return fmt.Errorf("failed to subscribe to %s: %w", s.channel, err)
	}

	return s.relay(ctx, pubsub.Channel(), b)
}

func (s *RedisSink) relay(ctx context.Context, messages <-chan *redis.Message, b *Broker) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-messages:
			if !ok {
				return nil
			}

			var env envelope
			if err := json.Unmarshal([]byte(msg.Payload), &env); err != nil {
				s.logger.Warnf("ignoring malformed event on %s: %v", s.channel, err)
				continue
			}
			if env.Origin == s.origin {
				continue
			}

			b.Deliver(env.Event)
		}
	}
}

func (s *RedisSink) setAvailability(err error) {
	available := 1.0
	if err != nil {
		available = 0
	}
	_ = s.monitor.SetDependencyAvailability(map[string]string{"component": "redis"}, available)
}

func NewRedisSink(client redis.UniversalClient, channel, origin string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *RedisSink {
	s := new(RedisSink)

	s.client = client
	s.channel = channel
	if s.channel == "" {
		s.channel = DefaultChannel
	}
	s.origin = origin

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
