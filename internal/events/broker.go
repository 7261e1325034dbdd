// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
)

const defaultBuffer = 64

type subscription struct {
	ch     chan ChangeEvent
	filter Filter
}

// Broker fans change events out to in-process subscribers and forwards them
// to the configured sinks. Publishing never blocks on a slow subscriber, the
// event is dropped for that subscriber instead.
type Broker struct {
	mu     sync.RWMutex
	subs   map[uint64]*subscription
	nextID uint64
	buffer int
	closed bool

	sinks []SinkInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (b *Broker) Publish(ctx context.Context, e ChangeEvent) {
	ctx, span := b.tracer.Start(ctx, "events.Broker.Publish")
	defer span.End()

	if e.ID == "" {
		if id, err := uuid.NewV7(); err == nil {
			e.ID = id.String()
		}
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	}

	b.Deliver(e)

	for _, sink := range b.sinks {
		if err := sink.Forward(ctx, e); err != nil {
			b.logger.Errorf("failed to forward event %s (%s): %v", e.ID, e.Kind, err)
		}
	}
}

// Deliver hands e to the local subscribers only.
func (b *Broker) Deliver(e ChangeEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, sub := range b.subs {
		if sub.filter != nil && !sub.filter(e) {
			continue
		}

		select {
		case sub.ch <- e:
		default:
			_ = b.monitor.IncrementDroppedEvents(map[string]string{"kind": string(e.Kind)})
			b.logger.Warnf("subscriber %d is lagging, dropped event %s (%s)", id, e.ID, e.Kind)
		}
	}
}

// Subscribe registers a subscriber, the returned func unregisters it and
// closes the channel. It is safe to call more than once.
func (b *Broker) Subscribe(filter Filter) (<-chan ChangeEvent, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan ChangeEvent, b.buffer)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = &subscription{ch: ch, filter: filter}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()

			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub.ch)
			}
		})
	}

	return ch, cancel
}

func (b *Broker) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.subs)
}

// Close ends every subscription, later subscriptions are closed immediately.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	for id, sub := range b.subs {
		delete(b.subs, id)
		close(sub.ch)
	}
	b.closed = true
}

func NewBroker(buffer int, sinks []SinkInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Broker {
	b := new(Broker)

	b.subs = make(map[uint64]*subscription)
	b.buffer = buffer
	if b.buffer <= 0 {
		b.buffer = defaultBuffer
	}
	b.sinks = sinks

	b.tracer = tracer
	b.monitor = monitor
	b.logger = logger

	return b
}
