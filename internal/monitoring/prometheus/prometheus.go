// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/canonical/property-service/internal/logging"
)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec
	reviewOutcomes         *prometheus.CounterVec
	droppedEvents          *prometheus.CounterVec

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	if m.responseTime == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.responseTime.With(tags).Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	if m.dependencyAvailability == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.dependencyAvailability.With(tags).Set(value)

	return nil
}

func (m *Monitor) IncrementReviewOutcome(tags map[string]string) error {
	if m.reviewOutcomes == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.reviewOutcomes.With(tags).Inc()

	return nil
}

func (m *Monitor) IncrementDroppedEvents(tags map[string]string) error {
	if m.droppedEvents == nil {
		return fmt.Errorf("metric not instantiated")
	}

	m.droppedEvents.With(tags).Inc()

	return nil
}

func (m *Monitor) registerHistograms() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: fmt.Sprintf("http_response_time_seconds_%s", m.service),
			Help: "http_response_time_seconds",
		},
		[]string{"route", "status"},
	)

	if err := prometheus.Register(m.responseTime); err != nil {
		m.logger.Debugf("metric already registered: %v", err)
	}
}

func (m *Monitor) registerGauges() {
	m.dependencyAvailability = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: fmt.Sprintf("dependency_available_%s", m.service),
			Help: "dependency_available",
		},
		[]string{"component"},
	)

	if err := prometheus.Register(m.dependencyAvailability); err != nil {
		m.logger.Debugf("metric already registered: %v", err)
	}
}

func (m *Monitor) registerCounters() {
	m.reviewOutcomes = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: fmt.Sprintf("application_reviews_total_%s", m.service),
			Help: "application reviews by decision and outcome",
		},
		[]string{"decision", "outcome"},
	)

	m.droppedEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: fmt.Sprintf("change_events_dropped_total_%s", m.service),
			Help: "change events not delivered to a slow subscriber",
		},
		[]string{"kind"},
	)

	for _, c := range []prometheus.Collector{m.reviewOutcomes, m.droppedEvents} {
		if err := prometheus.Register(c); err != nil {
			m.logger.Debugf("metric already registered: %v", err)
		}
	}
}

// NewMonitor creates the prometheus collectors, metric names carry the service
// name with dashes replaced since prometheus rejects them
func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = sanitize(service)
	m.logger = logger

	m.registerHistograms()
	m.registerGauges()
	m.registerCounters()

	return m
}

func sanitize(service string) string {
	out := []rune(service)
	for i, r := range out {
		if r == '-' || r == '.' {
			out[i] = '_'
		}
	}
	return string(out)
}
