// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/canonical/property-service/internal/logging"
)

func TestConfigDefaults(t *testing.T) {
	cfg := NewNoopConfig()
	assert.False(t, cfg.Enabled)
	assert.Equal(t, serviceName, cfg.service())
	assert.Equal(t, 1.0, cfg.ratio())

	cfg = NewConfig(true, "property-worker", "", "", 0.25, logging.NewNoopLogger())
	assert.Equal(t, "property-worker", cfg.service())
	assert.Equal(t, 0.25, cfg.ratio())

	cfg.SampleRatio = 3
	assert.Equal(t, 1.0, cfg.ratio())
}

func TestNewTracerDisabled(t *testing.T) {
	tracer := NewTracer(NewNoopConfig())

	_, span := tracer.Start(context.Background(), "test")
	defer span.End()

	assert.False(t, span.SpanContext().IsValid())
}
