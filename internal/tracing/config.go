// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tracing

import (
	"github.com/canonical/property-service/internal/logging"
)

// Config selects the span exporter. The gRPC endpoint wins over the HTTP one,
// with neither set spans are exported to a discarded stdout writer.
type Config struct {
	ServiceName      string
	OtelHTTPEndpoint string
	OtelGRPCEndpoint string
	// SampleRatio applies to root spans only, children follow their parent
	SampleRatio float64
	Logger      logging.LoggerInterface

	Enabled bool
}

func (c *Config) service() string {
	if c.ServiceName == "" {
		return serviceName
	}
	return c.ServiceName
}

func (c *Config) ratio() float64 {
	if c.SampleRatio <= 0 || c.SampleRatio > 1 {
		return 1
	}
	return c.SampleRatio
}

func NewConfig(enabled bool, service, otelGRPCEndpoint, otelHTTPEndpoint string, sampleRatio float64, logger logging.LoggerInterface) *Config {
	return &Config{
		ServiceName:      service,
		OtelGRPCEndpoint: otelGRPCEndpoint,
		OtelHTTPEndpoint: otelHTTPEndpoint,
		SampleRatio:      sampleRatio,
		Logger:           logger,
		Enabled:          enabled,
	}
}

func NewNoopConfig() *Config {
	return &Config{Logger: logging.NewNoopLogger()}
}
