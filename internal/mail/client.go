// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/canonical/property-service/internal/logging"
)

const (
	defaultResendURL     = "https://api.resend.com/emails"
	defaultZeroBounceURL = "https://api.zerobounce.net/v2/validate"
	defaultFrom          = "PropertyPro <onboarding@resend.dev>"
	defaultRetryMax      = 3
)

// retryLogger routes retryablehttp's attempt logs to debug
type retryLogger struct {
	logger logging.LoggerInterface
}

func (l retryLogger) Printf(format string, args ...interface{}) {
	l.logger.Debugf(format, args...)
}

func newRetryClient(retryMax int, logger logging.LoggerInterface) *retryablehttp.Client {
	c := retryablehttp.NewClient()
	c.Logger = retryLogger{logger: logger}
	c.RetryMax = retryMax
	c.RetryWaitMin = 200 * time.Millisecond
	c.RetryWaitMax = 2 * time.Second
	c.HTTPClient.Timeout = 10 * time.Second

	return c
}
