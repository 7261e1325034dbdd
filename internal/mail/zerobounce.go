// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
)

type zeroBounceResponse struct {
	Address     string  `json:"address"`
	Status      string  `json:"status"`
	SubStatus   string  `json:"sub_status"`
	FreeEmail   bool    `json:"free_email"`
	DidYouMean  *string `json:"did_you_mean"`
	Domain      string  `json:"domain"`
	ProcessedAt string  `json:"processed_at"`
}

// catch-all domains accept everything, they are not proof of a bad address
var deliverable = map[string]bool{
	"valid":     true,
	"catch-all": true,
}

// ZeroBounceValidator checks deliverability against the ZeroBounce v2 API
type ZeroBounceValidator struct {
	client *retryablehttp.Client
	url    string
	apiKey string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

// Validate returns nil without error for a blank address
func (v *ZeroBounceValidator) Validate(ctx context.Context, email string) (*Validation, error) {
	ctx, span := v.tracer.Start(ctx, "mail.ZeroBounceValidator.Validate")
	defer span.End()

	email = strings.TrimSpace(email)
	if email == "" {
		return nil, nil
	}

	u, err := url.Parse(v.url)
	if err != nil {
		return nil, err
	}
	q := u.Query()
	q.Set("api_key", v.apiKey)
	q.Set("email", email)
	u.RawQuery = q.Encode()

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := v.client.Do(req)
	if err != nil {
		_ = v.monitor.SetDependencyAvailability(map[string]string{"component": "zerobounce"}, 0)
		return nil, fmt.Errorf("failed to validate email: %w", err)
	}
	defer resp.Body.Close()

	_ = v.monitor.SetDependencyAvailability(map[string]string{"component": "zerobounce"}, 1)

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("zerobounce returned status %d", resp.StatusCode)
	}

	var r zeroBounceResponse
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("failed to decode zerobounce response: %w", err)
	}

	return &Validation{
		IsValid:     deliverable[r.Status],
		Status:      r.Status,
		SubStatus:   r.SubStatus,
		FreeEmail:   r.FreeEmail,
		DidYouMean:  r.DidYouMean,
		Domain:      r.Domain,
		ProcessedAt: r.ProcessedAt,
	}, nil
}

func NewZeroBounceValidator(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *ZeroBounceValidator {
	v := new(ZeroBounceValidator)

	v.url = cfg.ZeroBounceURL
	if v.url == "" {
		v.url = defaultZeroBounceURL
	}
	retryMax := cfg.RetryMax
	if retryMax <= 0 {
		retryMax = defaultRetryMax
	}

	v.apiKey = cfg.ZeroBounceAPIKey
	v.client = newRetryClient(retryMax, logger)

	v.tracer = tracer
	v.monitor = monitor
	v.logger = logger

	return v
}
