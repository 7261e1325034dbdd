// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
)

type resendEmail struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// ResendSender delivers transactional mail through the Resend HTTP API
type ResendSender struct {
	client *retryablehttp.Client
	url    string
	apiKey string
	from   string
	appURL string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (s *ResendSender) SendWelcome(ctx context.Context, w Welcome) error {
	ctx, span := s.tracer.Start(ctx, "mail.ResendSender.SendWelcome")
	defer span.End()

	html, err := renderWelcome(w, s.appURL)
	if err != nil {
		return fmt.Errorf("failed to render welcome email: %w", err)
	}

	body, err := json.Marshal(resendEmail{From: s.from, To: []string{w.Email}, Subject: welcomeSubject, HTML: html})
	if err != nil {
		return err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, s.url, body)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		_ = s.monitor.SetDependencyAvailability(map[string]string{"component": "resend"}, 0)
		return fmt.Errorf("failed to send welcome email: %w", err)
	}
	defer resp.Body.Close()

	_ = s.monitor.SetDependencyAvailability(map[string]string{"component": "resend"}, 1)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("resend rejected welcome email with status %d", resp.StatusCode)
	}

	var sent struct {
		ID string `json:"id"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&sent)
	s.logger.Debugf("welcome email %s sent", sent.ID)

	return nil
}

func NewResendSender(cfg Config, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *ResendSender {
	s := new(ResendSender)

	s.url = cfg.ResendURL
	if s.url == "" {
		s.url = defaultResendURL
	}
	s.from = cfg.From
	if s.from == "" {
		s.from = defaultFrom
	}
	retryMax := cfg.RetryMax
	if retryMax <= 0 {
		retryMax = defaultRetryMax
	}

	s.apiKey = cfg.ResendAPIKey
	s.appURL = cfg.AppURL
	s.client = newRetryClient(retryMax, logger)

	s.tracer = tracer
	s.monitor = monitor
	s.logger = logger

	return s
}
