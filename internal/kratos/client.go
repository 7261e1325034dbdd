// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package kratos

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	ory "github.com/ory/client-go"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/tracing"
	"github.com/canonical/property-service/internal/types"
)

var ErrProfileNotFound = errors.New("profile not found")

type ClientInterface interface {
	GetProfile(ctx context.Context, id string) (*types.Profile, error)
	GetProfiles(ctx context.Context, ids []string) (map[string]*types.Profile, error)
}

// traits mirrors the identity schema, name is either a plain string or a
// {first, last} object depending on the schema version.
type traits struct {
	Name    json.RawMessage `json:"name"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Address string          `json:"address"`
	Role    types.Role      `json:"role"`
}

type Client struct {
	client  *ory.APIClient
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewClient(kratosAdminURL string, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Client {
	conf := ory.NewConfiguration()
	conf.Servers = ory.ServerConfigurations{{URL: kratosAdminURL}}
	return &Client{
		client:  ory.NewAPIClient(conf),
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

func (c *Client) setAvailability(r *http.Response, err error) {
	available := 1.0
	if err != nil && (r == nil || r.StatusCode >= http.StatusInternalServerError) {
		available = 0
	}
	_ = c.monitor.SetDependencyAvailability(map[string]string{"component": "kratos"}, available)
}

func (c *Client) GetProfile(ctx context.Context, id string) (*types.Profile, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetProfile")
	defer span.End()

	identity, r, err := c.client.IdentityAPI.GetIdentity(ctx, id).Execute()
	c.setAvailability(r, err)

	if err != nil {
		if r != nil && r.StatusCode == http.StatusNotFound {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("failed to get identity: %w", err)
	}

	return profileFromIdentity(identity)
}

// GetProfiles resolves several identities in one call, ids that do not exist
// are absent from the result.
func (c *Client) GetProfiles(ctx context.Context, ids []string) (map[string]*types.Profile, error) {
	ctx, span := c.tracer.Start(ctx, "kratos.GetProfiles")
	defer span.End()

	profiles := make(map[string]*types.Profile, len(ids))
	if len(ids) == 0 {
		return profiles, nil
	}

	// NOTE: we are setting an empty page token because of https://github.com/ory/sdk/issues/461
	identities, r, err := c.client.IdentityAPI.ListIdentities(ctx).Ids(ids).PageToken("").Execute()
	c.setAvailability(r, err)

	if err != nil {
		return nil, fmt.Errorf("failed to list identities: %w", err)
	}

	for i := range identities {
		p, err := profileFromIdentity(&identities[i])
		if err != nil {
			c.logger.Warnf("skipping identity %s: %v", identities[i].Id, err)
			continue
		}
		profiles[p.ID] = p
	}

	return profiles, nil
}

func profileFromIdentity(identity *ory.Identity) (*types.Profile, error) {
	raw, err := json.Marshal(identity.Traits)
	if err != nil {
		return nil, fmt.Errorf("failed to encode traits: %w", err)
	}

	return ProfileFromTraits(identity.Id, raw)
}

// ProfileFromTraits decodes identity traits as posted by the admin API or by
// Kratos web hooks
func ProfileFromTraits(id string, raw []byte) (*types.Profile, error) {
	var t traits
	if err := json.Unmarshal(raw, &t); err != nil {
		return nil, fmt.Errorf("failed to decode traits: %w", err)
	}

	return &types.Profile{
		ID:      id,
		Name:    t.name(),
		Email:   t.Email,
		Phone:   t.Phone,
		Address: t.Address,
		Role:    t.Role,
	}, nil
}

func (t traits) name() string {
	if len(t.Name) == 0 {
		return ""
	}

	var plain string
	if err := json.Unmarshal(t.Name, &plain); err == nil {
		return plain
	}

	var parts struct {
		First string `json:"first"`
		Last  string `json:"last"`
	}
	if err := json.Unmarshal(t.Name, &parts); err != nil {
		return ""
	}
	return strings.TrimSpace(parts.First + " " + parts.Last)
}
