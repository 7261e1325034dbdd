// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"fmt"
	"strings"

	"github.com/canonical/property-service/internal/logging"
	"github.com/canonical/property-service/internal/monitoring"
	"github.com/canonical/property-service/internal/openfga"
	"github.com/canonical/property-service/internal/tracing"
)

var ErrInvalidAuthModel = fmt.Errorf("invalid authorization model schema")

type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) Check(ctx context.Context, user string, relation string, object string, contextualTuples ...openfga.Tuple) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	return a.client.Check(ctx, user, relation, object, contextualTuples...)
}

func (a *Authorizer) ListObjects(ctx context.Context, user string, relation string, objectType string) ([]string, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ListObjects")
	defer span.End()

	return a.client.ListObjects(ctx, user, relation, objectType)
}

func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	v0AuthzModel := NewAuthorizationModelProvider("v0")
	model := *v0AuthzModel.GetModel()

	eq, err := a.client.CompareModel(ctx, model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

func (a *Authorizer) CanReview(ctx context.Context, userId, propertyId string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CanReview")
	defer span.End()

	return a.Check(ctx, UserTuple(userId), CAN_REVIEW_PERMISSION, PropertyTuple(propertyId))
}

func (a *Authorizer) CanManage(ctx context.Context, userId, propertyId string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CanManage")
	defer span.End()

	return a.Check(ctx, UserTuple(userId), CAN_MANAGE_PERMISSION, PropertyTuple(propertyId))
}

func (a *Authorizer) ListViewableProperties(ctx context.Context, userId string) ([]string, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ListViewableProperties")
	defer span.End()

	objs, err := a.ListObjects(ctx, UserTuple(userId), CAN_VIEW_PERMISSION, PROPERTY_TYPE)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(objs))
	for _, obj := range objs {
		ids = append(ids, strings.TrimPrefix(obj, PROPERTY_TYPE+":"))
	}
	return ids, nil
}

// HasRole reports whether the platform role was assigned to the user at sign up.
func (a *Authorizer) HasRole(ctx context.Context, userId, role string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.HasRole")
	defer span.End()

	return a.Check(ctx, UserTuple(userId), ASSIGNEE_RELATION, RoleTuple(role))
}

func (a *Authorizer) AssignRole(ctx context.Context, userId, role string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignRole")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userId), ASSIGNEE_RELATION, RoleTuple(role))
}

func (a *Authorizer) AssignLandlord(ctx context.Context, propertyId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignLandlord")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userId), LANDLORD_RELATION, PropertyTuple(propertyId))
}

func (a *Authorizer) AssignTenant(ctx context.Context, propertyId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignTenant")
	defer span.End()

	return a.client.WriteTuple(ctx, UserTuple(userId), TENANT_RELATION, PropertyTuple(propertyId))
}

func (a *Authorizer) RemoveTenant(ctx context.Context, propertyId, userId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveTenant")
	defer span.End()

	return a.client.DeleteTuple(ctx, UserTuple(userId), TENANT_RELATION, PropertyTuple(propertyId))
}

// DeleteProperty removes every tuple whose object is the property, page by page.
func (a *Authorizer) DeleteProperty(ctx context.Context, propertyId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.DeleteProperty")
	defer span.End()

	cToken := ""
	for {
		r, err := a.client.ReadTuples(ctx, "", "", PropertyTuple(propertyId), cToken)
		if err != nil {
			a.logger.Errorf("error when retrieving tuples: %s", err)
			return err
		}
		if len(r.Tuples) == 0 {
			break
		}
		ts := make([]openfga.Tuple, len(r.Tuples))
		for i, t := range r.Tuples {
			ts[i] = *openfga.NewTuple(t.Key.User, t.Key.Relation, t.Key.Object)
		}
		if err := a.client.DeleteTuples(ctx, ts...); err != nil {
			a.logger.Errorf("error when deleting tuples %v: %s", ts, err)
			return err
		}
		if r.ContinuationToken == "" {
			break
		}
		cToken = r.ContinuationToken
	}
	return nil
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	authorizer := new(Authorizer)
	authorizer.client = client
	authorizer.tracer = tracer
	authorizer.monitor = monitor
	authorizer.logger = logger

	return authorizer
}
