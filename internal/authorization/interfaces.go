// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"

	"github.com/canonical/property-service/internal/openfga"
)

type AuthorizerInterface interface {
	ListObjects(context.Context, string, string, string) ([]string, error)
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	ValidateModel(context.Context) error

	CanReview(context.Context, string, string) (bool, error)
	CanManage(context.Context, string, string) (bool, error)
	// ListViewableProperties returns the ids of the properties a user owns or rents.
	ListViewableProperties(context.Context, string) ([]string, error)

	HasRole(context.Context, string, string) (bool, error)
	AssignRole(context.Context, string, string) error
	AssignLandlord(context.Context, string, string) error
	AssignTenant(context.Context, string, string) error
	RemoveTenant(context.Context, string, string) error
	DeleteProperty(context.Context, string) error
}

type AuthzClientInterface interface {
	ListObjects(context.Context, string, string, string) ([]string, error)
	Check(context.Context, string, string, string, ...openfga.Tuple) (bool, error)
	ReadModel(context.Context) (*fga.AuthorizationModel, error)
	CompareModel(context.Context, fga.AuthorizationModel) (bool, error)
	ReadTuples(context.Context, string, string, string, string) (*client.ClientReadResponse, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuples(context.Context, ...openfga.Tuple) error
}
