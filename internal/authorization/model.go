// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	_ "embed"
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
)

//go:embed model.fga
var v0ModelDSL string

type AuthorizationModelProvider struct {
	apiVersion string
}

func (a *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	model, err := a.parse()
	if err != nil {
		// embedded at build time
		panic(err)
	}
	return model
}

func (a *AuthorizationModelProvider) parse() (*fga.AuthorizationModel, error) {
	var dsl string
	switch a.apiVersion {
	case "v0":
		dsl = v0ModelDSL
	default:
		return nil, fmt.Errorf("unknown authorization model version %q", a.apiVersion)
	}

	raw, err := transformer.TransformDSLToJSON(dsl)
	if err != nil {
		return nil, fmt.Errorf("failed to transform authorization model: %w", err)
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal([]byte(raw), model); err != nil {
		return nil, fmt.Errorf("failed to decode authorization model: %w", err)
	}

	return model, nil
}

func NewAuthorizationModelProvider(apiVersion string) *AuthorizationModelProvider {
	a := new(AuthorizationModelProvider)
	a.apiVersion = apiVersion

	return a
}
