// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import "encoding/json"

// KratosIdentity is the body the Kratos registration web hook posts, traits
// follow the identity schema
type KratosIdentity struct {
	ID     string          `json:"id"`
	Traits json.RawMessage `json:"traits"`
}

// TokenHookResponse carries the claims Hydra merges into the issued tokens
type TokenHookResponse struct {
	Session struct {
		IDToken     map[string]interface{} `json:"id_token,omitempty"`
		AccessToken map[string]interface{} `json:"access_token,omitempty"`
	} `json:"session"`
}
