// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
)

const v0ModelDSL = `model
  schema 1.1

type user

type platform
  relations
    define super_admin: [user]

type company
  relations
    define owner: [user]
    define platform: [platform]
    define can_delete: owner or super_admin from platform
`

var models = map[string]string{
	"v0": v0ModelDSL,
}

type AuthorizationModelProvider struct {
	apiVersion string
}

// GetModel parses the DSL of the configured version, an unknown version or a broken DSL panics:
// both are programming errors caught at startup.
func (a *AuthorizationModelProvider) GetModel() *fga.AuthorizationModel {
	dsl, ok := models[a.apiVersion]
	if !ok {
		panic(fmt.Sprintf("unknown authorization model version %s", a.apiVersion))
	}

	raw, err := transformer.TransformDSLToJSON(dsl)
	if err != nil {
		panic(fmt.Sprintf("invalid authorization model: %v", err))
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal([]byte(raw), model); err != nil {
		panic(fmt.Sprintf("invalid authorization model json: %v", err))
	}

	return model
}

func NewAuthorizationModelProvider(apiVersion string) *AuthorizationModelProvider {
	return &AuthorizationModelProvider{apiVersion: apiVersion}
}
