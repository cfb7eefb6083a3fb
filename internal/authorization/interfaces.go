// Copyright 2025 Canonical Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/go-sdk/client"

	"github.com/barbersoft/account-service/internal/openfga"
)

type AuthorizerInterface interface {
	Check(context.Context, string, string, string) (bool, error)
	ValidateModel(context.Context) error

	// IsSuperAdmin checks the platform wide super admin relation of a user
	IsSuperAdmin(context.Context, string) (bool, error)
	AssignSuperAdmin(context.Context, string) error
	// DeleteCompany removes every relation pointing at the company object
	DeleteCompany(context.Context, string) error
}

type AuthzClientInterface interface {
	Check(context.Context, string, string, string) (bool, error)
	ReadModel(context.Context) (*fga.AuthorizationModel, error)
	CompareModel(context.Context, fga.AuthorizationModel) (bool, error)
	ReadTuples(context.Context, string, string, string, string) (*client.ClientReadResponse, error)
	WriteTuple(ctx context.Context, user, relation, object string) error
	DeleteTuples(context.Context, ...openfga.Tuple) error
}
