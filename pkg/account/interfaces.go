// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package account

import (
	"context"

	"github.com/barbersoft/account-service/internal/billing"
	"github.com/barbersoft/account-service/internal/types"
)

// StorageInterface is the subset of internal/storage the deletion and billing flows rely on.
type StorageInterface interface {
	GetCompanyByID(ctx context.Context, id string) (*types.Company, error)
	ListCompaniesByOwner(ctx context.Context, userID string) ([]*types.Company, error)
	GetCompanyByBillingCustomer(ctx context.Context, customerID string) (*types.Company, error)
	SetCompanyPlanStatus(ctx context.Context, id string, status types.PlanStatus) error
	DeleteCompany(ctx context.Context, id string) (int64, error)
	ListIDs(ctx context.Context, table, column string, values []string) ([]string, error)
	DeleteWhereIn(ctx context.Context, table, column string, values []string) (int64, error)
	HasRole(ctx context.Context, userID, role string) (bool, error)
}

// AuthzInterface is the subset of internal/authorization used here.
type AuthzInterface interface {
	IsSuperAdmin(ctx context.Context, userID string) (bool, error)
	DeleteCompany(ctx context.Context, companyID string) error
}

type KratosClientInterface interface {
	DeleteIdentity(ctx context.Context, id string) error
}

type BillingClientInterface interface {
	CancelAllSubscriptions(ctx context.Context, customerID string) error
	CreatePortalSession(ctx context.Context, customerID, returnURL string) (string, error)
	ParseWebhook(payload []byte, signature string) (*billing.SubscriptionEvent, error)
}

type ServiceInterface interface {
	DeleteCompany(ctx context.Context, callerID, companyID string) error
	DeleteMyAccount(ctx context.Context, callerID string) error
	CreatePortalSession(ctx context.Context, callerID, returnURL string) (string, error)
	HandleBillingWebhook(ctx context.Context, payload []byte, signature string) error
}
