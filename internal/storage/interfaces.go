// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/barbersoft/account-service/internal/types"
)

type StorageInterface interface {
	GetCompanyByID(ctx context.Context, id string) (*types.Company, error)
	ListCompaniesByOwner(ctx context.Context, userID string) ([]*types.Company, error)
	GetCompanyByBillingCustomer(ctx context.Context, customerID string) (*types.Company, error)
	SetCompanyPlanStatus(ctx context.Context, id string, status types.PlanStatus) error
	DeleteCompany(ctx context.Context, id string) (int64, error)

	ListIDs(ctx context.Context, table, column string, values []string) ([]string, error)
	DeleteWhereIn(ctx context.Context, table, column string, values []string) (int64, error)

	HasRole(ctx context.Context, userID, role string) (bool, error)

	GetBarber(ctx context.Context, id string) (*types.Barber, error)
	GetBarberByTermToken(ctx context.Context, token string) (*types.Barber, error)
	SetBarberTermToken(ctx context.Context, barberID, token string) error
	ConsumeTermToken(ctx context.Context, token string) (*types.Barber, error)
	SetBarberActive(ctx context.Context, barberID string, active bool) error

	GetTerm(ctx context.Context, id string) (*types.PartnershipTerm, error)
	ListActiveTerms(ctx context.Context, companyID string) ([]*types.PartnershipTerm, error)
	CreateTermAcceptance(ctx context.Context, a *types.TermAcceptance) (*types.TermAcceptance, error)
	GetTermAcceptance(ctx context.Context, barberID, termID string) (*types.TermAcceptance, error)

	GetUnitByInstanceName(ctx context.Context, instance string) (*types.Unit, error)
	ListActiveBarbersByUnit(ctx context.Context, unitID string) ([]*types.Barber, error)
	ListActiveServicesByUnit(ctx context.Context, unitID string) ([]*types.Service, error)
	GetWhatsappAgentEnabled(ctx context.Context, userID string) (bool, error)
}
