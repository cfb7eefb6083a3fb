// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package terms

import (
	"context"

	"github.com/barbersoft/account-service/internal/mail"
	"github.com/barbersoft/account-service/internal/types"
)

// StorageInterface is the subset of internal/storage used by the term workflow.
type StorageInterface interface {
	GetCompanyByID(ctx context.Context, id string) (*types.Company, error)
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
}

// TxInterface runs fn in one database transaction, joining the one already on ctx.
type TxInterface interface {
	WithTx(ctx context.Context, fn func(context.Context) error) error
}

type MailerInterface interface {
	Send(ctx context.Context, msg mail.Message) (string, error)
}

type ServiceInterface interface {
	IssueToken(ctx context.Context, barberID string) (string, error)
	LookupByToken(ctx context.Context, token string) (*BarberView, error)
	ActiveTerm(ctx context.Context, companyID string) (*types.PartnershipTerm, error)
	LoadAcceptance(ctx context.Context, token string) (*Acceptance, error)
	Accept(ctx context.Context, req AcceptRequest) (bool, error)
	SendByEmail(ctx context.Context, callerID, barberID, termID string) error
	TermStatus(ctx context.Context, callerID, barberID string) (*Status, error)
	SetBarberActive(ctx context.Context, callerID, barberID string, active bool) error
}
