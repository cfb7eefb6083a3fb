// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"

	"github.com/barbersoft/account-service/pkg/terms"
)

// AccountClientInterface is what the CLI commands need from a running server
type AccountClientInterface interface {
	DeleteCompany(ctx context.Context, companyID string) (string, error)
	DeleteMyAccount(ctx context.Context) (string, error)
	BillingPortal(ctx context.Context) (string, error)
	SendTerm(ctx context.Context, barberID, termID string) (string, error)
	TermStatus(ctx context.Context, barberID string) (*terms.Status, error)
	SetBarberActive(ctx context.Context, barberID string, active bool) (string, error)
}

func getClient() AccountClientInterface {
	return newHTTPAccountClient(httpEndpoint, bearerToken, nil)
}
