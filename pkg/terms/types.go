// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package terms

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/barbersoft/account-service/internal/types"
)

// BarberView is what a token holder may learn about the barber the link was issued to
type BarberView struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	CommissionRate decimal.Decimal `json:"commission_rate"`
	CompanyID      string          `json:"company_id"`
	UnitName       string          `json:"unit_name"`
}

func newBarberView(b *types.Barber) *BarberView {
	return &BarberView{
		ID:             b.ID,
		Name:           b.Name,
		CommissionRate: b.CommissionRate,
		CompanyID:      b.CompanyID,
		UnitName:       b.UnitName,
	}
}

type TermView struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Version  string `json:"version"`
	Content  string `json:"content"`
	Rendered string `json:"rendered"`
}

// Acceptance bundles everything the acceptance page needs
type Acceptance struct {
	Barber *BarberView `json:"barber"`
	Term   *TermView   `json:"term"`
}

type AcceptRequest struct {
	Token           string
	TermID          string
	ContentSnapshot string
	CommissionRate  decimal.Decimal
	IP              string
	UserAgent       string
}

type Status struct {
	HasActiveTerm bool       `json:"has_active_term"`
	Accepted      bool       `json:"accepted"`
	AcceptedAt    *time.Time `json:"accepted_at"`
	TermVersion   string     `json:"term_version,omitempty"`
}
