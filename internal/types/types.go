// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// PlanStatus is the billing state of a company as mirrored from the payment processor
type PlanStatus string

const (
	PlanTrial     PlanStatus = "trial"
	PlanActive    PlanStatus = "active"
	PlanOverdue   PlanStatus = "overdue"
	PlanCancelled PlanStatus = "cancelled"
)

// Company is the tenant root
type Company struct {
	ID                   string     `db:"id"`
	Name                 string     `db:"name"`
	OwnerUserID          string     `db:"owner_user_id"`
	StripeCustomerID     string     `db:"stripe_customer_id"`
	StripeSubscriptionID string     `db:"stripe_subscription_id"`
	PlanStatus           PlanStatus `db:"plan_status"`
	CreatedAt            time.Time  `db:"created_at"`
}

type Unit struct {
	ID                    string `db:"id"`
	CompanyID             string `db:"company_id"`
	UserID                string `db:"user_id"`
	Name                  string `db:"name"`
	Address               string `db:"address"`
	Phone                 string `db:"phone"`
	ManagerName           string `db:"manager_name"`
	EvolutionInstanceName string `db:"evolution_instance_name"`
}

type Barber struct {
	ID             string          `db:"id"`
	CompanyID      string          `db:"company_id"`
	UnitID         string          `db:"unit_id"`
	Name           string          `db:"name"`
	Email          string          `db:"email"`
	Phone          string          `db:"phone"`
	PhotoURL       string          `db:"photo_url"`
	CommissionRate decimal.Decimal `db:"commission_rate"`
	IsActive       bool            `db:"is_active"`
	UserID         string          `db:"user_id"`

	// UnitName is joined from units, empty when the barber has no unit
	UnitName string `db:"unit_name"`
}

type PartnershipTerm struct {
	ID        string    `db:"id"`
	CompanyID string    `db:"company_id"`
	Title     string    `db:"title"`
	Content   string    `db:"content"`
	Version   string    `db:"version"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
}

type TermAcceptance struct {
	ID              string          `db:"id"`
	TermID          string          `db:"term_id"`
	BarberID        string          `db:"barber_id"`
	ContentSnapshot string          `db:"content_snapshot"`
	CommissionRate  decimal.Decimal `db:"commission_rate"`
	AcceptedAt      time.Time       `db:"accepted_at"`
	IPAddress       string          `db:"ip_address"`
	UserAgent       string          `db:"user_agent"`
}

// Service is a bookable service offered by a unit
type Service struct {
	ID              string          `db:"id"`
	Name            string          `db:"name"`
	Price           decimal.Decimal `db:"price"`
	DurationMinutes int             `db:"duration_minutes"`
}
