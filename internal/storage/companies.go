// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/barbersoft/account-service/internal/types"
)

var companyColumns = []string{
	"id",
	"name",
	"owner_user_id",
	"COALESCE(stripe_customer_id, '')",
	"COALESCE(stripe_subscription_id, '')",
	"plan_status",
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCompany(row rowScanner) (*types.Company, error) {
	var c types.Company
	var status string

	if err := row.Scan(&c.ID, &c.Name, &c.OwnerUserID, &c.StripeCustomerID, &c.StripeSubscriptionID, &status); err != nil {
		return nil, err
	}
	c.PlanStatus = types.PlanStatus(status)

	return &c, nil
}

func (s *Storage) GetCompanyByID(ctx context.Context, id string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCompanyByID")
	defer span.End()

	c, err := scanCompany(
		s.db.Statement(ctx).
			Select(companyColumns...).
			From(TableCompanies).
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	return c, nil
}

func (s *Storage) GetCompanyByBillingCustomer(ctx context.Context, customerID string) (*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCompanyByBillingCustomer")
	defer span.End()

	c, err := scanCompany(
		s.db.Statement(ctx).
			Select(companyColumns...).
			From(TableCompanies).
			Where(sq.Eq{"stripe_customer_id": customerID}).
			QueryRowContext(ctx),
	)

	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company by billing customer: %w", err)
	}

	return c, nil
}

// ListCompaniesByOwner is the reverse lookup behind the self service flows, callers decide what
// more than one result means.
func (s *Storage) ListCompaniesByOwner(ctx context.Context, userID string) ([]*types.Company, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCompaniesByOwner")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(companyColumns...).
		From(TableCompanies).
		Where(sq.Eq{"owner_user_id": userID}).
		OrderBy("id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var companies []*types.Company
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		companies = append(companies, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return companies, nil
}

func (s *Storage) SetCompanyPlanStatus(ctx context.Context, id string, status types.PlanStatus) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetCompanyPlanStatus")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update(TableCompanies).
		Set("plan_status", string(status)).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update plan status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteCompany removes the company row, a missing row is not an error and reports 0
func (s *Storage) DeleteCompany(ctx context.Context, id string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCompany")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete(TableCompanies).
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)
	if err != nil {
		return 0, WrapForeignKeyError(fmt.Errorf("failed to delete company: %w", err), "company still referenced")
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return n, nil
}
