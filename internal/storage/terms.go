// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/barbersoft/account-service/internal/types"
)

var termColumns = []string{"id", "company_id", "title", "content", "version", "is_active"}

func scanTerm(row rowScanner) (*types.PartnershipTerm, error) {
	var t types.PartnershipTerm

	if err := row.Scan(&t.ID, &t.CompanyID, &t.Title, &t.Content, &t.Version, &t.IsActive); err != nil {
		return nil, err
	}

	return &t, nil
}

func (s *Storage) GetTerm(ctx context.Context, id string) (*types.PartnershipTerm, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTerm")
	defer span.End()

	t, err := scanTerm(
		s.db.Statement(ctx).
			Select(termColumns...).
			From(TablePartnershipTerms).
			Where(sq.Eq{"id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get term: %w", err)
	}

	return t, nil
}

// ListActiveTerms returns at most two rows, enough for callers to tell "one" from "more than one"
func (s *Storage) ListActiveTerms(ctx context.Context, companyID string) ([]*types.PartnershipTerm, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveTerms")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select(termColumns...).
		From(TablePartnershipTerms).
		Where(sq.Eq{"company_id": companyID, "is_active": true}).
		OrderBy("id").
		Limit(2).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active terms: %w", err)
	}
	defer rows.Close()

	var terms []*types.PartnershipTerm
	for rows.Next() {
		t, err := scanTerm(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan term: %w", err)
		}
		terms = append(terms, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return terms, nil
}

func (s *Storage) CreateTermAcceptance(ctx context.Context, a *types.TermAcceptance) (*types.TermAcceptance, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateTermAcceptance")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate acceptance ID: %w", err)
	}

	accepted := *a
	accepted.ID = id.String()
	if accepted.AcceptedAt.IsZero() {
		accepted.AcceptedAt = time.Now().UTC()
	}

	_, err = s.db.Statement(ctx).
		Insert(TableTermAcceptances).
		Columns("id", "term_id", "barber_id", "content_snapshot", "commission_rate", "accepted_at", "ip_address", "user_agent").
		Values(
			accepted.ID,
			accepted.TermID,
			accepted.BarberID,
			accepted.ContentSnapshot,
			accepted.CommissionRate,
			accepted.AcceptedAt,
			accepted.IPAddress,
			accepted.UserAgent,
		).
		ExecContext(ctx)
	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert term acceptance: %w", err)
	}

	return &accepted, nil
}

var acceptanceColumns = []string{
	"id",
	"term_id",
	"barber_id",
	"content_snapshot",
	"commission_rate",
	"accepted_at",
	"COALESCE(ip_address, '')",
	"COALESCE(user_agent, '')",
}

func (s *Storage) GetTermAcceptance(ctx context.Context, barberID, termID string) (*types.TermAcceptance, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetTermAcceptance")
	defer span.End()

	var a types.TermAcceptance
	err := s.db.Statement(ctx).
		Select(acceptanceColumns...).
		From(TableTermAcceptances).
		Where(sq.Eq{"barber_id": barberID, "term_id": termID}).
		QueryRowContext(ctx).
		Scan(&a.ID, &a.TermID, &a.BarberID, &a.ContentSnapshot, &a.CommissionRate, &a.AcceptedAt, &a.IPAddress, &a.UserAgent)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get term acceptance: %w", err)
	}

	return &a, nil
}
