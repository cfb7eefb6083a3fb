// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/barbersoft/account-service/internal/types"
)

// unit_id is a nullable uuid, coalescing it with a text literal fails on postgres, so it is scanned as NullString
var barberColumns = []string{
	"b.id",
	"b.company_id",
	"b.unit_id",
	"b.name",
	"COALESCE(b.email, '')",
	"COALESCE(b.phone, '')",
	"COALESCE(b.photo_url, '')",
	"b.commission_rate",
	"b.is_active",
	"COALESCE(b.user_id, '')",
	"COALESCE(u.name, '')",
}

func scanBarber(row rowScanner) (*types.Barber, error) {
	var (
		b      types.Barber
		unitID sql.NullString
	)

	err := row.Scan(
		&b.ID,
		&b.CompanyID,
		&unitID,
		&b.Name,
		&b.Email,
		&b.Phone,
		&b.PhotoURL,
		&b.CommissionRate,
		&b.IsActive,
		&b.UserID,
		&b.UnitName,
	)
	if err != nil {
		return nil, err
	}
	b.UnitID = unitID.String

	return &b, nil
}

func (s *Storage) selectBarbers(ctx context.Context) sq.SelectBuilder {
	return s.db.Statement(ctx).
		Select(barberColumns...).
		From("barbers b").
		LeftJoin("units u ON u.id = b.unit_id")
}

func (s *Storage) GetBarber(ctx context.Context, id string) (*types.Barber, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetBarber")
	defer span.End()

	b, err := scanBarber(
		s.selectBarbers(ctx).
			Where(sq.Eq{"b.id": id}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get barber: %w", err)
	}

	return b, nil
}

// GetBarberByTermToken only matches a live token, consumed tokens are NULL and never match
func (s *Storage) GetBarberByTermToken(ctx context.Context, token string) (*types.Barber, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetBarberByTermToken")
	defer span.End()

	if token == "" {
		return nil, ErrNotFound
	}

	b, err := scanBarber(
		s.selectBarbers(ctx).
			Where(sq.Eq{"b.term_token": token}).
			QueryRowContext(ctx),
	)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get barber by term token: %w", err)
	}

	return b, nil
}

func (s *Storage) SetBarberTermToken(ctx context.Context, barberID, token string) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetBarberTermToken")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update(TableBarbers).
		Set("term_token", token).
		Where(sq.Eq{"id": barberID}).
		ExecContext(ctx)
	if err != nil {
		return WrapDuplicateKeyError(fmt.Errorf("failed to store term token: %w", err), "term token")
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

// ConsumeTermToken clears a live term token and returns the barber that held it.
// The conditional update is the only synchronisation between concurrent acceptances:
// whoever clears the token first wins, everybody else gets ErrNotFound.
func (s *Storage) ConsumeTermToken(ctx context.Context, token string) (*types.Barber, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ConsumeTermToken")
	defer span.End()

	if token == "" {
		return nil, ErrNotFound
	}

	var b types.Barber
	err := s.db.Statement(ctx).
		Update(TableBarbers).
		Set("term_token", nil).
		Where(sq.Eq{"term_token": token}).
		Suffix("RETURNING id, company_id, name, commission_rate").
		QueryRowContext(ctx).
		Scan(&b.ID, &b.CompanyID, &b.Name, &b.CommissionRate)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to consume term token: %w", err)
	}

	return &b, nil
}

func (s *Storage) SetBarberActive(ctx context.Context, barberID string, active bool) error {
	ctx, span := s.tracer.Start(ctx, "storage.SetBarberActive")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update(TableBarbers).
		Set("is_active", active).
		Where(sq.Eq{"id": barberID}).
		ExecContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to update barber: %w", err)
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
