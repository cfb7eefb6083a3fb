// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/barbersoft/account-service/internal/types"
)

var unitColumns = []string{
	"id",
	"company_id",
	"COALESCE(user_id, '')",
	"name",
	"COALESCE(address, '')",
	"COALESCE(phone, '')",
	"COALESCE(manager_name, '')",
	"evolution_instance_name",
}

func (s *Storage) GetUnitByInstanceName(ctx context.Context, instance string) (*types.Unit, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetUnitByInstanceName")
	defer span.End()

	var u types.Unit
	err := s.db.Statement(ctx).
		Select(unitColumns...).
		From(TableUnits).
		Where(sq.Eq{"evolution_instance_name": instance}).
		QueryRowContext(ctx).
		Scan(&u.ID, &u.CompanyID, &u.UserID, &u.Name, &u.Address, &u.Phone, &u.ManagerName, &u.EvolutionInstanceName)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get unit: %w", err)
	}

	return &u, nil
}

func (s *Storage) ListActiveBarbersByUnit(ctx context.Context, unitID string) ([]*types.Barber, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveBarbersByUnit")
	defer span.End()

	rows, err := s.selectBarbers(ctx).
		Where(sq.Eq{"b.unit_id": unitID, "b.is_active": true}).
		OrderBy("b.name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list barbers: %w", err)
	}
	defer rows.Close()

	barbers := make([]*types.Barber, 0)
	for rows.Next() {
		b, err := scanBarber(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan barber: %w", err)
		}
		barbers = append(barbers, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return barbers, nil
}

func (s *Storage) ListActiveServicesByUnit(ctx context.Context, unitID string) ([]*types.Service, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActiveServicesByUnit")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "name", "price", "duration_minutes").
		From(TableServices).
		Where(sq.Eq{"unit_id": unitID, "is_active": true}).
		OrderBy("name").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	defer rows.Close()

	services := make([]*types.Service, 0)
	for rows.Next() {
		var svc types.Service
		if err := rows.Scan(&svc.ID, &svc.Name, &svc.Price, &svc.DurationMinutes); err != nil {
			return nil, fmt.Errorf("failed to scan service: %w", err)
		}
		services = append(services, &svc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return services, nil
}

// GetWhatsappAgentEnabled reads the owner's business settings, no settings row means disabled
func (s *Storage) GetWhatsappAgentEnabled(ctx context.Context, userID string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetWhatsappAgentEnabled")
	defer span.End()

	var enabled bool
	err := s.db.Statement(ctx).
		Select("COALESCE(whatsapp_agent_enabled, FALSE)").
		From(TableBusinessSettings).
		Where(sq.Eq{"user_id": userID}).
		Limit(1).
		QueryRowContext(ctx).
		Scan(&enabled)
	if err != nil {
		if isNoRows(err) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get business settings: %w", err)
	}

	return enabled, nil
}
