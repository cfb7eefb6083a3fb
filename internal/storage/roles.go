// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

func (s *Storage) HasRole(ctx context.Context, userID, role string) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.HasRole")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From(TableUserRoles).
		Where(sq.Eq{"user_id": userID, "role": role}).
		QueryRowContext(ctx).
		Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check role: %w", err)
	}

	return count > 0, nil
}
