// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// keeps every statement well under the postgres bind parameter limit
const maxInValues = 1000

func chunks(values []string) [][]string {
	var out [][]string
	for len(values) > maxInValues {
		out = append(out, values[:maxInValues])
		values = values[maxInValues:]
	}
	if len(values) > 0 {
		out = append(out, values)
	}
	return out
}

// ListIDs returns the ids of the rows in table whose column matches any of values.
func (s *Storage) ListIDs(ctx context.Context, table, column string, values []string) ([]string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListIDs")
	defer span.End()

	if !knownTable(table, column) {
		return nil, fmt.Errorf("%s.%s: %w", table, column, ErrUnknownTable)
	}

	ids := make([]string, 0)
	for _, chunk := range chunks(values) {
		rows, err := s.db.Statement(ctx).
			Select("id").
			From(table).
			Where(sq.Eq{column: chunk}).
			QueryContext(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list %s ids: %w", table, err)
		}

		for rows.Next() {
			var id string
			if err := rows.Scan(&id); err != nil {
				rows.Close()
				return nil, fmt.Errorf("failed to scan %s id: %w", table, err)
			}
			ids = append(ids, id)
		}

		err = rows.Err()
		rows.Close()
		if err != nil {
			return nil, fmt.Errorf("rows iteration error: %w", err)
		}
	}

	return ids, nil
}

// DeleteWhereIn deletes the rows in table whose column matches any of values and reports how many
// went away. Nothing matching is a successful no-op.
func (s *Storage) DeleteWhereIn(ctx context.Context, table, column string, values []string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteWhereIn")
	defer span.End()

	if !knownTable(table, column) {
		return 0, fmt.Errorf("%s.%s: %w", table, column, ErrUnknownTable)
	}

	var deleted int64
	for _, chunk := range chunks(values) {
		res, err := s.db.Statement(ctx).
			Delete(table).
			Where(sq.Eq{column: chunk}).
			ExecContext(ctx)
		if err != nil {
			return deleted, WrapForeignKeyError(fmt.Errorf("failed to delete from %s: %w", table, err), table)
		}

		n, err := res.RowsAffected()
		if err != nil {
			return deleted, fmt.Errorf("failed to check rows affected: %w", err)
		}
		deleted += n
	}

	return deleted, nil
}
