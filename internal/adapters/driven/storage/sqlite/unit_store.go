package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/unitconv/internal/core/domain"
	"github.com/custodia-labs/unitconv/internal/core/ports/driven"
)

// customUnitStore implements driven.CustomUnitStore.
type customUnitStore struct {
	store *Store
}

var _ driven.CustomUnitStore = (*customUnitStore)(nil)

// Save stores or updates a custom unit.
func (s *customUnitStore) Save(ctx context.Context, unit domain.UnitDef) error {
	dimensionJSON, err := json.Marshal(unit.Dimension)
	if err != nil {
		return fmt.Errorf("marshalling dimension: %w", err)
	}

	now := time.Now().UTC()
	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO custom_units (symbol, name, dimension, scale, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(symbol) DO UPDATE SET
			name = excluded.name,
			dimension = excluded.dimension,
			scale = excluded.scale,
			updated_at = excluded.updated_at
	`, unit.Symbol, unit.Name, string(dimensionJSON), unit.Scale, now, now)

	if err != nil {
		return fmt.Errorf("saving custom unit: %w", err)
	}
	return nil
}

// Get retrieves a custom unit by symbol.
func (s *customUnitStore) Get(ctx context.Context, symbol string) (*domain.UnitDef, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT symbol, name, dimension, scale FROM custom_units WHERE symbol = ?
	`, symbol)

	unit, err := scanUnit(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return unit, nil
}

// Delete removes a custom unit.
func (s *customUnitStore) Delete(ctx context.Context, symbol string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM custom_units WHERE symbol = ?", symbol)
	if err != nil {
		return fmt.Errorf("deleting custom unit: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking deleted rows: %w", err)
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List returns all custom units sorted by symbol.
func (s *customUnitStore) List(ctx context.Context) ([]domain.UnitDef, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT symbol, name, dimension, scale FROM custom_units ORDER BY symbol
	`)
	if err != nil {
		return nil, fmt.Errorf("querying custom units: %w", err)
	}
	defer rows.Close()

	var units []domain.UnitDef //nolint:prealloc // size unknown from query
	for rows.Next() {
		unit, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, *unit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating custom units: %w", err)
	}

	return units, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUnit(row rowScanner) (*domain.UnitDef, error) {
	var unit domain.UnitDef
	var name sql.NullString
	var dimensionJSON string
	if err := row.Scan(&unit.Symbol, &name, &dimensionJSON, &unit.Scale); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning custom unit: %w", err)
	}

	if err := json.Unmarshal([]byte(dimensionJSON), &unit.Dimension); err != nil {
		return nil, fmt.Errorf("unmarshaling dimension: %w", err)
	}
	unit.Name = name.String

	return &unit, nil
}
