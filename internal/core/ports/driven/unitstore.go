package driven

import (
	"context"

	"github.com/custodia-labs/unitconv/internal/core/domain"
)

// CustomUnitStore persists user-defined units.
// Stored units are loaded into the registry at startup.
type CustomUnitStore interface {
	// Save stores or updates a custom unit.
	Save(ctx context.Context, unit domain.UnitDef) error

	// Get retrieves a custom unit by symbol.
	// Returns domain.ErrNotFound if absent.
	Get(ctx context.Context, symbol string) (*domain.UnitDef, error)

	// Delete removes a custom unit.
	// Returns domain.ErrNotFound if absent.
	Delete(ctx context.Context, symbol string) error

	// List returns all custom units sorted by symbol.
	List(ctx context.Context) ([]domain.UnitDef, error)
}
