package driving

import (
	"context"

	"github.com/custodia-labs/unitconv/internal/core/domain"
)

// UnitService exposes the unit registry and manages custom units.
type UnitService interface {
	// List returns every registered unit.
	List(ctx context.Context) ([]domain.UnitDef, error)

	// Describe resolves a single symbol, including prefixed forms.
	Describe(ctx context.Context, symbol string) (domain.UnitDef, error)

	// Define stores a custom unit equal to scale times the base expression.
	// The unit is available to conversions from the next start.
	Define(ctx context.Context, symbol, name string, scale float64, base string) (domain.UnitDef, error)

	// Remove deletes a custom unit.
	Remove(ctx context.Context, symbol string) error

	// Custom returns the stored custom units.
	Custom(ctx context.Context) ([]domain.UnitDef, error)
}
