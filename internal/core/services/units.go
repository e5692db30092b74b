package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/unitconv/internal/core/domain"
	"github.com/custodia-labs/unitconv/internal/core/ports/driven"
	"github.com/custodia-labs/unitconv/internal/core/ports/driving"
	"github.com/custodia-labs/unitconv/internal/logger"
)

// Ensure UnitService implements the interface.
var _ driving.UnitService = (*UnitService)(nil)

// errNoCustomStore is returned when custom unit operations run without a store.
var errNoCustomStore = errors.New("custom unit store not configured")

// UnitService exposes the registry and manages custom unit definitions.
type UnitService struct {
	registry driven.UnitRegistry
	reducer  *Reducer
	store    driven.CustomUnitStore
}

// NewUnitService creates a new unit service.
// The store parameter is optional (can be nil); without it units cannot be defined.
func NewUnitService(registry driven.UnitRegistry, store driven.CustomUnitStore) *UnitService {
	return &UnitService{
		registry: registry,
		reducer:  NewReducer(registry),
		store:    store,
	}
}

// List returns every registered unit.
func (s *UnitService) List(_ context.Context) ([]domain.UnitDef, error) {
	return s.registry.Units(), nil
}

// Describe resolves a single symbol, including prefixed forms.
func (s *UnitService) Describe(_ context.Context, symbol string) (domain.UnitDef, error) {
	if !domain.IsSymbol(symbol) {
		return domain.UnitDef{}, fmt.Errorf("%w: %q is not a unit symbol", domain.ErrInvalidInput, symbol)
	}
	return s.registry.Lookup(symbol)
}

// Define stores a custom unit equal to scale times the reduced base expression.
// The registry is immutable, so the new unit is picked up on the next start.
func (s *UnitService) Define(
	ctx context.Context, symbol, name string, scale float64, base string,
) (domain.UnitDef, error) {
	if s.store == nil {
		return domain.UnitDef{}, errNoCustomStore
	}

	logger.Section("Define Unit")
	logger.Debug("Symbol: %q, Scale: %g, Base: %q", symbol, scale, base)

	if _, err := s.registry.Lookup(symbol); err == nil {
		return domain.UnitDef{}, fmt.Errorf("%w: %q is already a registered unit", domain.ErrAlreadyExists, symbol)
	}
	if existing, err := s.store.Get(ctx, symbol); err == nil && existing != nil {
		return domain.UnitDef{}, fmt.Errorf("%w: custom unit %q", domain.ErrAlreadyExists, symbol)
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return domain.UnitDef{}, fmt.Errorf("checking custom unit: %w", err)
	}

	reduced, err := s.reducer.ReduceExpression(base)
	if err != nil {
		return domain.UnitDef{}, fmt.Errorf("base expression: %w", err)
	}

	def := domain.UnitDef{
		Symbol:    symbol,
		Name:      name,
		Dimension: reduced.Dimension,
		Scale:     scale * reduced.Scale,
	}
	if err := def.Validate(); err != nil {
		return domain.UnitDef{}, err
	}

	if err := s.store.Save(ctx, def); err != nil {
		return domain.UnitDef{}, fmt.Errorf("saving custom unit: %w", err)
	}

	logger.Info("Defined %s = %g SI (%s)", def.Symbol, def.Scale, def.Dimension)
	return def, nil
}

// Remove deletes a custom unit.
func (s *UnitService) Remove(ctx context.Context, symbol string) error {
	if s.store == nil {
		return errNoCustomStore
	}
	return s.store.Delete(ctx, symbol)
}

// Custom returns the stored custom units.
func (s *UnitService) Custom(ctx context.Context) ([]domain.UnitDef, error) {
	if s.store == nil {
		return nil, nil
	}
	return s.store.List(ctx)
}
