package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/unitconv/internal/core/domain"
	"github.com/custodia-labs/unitconv/internal/core/ports/driven"
)

// Ensure CustomUnitStore implements the interface.
var _ driven.CustomUnitStore = (*CustomUnitStore)(nil)

// CustomUnitStore is an in-memory implementation of driven.CustomUnitStore.
type CustomUnitStore struct {
	mu    sync.RWMutex
	units map[string]domain.UnitDef
}

// NewCustomUnitStore creates a new in-memory custom unit store.
func NewCustomUnitStore() *CustomUnitStore {
	return &CustomUnitStore{
		units: make(map[string]domain.UnitDef),
	}
}

// Save stores or updates a custom unit.
func (s *CustomUnitStore) Save(_ context.Context, unit domain.UnitDef) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.units[unit.Symbol] = unit
	return nil
}

// Get retrieves a custom unit by symbol.
func (s *CustomUnitStore) Get(_ context.Context, symbol string) (*domain.UnitDef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	unit, ok := s.units[symbol]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &unit, nil
}

// Delete removes a custom unit.
func (s *CustomUnitStore) Delete(_ context.Context, symbol string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.units[symbol]; !ok {
		return domain.ErrNotFound
	}
	delete(s.units, symbol)
	return nil
}

// List returns all custom units sorted by symbol.
func (s *CustomUnitStore) List(_ context.Context) ([]domain.UnitDef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	units := make([]domain.UnitDef, 0, len(s.units))
	for _, u := range s.units {
		units = append(units, u)
	}
	sort.Slice(units, func(i, j int) bool {
		return units[i].Symbol < units[j].Symbol
	})
	return units, nil
}
