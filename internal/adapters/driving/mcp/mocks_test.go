package mcp

import (
	"context"

	"github.com/custodia-labs/unitconv/internal/core/domain"
	"github.com/custodia-labs/unitconv/internal/core/ports/driving"
)

var (
	_ driving.ConversionService = (*mockConversionService)(nil)
	_ driving.UnitService       = (*mockUnitService)(nil)
)

// mockConversionService is a mock implementation of driving.ConversionService.
type mockConversionService struct {
	factor     float64
	compatible bool
	unit       domain.CompoundUnit
	reduced    domain.ReducedUnit
	err        error
}

func (m *mockConversionService) ConversionFactor(_, _ string) (float64, error) {
	return m.factor, m.err
}

func (m *mockConversionService) AreCompatible(_, _ string) (bool, error) {
	return m.compatible, m.err
}

func (m *mockConversionService) Convert(value float64, _, _ string) (float64, error) {
	return value * m.factor, m.err
}

func (m *mockConversionService) Reduce(_ string) (domain.ReducedUnit, error) {
	return m.reduced, m.err
}

func (m *mockConversionService) Parse(_ string) (domain.CompoundUnit, error) {
	return m.unit, m.err
}

// mockUnitService is a mock implementation of driving.UnitService.
type mockUnitService struct {
	units []domain.UnitDef
	unit  domain.UnitDef
	err   error
}

func (m *mockUnitService) List(_ context.Context) ([]domain.UnitDef, error) {
	return m.units, m.err
}

func (m *mockUnitService) Describe(_ context.Context, _ string) (domain.UnitDef, error) {
	return m.unit, m.err
}

func (m *mockUnitService) Define(_ context.Context, _, _ string, _ float64, _ string) (domain.UnitDef, error) {
	return m.unit, m.err
}

func (m *mockUnitService) Remove(_ context.Context, _ string) error {
	return m.err
}

func (m *mockUnitService) Custom(_ context.Context) ([]domain.UnitDef, error) {
	return m.units, m.err
}
