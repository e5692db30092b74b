package services

import (
	"fmt"
	"math"

	"github.com/custodia-labs/unitconv/internal/core/domain"
	"github.com/custodia-labs/unitconv/internal/core/ports/driven"
	"github.com/custodia-labs/unitconv/internal/core/ports/driving"
	"github.com/custodia-labs/unitconv/internal/logger"
)

// Ensure ConversionService implements the interface.
var _ driving.ConversionService = (*ConversionService)(nil)

// ConversionService computes conversion factors between unit expressions.
type ConversionService struct {
	reducer *Reducer
	cache   driven.FactorCache
}

// NewConversionService creates a new conversion service.
func NewConversionService(registry driven.UnitRegistry) *ConversionService {
	return &ConversionService{
		reducer: NewReducer(registry),
	}
}

// SetFactorCache enables memoisation of conversion factors.
// Passing nil disables it.
func (s *ConversionService) SetFactorCache(cache driven.FactorCache) {
	s.cache = cache
}

// ConversionFactor returns reduce(source).scale / reduce(target).scale.
func (s *ConversionService) ConversionFactor(source, target string) (float64, error) {
	logger.Section("Conversion Factor")
	logger.Debug("Source: %q, Target: %q", source, target)

	if s.cache != nil {
		if factor, ok := s.cache.Get(source, target); ok {
			logger.Debug("Cache hit: %g", factor)
			return factor, nil
		}
	}

	src, tgt, err := s.reducePair(source, target)
	if err != nil {
		return 0, err
	}

	if !src.CompatibleWith(tgt) {
		return 0, fmt.Errorf("%w: %q has dimension %s, %q has dimension %s",
			domain.ErrIncompatibleUnits, source, src.Dimension, target, tgt.Dimension)
	}

	if err := checkScale(source, src.Scale); err != nil {
		return 0, err
	}
	if err := checkScale(target, tgt.Scale); err != nil {
		return 0, err
	}

	factor := src.Scale / tgt.Scale
	if !finitePositive(factor) {
		return 0, fmt.Errorf("%w: factor from %q to %q is %g", domain.ErrScaleOutOfRange, source, target, factor)
	}
	logger.Info("Factor %q -> %q: %g", source, target, factor)

	if s.cache != nil {
		s.cache.Put(source, target, factor)
	}
	return factor, nil
}

// AreCompatible reports whether a and b reduce to the same dimension.
// It never returns domain.ErrIncompatibleUnits, and ignores scale overflow
// since only dimensions are compared.
func (s *ConversionService) AreCompatible(a, b string) (bool, error) {
	logger.Section("Compatibility")
	logger.Debug("A: %q, B: %q", a, b)

	ra, rb, err := s.reducePair(a, b)
	if err != nil {
		return false, err
	}

	compatible := ra.CompatibleWith(rb)
	logger.Info("Compatible %q ~ %q: %t", a, b, compatible)
	return compatible, nil
}

// Convert converts value from source units into target units.
func (s *ConversionService) Convert(value float64, source, target string) (float64, error) {
	factor, err := s.ConversionFactor(source, target)
	if err != nil {
		return 0, err
	}
	return value * factor, nil
}

// Reduce parses and reduces a single expression.
// Fails with domain.ErrScaleOutOfRange if the scale is not a positive finite number.
func (s *ConversionService) Reduce(expression string) (domain.ReducedUnit, error) {
	reduced, err := s.reducer.ReduceExpression(expression)
	if err != nil {
		return domain.ReducedUnit{}, err
	}
	if err := checkScale(expression, reduced.Scale); err != nil {
		return domain.ReducedUnit{}, err
	}
	return reduced, nil
}

// Parse parses an expression without consulting the registry.
func (s *ConversionService) Parse(expression string) (domain.CompoundUnit, error) {
	return ParseExpression(expression)
}

// reducePair reduces both operands, failing on the first error.
func (s *ConversionService) reducePair(a, b string) (domain.ReducedUnit, domain.ReducedUnit, error) {
	ra, err := s.reducer.ReduceExpression(a)
	if err != nil {
		return domain.ReducedUnit{}, domain.ReducedUnit{}, err
	}
	rb, err := s.reducer.ReduceExpression(b)
	if err != nil {
		return domain.ReducedUnit{}, domain.ReducedUnit{}, err
	}
	return ra, rb, nil
}

// checkScale rejects scales that overflowed to +Inf or underflowed to 0.
func checkScale(expression string, scale float64) error {
	if !finitePositive(scale) {
		return fmt.Errorf("%w: %q reduces to scale %g", domain.ErrScaleOutOfRange, expression, scale)
	}
	return nil
}

func finitePositive(f float64) bool {
	return f > 0 && !math.IsInf(f, 0)
}
