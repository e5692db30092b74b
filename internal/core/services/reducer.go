package services

import (
	"math"

	"github.com/custodia-labs/unitconv/internal/core/domain"
	"github.com/custodia-labs/unitconv/internal/core/ports/driven"
	"github.com/custodia-labs/unitconv/internal/logger"
)

// Reducer maps parsed expressions to their dimension and SI scale.
type Reducer struct {
	registry driven.UnitRegistry
}

// NewReducer creates a reducer backed by the given registry.
func NewReducer(registry driven.UnitRegistry) *Reducer {
	return &Reducer{registry: registry}
}

// Reduce folds every term into a single dimension vector and scale factor.
// The fold is commutative, so term order does not affect the result.
// Returns an error wrapping domain.ErrUnknownUnit if any symbol is unregistered,
// and a *domain.ExpressionError if an exponent of a term or of the accumulated
// dimension leaves domain.MaxExponent. The scale is not range checked and may
// overflow to +Inf or underflow to 0.
func (r *Reducer) Reduce(unit domain.CompoundUnit) (domain.ReducedUnit, error) {
	reduced := domain.ReducedUnit{Scale: 1.0}

	pos := 0
	for _, term := range unit {
		def, err := r.registry.Lookup(term.Symbol)
		if err != nil {
			return domain.ReducedUnit{}, err
		}

		dim, ok := reduced.Dimension.AddScaled(def.Dimension, term.Exponent)
		if !ok {
			return domain.ReducedUnit{}, &domain.ExpressionError{
				Expression: unit.String(),
				Pos:        pos,
				Reason:     "exponent out of range",
			}
		}
		reduced.Dimension = dim
		reduced.Scale *= math.Pow(def.Scale, float64(term.Exponent))

		pos += len(term.String()) + 1
	}

	return reduced, nil
}

// ReduceExpression parses and reduces expression in one step.
func (r *Reducer) ReduceExpression(expression string) (domain.ReducedUnit, error) {
	unit, err := ParseExpression(expression)
	if err != nil {
		return domain.ReducedUnit{}, err
	}

	reduced, err := r.Reduce(unit)
	if err != nil {
		return domain.ReducedUnit{}, err
	}

	logger.Debug("Reduced %q -> %s (dimension %s, scale %g)", expression, unit, reduced.Dimension, reduced.Scale)
	return reduced, nil
}
