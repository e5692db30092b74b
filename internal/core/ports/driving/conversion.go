package driving

import "github.com/custodia-labs/unitconv/internal/core/domain"

// ConversionService converts between compound unit expressions.
type ConversionService interface {
	// ConversionFactor returns the factor that converts a quantity in source
	// units into target units. Fails with domain.ErrIncompatibleUnits when the
	// dimensions differ, with domain.ErrScaleOutOfRange when a scale or the
	// factor does not fit a float64, and propagates domain.ErrMalformedExpression
	// and domain.ErrUnknownUnit.
	ConversionFactor(source, target string) (float64, error)

	// AreCompatible reports whether both expressions reduce to the same dimension.
	// Incompatibility is a false result, not an error.
	AreCompatible(a, b string) (bool, error)

	// Convert converts value from source units into target units.
	Convert(value float64, source, target string) (float64, error)

	// Reduce parses and reduces a single expression.
	Reduce(expression string) (domain.ReducedUnit, error)

	// Parse parses an expression without consulting the registry.
	Parse(expression string) (domain.CompoundUnit, error)
}
