// Package domain defines the core business entities for unitconv.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Dimension: Exponents over the seven SI base quantities
//   - UnitDef: A registry entry (symbol, dimension, scale to SI)
//   - UnitTerm: A parsed symbol with its integer exponent
//   - CompoundUnit: An ordered list of terms from one expression
//   - ReducedUnit: The canonical (dimension, scale) pair of an expression
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
