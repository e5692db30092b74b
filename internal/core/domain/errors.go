package domain

import (
	"errors"
	"fmt"
)

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// Conversion Errors.

	// ErrMalformedExpression indicates a unit expression is syntactically invalid:
	// empty input, a dangling operator, a non-integer or out-of-range exponent,
	// or a disallowed character.
	ErrMalformedExpression = errors.New("malformed unit expression")

	// ErrUnknownUnit indicates a syntactically valid symbol is absent from the registry.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrIncompatibleUnits indicates two units reduce to different dimensions.
	// Only returned by conversion, never by the compatibility check.
	ErrIncompatibleUnits = errors.New("incompatible units")

	// ErrScaleOutOfRange indicates a reduced scale or conversion factor is not
	// a positive finite float64, e.g. "km^400".
	ErrScaleOutOfRange = errors.New("scale out of range")
)

// ExpressionError describes where and why parsing a unit expression failed.
// It unwraps to ErrMalformedExpression.
type ExpressionError struct {
	// Expression is the input as given by the caller.
	Expression string

	// Pos is the byte offset of the offending token in the whitespace-stripped input.
	Pos int

	// Reason is a short description of the problem.
	Reason string
}

// Error implements the error interface.
func (e *ExpressionError) Error() string {
	return fmt.Sprintf("%s: %s at position %d in %q", ErrMalformedExpression, e.Reason, e.Pos, e.Expression)
}

// Unwrap allows errors.Is(err, ErrMalformedExpression).
func (e *ExpressionError) Unwrap() error {
	return ErrMalformedExpression
}
