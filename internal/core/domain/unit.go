package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// UnitDef is a registry entry: a unit symbol, its dimension and the number
// of SI base units one instance of the unit equals.
type UnitDef struct {
	// Symbol is the unique registry key (e.g. "lb").
	Symbol string `json:"symbol"`

	// Name is a human-readable name (e.g. "pound"). Optional.
	Name string `json:"name,omitempty"`

	// Dimension is the unit's exponent vector over the SI base quantities.
	Dimension Dimension `json:"dimension"`

	// Scale is how many SI base units one instance of this unit equals.
	Scale float64 `json:"scale"`
}

// Validate checks the symbol, scale and dimension bounds of a definition.
func (u UnitDef) Validate() error {
	if u.Symbol == "" {
		return fmt.Errorf("%w: unit symbol is required", ErrInvalidInput)
	}
	if !IsSymbol(u.Symbol) {
		return fmt.Errorf("%w: unit symbol %q must contain only ASCII letters", ErrInvalidInput, u.Symbol)
	}
	if math.IsNaN(u.Scale) || math.IsInf(u.Scale, 0) || u.Scale <= 0 {
		return fmt.Errorf("%w: unit scale must be a positive finite number, got %v", ErrInvalidInput, u.Scale)
	}
	for _, e := range u.Dimension {
		if !ExponentInRange(e) {
			return fmt.Errorf("%w: unit dimension %s has an exponent out of range", ErrInvalidInput, u.Dimension)
		}
	}
	return nil
}

// IsSymbol reports whether s is a well-formed unit symbol: one or more ASCII letters.
func IsSymbol(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !IsSymbolByte(s[i]) {
			return false
		}
	}
	return true
}

// IsSymbolByte reports whether c may appear in a unit symbol.
func IsSymbolByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// UnitTerm is one atomic reference in a parsed expression.
// Exponent is negative for terms that appeared after a '/'.
type UnitTerm struct {
	Symbol   string `json:"symbol"`
	Exponent int    `json:"exponent"`
}

// String renders the term as "symbol" or "symbol^exponent".
func (t UnitTerm) String() string {
	if t.Exponent == 1 {
		return t.Symbol
	}
	return t.Symbol + "^" + strconv.Itoa(t.Exponent)
}

// CompoundUnit is the ordered sequence of terms of a parsed expression.
// Order carries no meaning for reduction.
type CompoundUnit []UnitTerm

// String renders the terms joined by '*', e.g. "kg*m*s^-2".
func (c CompoundUnit) String() string {
	parts := make([]string, len(c))
	for i, t := range c {
		parts[i] = t.String()
	}
	return strings.Join(parts, "*")
}

// ReducedUnit is the canonical form of a compound unit: its dimension and
// its scale factor relative to the SI base units of that dimension.
type ReducedUnit struct {
	Dimension Dimension `json:"dimension"`
	Scale     float64   `json:"scale"`
}

// CompatibleWith reports whether r and o measure the same kind of quantity.
func (r ReducedUnit) CompatibleWith(o ReducedUnit) bool {
	return r.Dimension == o.Dimension
}
