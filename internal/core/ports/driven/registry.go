package driven

import "github.com/custodia-labs/unitconv/internal/core/domain"

// UnitRegistry resolves unit symbols to their definitions.
// Implementations are immutable once constructed and safe for
// concurrent reads without locking.
type UnitRegistry interface {
	// Lookup returns the definition for symbol.
	// Returns an error wrapping domain.ErrUnknownUnit if the symbol is not registered.
	Lookup(symbol string) (domain.UnitDef, error)

	// Units returns every registered definition sorted by symbol.
	// Derived entries (e.g. prefixed forms) are not enumerated.
	Units() []domain.UnitDef
}
