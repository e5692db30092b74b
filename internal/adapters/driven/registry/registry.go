package registry

import (
	"fmt"
	"sort"

	"github.com/custodia-labs/unitconv/internal/core/domain"
	"github.com/custodia-labs/unitconv/internal/core/ports/driven"
)

// Ensure Registry implements the interface.
var _ driven.UnitRegistry = (*Registry)(nil)

// Registry is an immutable symbol table of unit definitions.
type Registry struct {
	units      map[string]domain.UnitDef
	prefixable map[string]bool
}

// NewBuiltin returns a registry holding only the built-in units.
func NewBuiltin() *Registry {
	r := &Registry{
		units:      make(map[string]domain.UnitDef, len(builtins)),
		prefixable: make(map[string]bool),
	}
	for _, b := range builtins {
		r.units[b.def.Symbol] = b.def
		if b.prefixable {
			r.prefixable[b.def.Symbol] = true
		}
	}
	return r
}

// New returns a registry holding the built-in units plus custom definitions.
// Fails if a custom definition is invalid or resolves to an existing symbol.
func New(custom ...domain.UnitDef) (*Registry, error) {
	r := NewBuiltin()
	for _, def := range custom {
		if err := r.addCustom(def); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Load is New for definitions read back from storage: entries New would
// reject are left out and reported instead, so one stale row cannot make
// the registry unusable.
func Load(custom ...domain.UnitDef) (*Registry, []error) {
	r := NewBuiltin()
	var skipped []error
	for _, def := range custom {
		if err := r.addCustom(def); err != nil {
			skipped = append(skipped, err)
		}
	}
	return r, skipped
}

func (r *Registry) addCustom(def domain.UnitDef) error {
	if err := def.Validate(); err != nil {
		return fmt.Errorf("custom unit %q: %w", def.Symbol, err)
	}
	if _, err := r.Lookup(def.Symbol); err == nil {
		return fmt.Errorf("custom unit %q: %w", def.Symbol, domain.ErrAlreadyExists)
	}
	r.units[def.Symbol] = def
	return nil
}

// Lookup returns the definition for symbol, resolving SI prefixes.
func (r *Registry) Lookup(symbol string) (domain.UnitDef, error) {
	if def, ok := r.units[symbol]; ok {
		return def, nil
	}

	var (
		found domain.UnitDef
		ok    bool
	)
	splitPrefix(symbol, func(p prefix, base string) bool {
		if !r.prefixable[base] {
			return false
		}
		def := r.units[base]
		found = domain.UnitDef{
			Symbol:    symbol,
			Name:      p.name + def.Name,
			Dimension: def.Dimension,
			Scale:     p.factor * def.Scale,
		}
		ok = true
		return true
	})
	if ok {
		return found, nil
	}

	return domain.UnitDef{}, fmt.Errorf("%w: %q", domain.ErrUnknownUnit, symbol)
}

// Units returns every stored definition sorted by symbol.
// Prefixed forms are derived on lookup and not listed.
func (r *Registry) Units() []domain.UnitDef {
	defs := make([]domain.UnitDef, 0, len(r.units))
	for _, def := range r.units {
		defs = append(defs, def)
	}
	sort.Slice(defs, func(i, j int) bool {
		return defs[i].Symbol < defs[j].Symbol
	})
	return defs
}

// Len returns the number of stored definitions.
func (r *Registry) Len() int {
	return len(r.units)
}
