package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/unitconv/internal/core/domain"
	"github.com/custodia-labs/unitconv/internal/core/ports/driven"
)

// mapRegistry is a minimal driven.UnitRegistry over a fixed table.
type mapRegistry map[string]domain.UnitDef

var _ driven.UnitRegistry = mapRegistry(nil)

func (r mapRegistry) Lookup(symbol string) (domain.UnitDef, error) {
	def, ok := r[symbol]
	if !ok {
		return domain.UnitDef{}, fmt.Errorf("%w: %q", domain.ErrUnknownUnit, symbol)
	}
	return def, nil
}

func (r mapRegistry) Units() []domain.UnitDef {
	defs := make([]domain.UnitDef, 0, len(r))
	for _, d := range r {
		defs = append(defs, d)
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Symbol < defs[j].Symbol })
	return defs
}

// sampleRegistry holds exactly the reference units.
func sampleRegistry() mapRegistry {
	defs := []domain.UnitDef{
		{Symbol: "kg", Dimension: domain.Mass, Scale: 1.0},
		{Symbol: "lb", Dimension: domain.Mass, Scale: 0.45359237},
		{Symbol: "s", Dimension: domain.Time, Scale: 1.0},
		{Symbol: "h", Dimension: domain.Time, Scale: 3600.0},
		{Symbol: "m", Dimension: domain.Length, Scale: 1.0},
		{Symbol: "in", Dimension: domain.Length, Scale: 0.0254},
		{Symbol: "ms", Dimension: domain.Time, Scale: 0.001},
	}
	r := make(mapRegistry, len(defs))
	for _, d := range defs {
		r[d.Symbol] = d
	}
	return r
}

// countingCache is a driven.FactorCache that records hits.
type countingCache struct {
	mu      sync.Mutex
	factors map[[2]string]float64
	hits    int
	puts    int
}

var _ driven.FactorCache = (*countingCache)(nil)

func newCountingCache() *countingCache {
	return &countingCache{factors: make(map[[2]string]float64)}
}

func (c *countingCache) Get(source, target string) (float64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	f, ok := c.factors[[2]string{source, target}]
	if ok {
		c.hits++
	}
	return f, ok
}

func (c *countingCache) Put(source, target string, factor float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.puts++
	c.factors[[2]string{source, target}] = factor
}

func (c *countingCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.factors)
}

func (c *countingCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.factors = make(map[[2]string]float64)
}

// failingUnitStore returns err from every call.
type failingUnitStore struct {
	err error
}

var _ driven.CustomUnitStore = (*failingUnitStore)(nil)

var errStoreDown = errors.New("store down")

func (s *failingUnitStore) Save(_ context.Context, _ domain.UnitDef) error { return s.err }

func (s *failingUnitStore) Get(_ context.Context, _ string) (*domain.UnitDef, error) {
	return nil, s.err
}

func (s *failingUnitStore) Delete(_ context.Context, _ string) error { return s.err }

func (s *failingUnitStore) List(_ context.Context) ([]domain.UnitDef, error) { return nil, s.err }
