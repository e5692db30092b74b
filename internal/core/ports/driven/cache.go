package driven

// FactorCache memoises conversion factors keyed on the raw
// (source, target) expression pair. Implementations must be safe
// for concurrent use.
type FactorCache interface {
	// Get returns the cached factor and whether it was present.
	Get(source, target string) (float64, bool)

	// Put stores a factor.
	Put(source, target string, factor float64)

	// Len returns the number of cached entries.
	Len() int

	// Clear removes every entry.
	Clear()
}
