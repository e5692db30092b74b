package registry

import "strings"

// prefix is an SI multiplier that may precede a prefixable unit symbol.
type prefix struct {
	symbol string
	name   string
	factor float64
}

// prefixes are ordered longest symbol first so "da" is tried before "d"
// and "mu" before "m".
var prefixes = []prefix{
	{"da", "deca", 1e1},
	{"mu", "micro", 1e-6},
	{"f", "femto", 1e-15},
	{"p", "pico", 1e-12},
	{"n", "nano", 1e-9},
	{"m", "milli", 1e-3},
	{"c", "centi", 1e-2},
	{"d", "deci", 1e-1},
	{"h", "hecto", 1e2},
	{"k", "kilo", 1e3},
	{"M", "mega", 1e6},
	{"G", "giga", 1e9},
	{"T", "tera", 1e12},
	{"P", "peta", 1e15},
}

// splitPrefix yields every (prefix, remainder) split of symbol with a
// non-empty remainder, in prefix table order.
func splitPrefix(symbol string, yield func(p prefix, base string) bool) {
	for _, p := range prefixes {
		if len(symbol) > len(p.symbol) && strings.HasPrefix(symbol, p.symbol) {
			if yield(p, symbol[len(p.symbol):]) {
				return
			}
		}
	}
}
