// Package registry provides the static unit table behind driven.UnitRegistry.
//
// The table holds the SI base and derived units, common imperial and US
// customary units, and the SI prefixes. It is built once and never mutated,
// so a single Registry may be shared by any number of goroutines.
//
// # Resolution
//
// Lookup tries an exact symbol match first, then a known SI prefix followed
// by a prefixable base symbol. Exact matches win, so "h" is the hour,
// "min" the minute and "ms" the millisecond.
//
// # Custom Units
//
// New accepts extra definitions (typically loaded from the custom unit
// store). A custom unit may not shadow a built-in or prefixed symbol and is
// never prefixable.
package registry
