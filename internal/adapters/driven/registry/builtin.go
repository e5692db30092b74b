package registry

import "github.com/custodia-labs/unitconv/internal/core/domain"

// dim builds a dimension vector in (mass, length, time, current,
// temperature, amount, luminosity) order.
func dim(m, l, t, i, th, n, j int) domain.Dimension {
	return domain.Dimension{m, l, t, i, th, n, j}
}

// builtin is one row of the static table.
type builtin struct {
	def        domain.UnitDef
	prefixable bool
}

// si returns a prefixable SI unit.
func si(symbol, name string, d domain.Dimension, scale float64) builtin {
	return builtin{def: domain.UnitDef{Symbol: symbol, Name: name, Dimension: d, Scale: scale}, prefixable: true}
}

// fixed returns a unit that does not accept SI prefixes.
func fixed(symbol, name string, d domain.Dimension, scale float64) builtin {
	return builtin{def: domain.UnitDef{Symbol: symbol, Name: name, Dimension: d, Scale: scale}}
}

var (
	dimVolume = dim(0, 3, 0, 0, 0, 0, 0)
	dimArea   = dim(0, 2, 0, 0, 0, 0, 0)
)

// builtins is the static unit table. Scales are relative to the SI base
// unit of the dimension, with the kilogram as the base of mass.
var builtins = []builtin{
	// SI base units. The gram carries the prefixes; kg is its own entry.
	fixed("kg", "kilogram", domain.Mass, 1.0),
	si("g", "gram", domain.Mass, 1e-3),
	si("m", "metre", domain.Length, 1.0),
	si("s", "second", domain.Time, 1.0),
	si("A", "ampere", domain.Current, 1.0),
	si("K", "kelvin", domain.Temperature, 1.0),
	si("mol", "mole", domain.Amount, 1.0),
	si("cd", "candela", domain.Luminosity, 1.0),

	// SI derived units.
	si("rad", "radian", domain.Dimensionless, 1.0),
	si("sr", "steradian", domain.Dimensionless, 1.0),
	si("Hz", "hertz", dim(0, 0, -1, 0, 0, 0, 0), 1.0),
	si("N", "newton", dim(1, 1, -2, 0, 0, 0, 0), 1.0),
	si("Pa", "pascal", dim(1, -1, -2, 0, 0, 0, 0), 1.0),
	si("J", "joule", dim(1, 2, -2, 0, 0, 0, 0), 1.0),
	si("W", "watt", dim(1, 2, -3, 0, 0, 0, 0), 1.0),
	si("C", "coulomb", dim(0, 0, 1, 1, 0, 0, 0), 1.0),
	si("V", "volt", dim(1, 2, -3, -1, 0, 0, 0), 1.0),
	si("F", "farad", dim(-1, -2, 4, 2, 0, 0, 0), 1.0),
	si("Ohm", "ohm", dim(1, 2, -3, -2, 0, 0, 0), 1.0),
	si("S", "siemens", dim(-1, -2, 3, 2, 0, 0, 0), 1.0),
	si("Wb", "weber", dim(1, 2, -2, -1, 0, 0, 0), 1.0),
	si("T", "tesla", dim(1, 0, -2, -1, 0, 0, 0), 1.0),
	si("H", "henry", dim(1, 2, -2, -2, 0, 0, 0), 1.0),
	si("lm", "lumen", domain.Luminosity, 1.0),
	si("lx", "lux", dim(0, -2, 0, 0, 0, 0, 1), 1.0),
	si("Bq", "becquerel", dim(0, 0, -1, 0, 0, 0, 0), 1.0),
	si("Gy", "gray", dim(0, 2, -2, 0, 0, 0, 0), 1.0),
	si("Sv", "sievert", dim(0, 2, -2, 0, 0, 0, 0), 1.0),
	si("kat", "katal", dim(0, 0, -1, 0, 0, 1, 0), 1.0),
	si("L", "litre", dimVolume, 1e-3),
	si("l", "litre", dimVolume, 1e-3),

	// Time.
	fixed("ms", "millisecond", domain.Time, 1e-3),
	fixed("min", "minute", domain.Time, 60.0),
	fixed("h", "hour", domain.Time, 3600.0),

	// Length.
	fixed("in", "inch", domain.Length, 0.0254),
	fixed("ft", "foot", domain.Length, 0.3048),
	fixed("yd", "yard", domain.Length, 0.9144),
	fixed("mi", "mile", domain.Length, 1609.344),
	fixed("lightyear", "light-year", domain.Length, 9.4605284e15),

	// Mass.
	fixed("gr", "grain", domain.Mass, 6.479891e-5),
	fixed("oz", "ounce", domain.Mass, 0.0283495231),
	fixed("lb", "pound", domain.Mass, 0.45359237),
	fixed("st", "stone", domain.Mass, 6.35029318),
	fixed("qr", "quarter", domain.Mass, 11.33980925),
	fixed("qtr", "quarter", domain.Mass, 11.33980925),
	fixed("t", "short ton", domain.Mass, 907.18474),

	// Volume.
	fixed("floz", "US fluid ounce", dimVolume, 2.95735296e-5),
	fixed("gi", "US gill", dimVolume, 1.18294118e-4),
	fixed("pt", "US pint", dimVolume, 4.73176473e-4),
	fixed("qt", "US quart", dimVolume, 9.46352946e-4),
	fixed("gal", "US gallon", dimVolume, 3.785411784e-3),

	// Area.
	fixed("acre", "acre", dimArea, 4046.85642),
}
