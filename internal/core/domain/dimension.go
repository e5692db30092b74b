package domain

import (
	"strconv"
	"strings"
)

// BaseQuantity indexes one of the seven SI base quantities.
type BaseQuantity int

// SI base quantities in Dimension order.
const (
	QuantityMass BaseQuantity = iota
	QuantityLength
	QuantityTime
	QuantityCurrent
	QuantityTemperature
	QuantityAmount
	QuantityLuminosity

	numBaseQuantities
)

// baseSymbols are the SI base unit symbols used when rendering a Dimension.
var baseSymbols = [numBaseQuantities]string{"kg", "m", "s", "A", "K", "mol", "cd"}

// baseNames are the JSON/config names of the base quantities.
var baseNames = [numBaseQuantities]string{
	"mass", "length", "time", "current", "temperature", "amount", "luminosity",
}

// String returns the lower-case quantity name (e.g. "length").
func (q BaseQuantity) String() string {
	if q < 0 || q >= numBaseQuantities {
		return unknownDescription
	}
	return baseNames[q]
}

// Symbol returns the SI base unit symbol of the quantity (e.g. "m").
func (q BaseQuantity) Symbol() string {
	if q < 0 || q >= numBaseQuantities {
		return ""
	}
	return baseSymbols[q]
}

// BaseQuantities returns all base quantities in Dimension order.
func BaseQuantities() []BaseQuantity {
	qs := make([]BaseQuantity, numBaseQuantities)
	for i := range qs {
		qs[i] = BaseQuantity(i)
	}
	return qs
}

// MaxExponent bounds the magnitude of any exponent in a parsed term or a
// reduced Dimension. Larger values are rejected rather than wrapped.
const MaxExponent = 1 << 16

// ExponentInRange reports whether |e| <= MaxExponent.
func ExponentInRange[T int | int64](e T) bool {
	return e >= -MaxExponent && e <= MaxExponent
}

// Dimension is a vector of exponents over the SI base quantities.
// It is a value type: comparable with == and usable as a map key.
type Dimension [numBaseQuantities]int

// Dimensionless is the zero vector (radians, steradians, pure ratios).
var Dimensionless = Dimension{}

// Base dimension vectors.
var (
	Mass        = Dimension{QuantityMass: 1}
	Length      = Dimension{QuantityLength: 1}
	Time        = Dimension{QuantityTime: 1}
	Current     = Dimension{QuantityCurrent: 1}
	Temperature = Dimension{QuantityTemperature: 1}
	Amount      = Dimension{QuantityAmount: 1}
	Luminosity  = Dimension{QuantityLuminosity: 1}
)

// Of builds a Dimension from a quantity/exponent map.
func Of(exponents map[BaseQuantity]int) Dimension {
	var d Dimension
	for q, e := range exponents {
		if q >= 0 && q < numBaseQuantities {
			d[q] = e
		}
	}
	return d
}

// Add returns the componentwise sum of d and o.
func (d Dimension) Add(o Dimension) Dimension {
	for i := range d {
		d[i] += o[i]
	}
	return d
}

// Scale returns d with every exponent multiplied by n.
func (d Dimension) Scale(n int) Dimension {
	for i := range d {
		d[i] *= n
	}
	return d
}

// AddScaled returns d + n*o. It reports false, leaving d unchanged, when an
// input or a resulting exponent falls outside MaxExponent.
func (d Dimension) AddScaled(o Dimension, n int) (Dimension, bool) {
	if !ExponentInRange(n) {
		return d, false
	}
	sum := d
	for i := range sum {
		if !ExponentInRange(d[i]) || !ExponentInRange(o[i]) {
			return d, false
		}
		e := int64(d[i]) + int64(o[i])*int64(n)
		if !ExponentInRange(e) {
			return d, false
		}
		sum[i] = int(e)
	}
	return sum, true
}

// Exponent returns the exponent of a single base quantity.
func (d Dimension) Exponent(q BaseQuantity) int {
	if q < 0 || q >= numBaseQuantities {
		return 0
	}
	return d[q]
}

// IsDimensionless reports whether every exponent is zero.
func (d Dimension) IsDimensionless() bool {
	return d == Dimensionless
}

// Map returns the non-zero exponents keyed by quantity name.
func (d Dimension) Map() map[string]int {
	m := make(map[string]int)
	for i, e := range d {
		if e != 0 {
			m[baseNames[i]] = e
		}
	}
	return m
}

// String renders d in SI base symbols, e.g. "kg·m·s^-2".
// The dimensionless vector renders as "1".
func (d Dimension) String() string {
	parts := make([]string, 0, len(d))
	for i, e := range d {
		switch e {
		case 0:
			continue
		case 1:
			parts = append(parts, baseSymbols[i])
		default:
			parts = append(parts, baseSymbols[i]+"^"+strconv.Itoa(e))
		}
	}
	if len(parts) == 0 {
		return "1"
	}
	return strings.Join(parts, "·")
}
