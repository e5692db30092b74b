package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/unitconv/internal/adapters/driven/registry"
	"github.com/custodia-labs/unitconv/internal/core/domain"
)

func TestConversionService_ConversionFactor(t *testing.T) {
	registries := map[string]func() *ConversionService{
		"sample":  func() *ConversionService { return NewConversionService(sampleRegistry()) },
		"builtin": func() *ConversionService { return NewConversionService(registry.NewBuiltin()) },
	}

	for name, newService := range registries {
		t.Run(name, func(t *testing.T) {
			service := newService()

			factor, err := service.ConversionFactor("lb", "kg")
			require.NoError(t, err)
			assert.Equal(t, 0.45359237, factor)

			factor, err = service.ConversionFactor("m/s^2", "in/ms^2")
			require.NoError(t, err)
			assert.InEpsilon(t, 3.937007874015748e-05, factor, 1e-12)

			factor, err = service.ConversionFactor("kg/h", "lb/s")
			require.NoError(t, err)
			assert.InEpsilon(t, 1/(0.45359237*3600), factor, 1e-12)
		})
	}
}

func TestConversionService_ConversionFactor_Builtin(t *testing.T) {
	service := NewConversionService(registry.NewBuiltin())

	tests := []struct {
		source   string
		target   string
		expected float64
	}{
		{"km", "m", 1000},
		{"mi", "km", 1.609344},
		{"ft", "in", 12},
		{"gal", "L", 3.785411784},
		{"N", "kg*m/s^2", 1},
		{"kW*h", "J", 3.6e6},
		{"mg", "g", 1e-3},
		{"mum", "nm", 1000},
		{"h", "min", 60},
		{"acre", "m^2", 4046.85642},
		{"Hz", "s^-1", 1},
		{"km/h", "m/s", 1 / 3.6},
	}

	for _, tt := range tests {
		t.Run(tt.source+" to "+tt.target, func(t *testing.T) {
			factor, err := service.ConversionFactor(tt.source, tt.target)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.expected, factor, 1e-9)
		})
	}
}

func TestConversionService_ConversionFactor_Errors(t *testing.T) {
	service := NewConversionService(sampleRegistry())

	tests := []struct {
		name   string
		source string
		target string
		want   error
	}{
		{"unknown target", "kg", "parsec", domain.ErrUnknownUnit},
		{"unknown source", "parsec", "kg", domain.ErrUnknownUnit},
		{"different dimensions", "m", "s", domain.ErrIncompatibleUnits},
		{"per second vs per second squared", "m/s", "m/s^2", domain.ErrIncompatibleUnits},
		{"dangling operator", "m/", "m", domain.ErrMalformedExpression},
		{"empty target", "m", "", domain.ErrMalformedExpression},
		{"int64-sized exponents", "m^9223372036854775807*m", "m^-9223372036854775807/m", domain.ErrMalformedExpression},
		{"nested exponent product", "(m^4294967296)^4294967296*m", "m", domain.ErrMalformedExpression},
		{"source scale overflows", "h^400", "s^400", domain.ErrScaleOutOfRange},
		{"same overflowing unit", "h^400", "h^400", domain.ErrScaleOutOfRange},
		{"target scale underflows", "s^400", "ms^400", domain.ErrScaleOutOfRange},
		{"factor overflows", "h^86", "ms^86", domain.ErrScaleOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factor, err := service.ConversionFactor(tt.source, tt.target)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.Zero(t, factor)
		})
	}
}

func TestConversionService_ConversionFactor_IncompatibleMessage(t *testing.T) {
	service := NewConversionService(sampleRegistry())

	_, err := service.ConversionFactor("m", "s")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `"m" has dimension m`)
	assert.Contains(t, err.Error(), `"s" has dimension s`)
}

func TestConversionService_ConversionFactor_Identity(t *testing.T) {
	reg := registry.NewBuiltin()
	service := NewConversionService(reg)

	for _, def := range reg.Units() {
		factor, err := service.ConversionFactor(def.Symbol, def.Symbol)
		require.NoError(t, err, def.Symbol)
		assert.Equal(t, 1.0, factor, def.Symbol)
	}
}

func TestConversionService_ConversionFactor_RoundTrip(t *testing.T) {
	service := NewConversionService(registry.NewBuiltin())

	pairs := [][2]string{
		{"lb", "kg"},
		{"m/s^2", "in/ms^2"},
		{"lb/s", "kg/h"},
		{"gal", "floz"},
		{"kW*h", "MJ"},
		{"mi/h", "km/s"},
		{"acre", "ft^2"},
		{"lightyear", "mm"},
	}

	for _, pair := range pairs {
		forward, err := service.ConversionFactor(pair[0], pair[1])
		require.NoError(t, err)
		backward, err := service.ConversionFactor(pair[1], pair[0])
		require.NoError(t, err)

		assert.InEpsilon(t, 1.0, forward*backward, 1e-12, "%s <-> %s", pair[0], pair[1])
	}
}

func TestConversionService_AreCompatible(t *testing.T) {
	service := NewConversionService(sampleRegistry())

	tests := []struct {
		a, b     string
		expected bool
	}{
		{"lb/s", "kg/h", true},
		{"m/s", "m/s^2", false},
		{"m", "s", false},
		{"in*in", "m^2", true},
		{"kg", "kg", true},
		{"m/in", "s/ms", true},
	}

	for _, tt := range tests {
		t.Run(tt.a+" ~ "+tt.b, func(t *testing.T) {
			got, err := service.AreCompatible(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)

			reversed, err := service.AreCompatible(tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, got, reversed)
		})
	}
}

func TestConversionService_AreCompatible_Errors(t *testing.T) {
	service := NewConversionService(sampleRegistry())

	_, err := service.AreCompatible("m/", "s")
	assert.True(t, errors.Is(err, domain.ErrMalformedExpression))

	_, err = service.AreCompatible("kg", "parsec")
	assert.True(t, errors.Is(err, domain.ErrUnknownUnit))

	ok, err := service.AreCompatible("m", "s")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = service.AreCompatible("(m^4294967296)^4294967296", "kg")
	assert.True(t, errors.Is(err, domain.ErrMalformedExpression))
}

func TestConversionService_AreCompatible_IgnoresScaleOverflow(t *testing.T) {
	service := NewConversionService(sampleRegistry())

	ok, err := service.AreCompatible("h^400", "s^400")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestConversionService_AreCompatible_MatchesConversionFactor(t *testing.T) {
	service := NewConversionService(registry.NewBuiltin())

	pairs := [][2]string{{"N", "kg*m/s^2"}, {"J", "W"}, {"Pa", "N/m^2"}, {"V", "W/A"}, {"Hz", "rad"}}

	for _, pair := range pairs {
		compatible, err := service.AreCompatible(pair[0], pair[1])
		require.NoError(t, err)

		_, err = service.ConversionFactor(pair[0], pair[1])
		if compatible {
			assert.NoError(t, err, "%s -> %s", pair[0], pair[1])
		} else {
			assert.True(t, errors.Is(err, domain.ErrIncompatibleUnits), "%s -> %s", pair[0], pair[1])
		}
	}
}

func TestConversionService_Cache(t *testing.T) {
	service := NewConversionService(sampleRegistry())
	cache := newCountingCache()
	service.SetFactorCache(cache)

	first, err := service.ConversionFactor("lb", "kg")
	require.NoError(t, err)
	second, err := service.ConversionFactor("lb", "kg")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, cache.puts)
	assert.Equal(t, 1, cache.hits)
	assert.Equal(t, 1, cache.Len())
}

func TestConversionService_Cache_FailuresNotStored(t *testing.T) {
	service := NewConversionService(sampleRegistry())
	cache := newCountingCache()
	service.SetFactorCache(cache)

	_, err := service.ConversionFactor("m", "s")
	require.Error(t, err)
	_, err = service.ConversionFactor("kg", "parsec")
	require.Error(t, err)
	_, err = service.ConversionFactor("h^400", "h^400")
	require.Error(t, err)

	assert.Zero(t, cache.puts)
	assert.Zero(t, cache.Len())
}

func TestConversionService_Cache_Disabled(t *testing.T) {
	service := NewConversionService(sampleRegistry())
	cache := newCountingCache()
	service.SetFactorCache(cache)
	service.SetFactorCache(nil)

	_, err := service.ConversionFactor("lb", "kg")
	require.NoError(t, err)

	assert.Zero(t, cache.puts)
}

func TestConversionService_Convert(t *testing.T) {
	service := NewConversionService(sampleRegistry())

	got, err := service.Convert(10, "lb", "kg")
	require.NoError(t, err)
	assert.InEpsilon(t, 4.5359237, got, 1e-12)

	got, err = service.Convert(0, "h", "s")
	require.NoError(t, err)
	assert.Zero(t, got)

	_, err = service.Convert(1, "m", "s")
	assert.True(t, errors.Is(err, domain.ErrIncompatibleUnits))
}

func TestConversionService_Reduce(t *testing.T) {
	service := NewConversionService(registry.NewBuiltin())

	reduced, err := service.Reduce("kN")

	require.NoError(t, err)
	assert.Equal(t, "kg·m·s^-2", reduced.Dimension.String())
	assert.Equal(t, 1000.0, reduced.Scale)
}

func TestConversionService_Reduce_ScaleOutOfRange(t *testing.T) {
	service := NewConversionService(registry.NewBuiltin())

	for _, expr := range []string{"km^400", "fm^400"} {
		_, err := service.Reduce(expr)
		assert.True(t, errors.Is(err, domain.ErrScaleOutOfRange), expr)
	}
}

func TestConversionService_Parse(t *testing.T) {
	service := NewConversionService(sampleRegistry())

	unit, err := service.Parse("parsec/s")

	require.NoError(t, err)
	assert.Equal(t, "parsec*s^-1", unit.String())
}
