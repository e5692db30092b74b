package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil conversion service returns error", func(t *testing.T) {
		server, err := NewServer(&Ports{})
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingConversionService)
	})

	t.Run("nil ports returns error", func(t *testing.T) {
		server, err := NewServer(nil)
		assert.ErrorIs(t, err, ErrMissingConversionService)
		assert.Nil(t, server)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		server, err := NewServer(&Ports{Conversion: &mockConversionService{}})
		require.NoError(t, err)
		assert.NotNil(t, server)
		assert.Equal(t, DefaultVersion, server.Version())
	})

	t.Run("version option", func(t *testing.T) {
		server, err := NewServer(&Ports{Conversion: &mockConversionService{}}, WithVersion("1.2.3"))
		require.NoError(t, err)
		assert.Equal(t, "1.2.3", server.Version())
	})

	t.Run("empty version keeps default", func(t *testing.T) {
		server, err := NewServer(&Ports{Conversion: &mockConversionService{}}, WithVersion(""))
		require.NoError(t, err)
		assert.Equal(t, DefaultVersion, server.Version())
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("nil conversion service returns error", func(t *testing.T) {
		ports := &Ports{Units: &mockUnitService{}}
		assert.ErrorIs(t, ports.Validate(), ErrMissingConversionService)
	})

	t.Run("conversion only is valid", func(t *testing.T) {
		ports := &Ports{Conversion: &mockConversionService{}}
		assert.NoError(t, ports.Validate())
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{Conversion: &mockConversionService{}, Units: &mockUnitService{}}
		assert.NoError(t, ports.Validate())
	})
}

func TestServer_Handler(t *testing.T) {
	server, err := NewServer(&Ports{Conversion: &mockConversionService{}})
	require.NoError(t, err)

	assert.NotNil(t, server.Handler(nil))
	assert.NotNil(t, server.Handler(NewRateLimiter(1, 1)))
}
