package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/unitconv/internal/adapters/driving/mcp"
)

func TestMCPServeCmd_Flags(t *testing.T) {
	port := mcpServeCmd.Flags().Lookup("port")
	require.NotNil(t, port)
	assert.Equal(t, "p", port.Shorthand)
	assert.Equal(t, "0", port.DefValue)

	rate := mcpServeCmd.Flags().Lookup("rate")
	require.NotNil(t, rate)
	assert.Equal(t, "20", rate.DefValue)

	burst := mcpServeCmd.Flags().Lookup("burst")
	require.NotNil(t, burst)
	assert.Equal(t, "40", burst.DefValue)
}

func TestMCPServeCmd_RequiresConversionService(t *testing.T) {
	SetServices(nil)
	defer resetFlags()

	_, err := execute("mcp", "serve")

	require.Error(t, err)
	assert.ErrorIs(t, err, mcp.ErrMissingConversionService)
}
