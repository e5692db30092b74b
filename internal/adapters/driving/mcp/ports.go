package mcp

import (
	"github.com/custodia-labs/unitconv/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
type Ports struct {
	// Conversion computes factors and compatibility.
	Conversion driving.ConversionService

	// Units exposes the registry as resources. Optional.
	Units driving.UnitService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Conversion == nil {
		return ErrMissingConversionService
	}
	return nil
}
