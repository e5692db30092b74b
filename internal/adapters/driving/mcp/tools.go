package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/unitconv/internal/logger"
)

// ConvertInput is the input schema for the convert_units tool.
type ConvertInput struct {
	Value  float64 `json:"value" jsonschema:"the quantity to convert"`
	Source string  `json:"source" jsonschema:"unit expression of the value, e.g. lb/h"`
	Target string  `json:"target" jsonschema:"unit expression to convert into, e.g. kg/s"`
}

// ConvertOutput is the output schema for the convert_units tool.
type ConvertOutput struct {
	Value  float64 `json:"value"`
	Source string  `json:"source"`
	Target string  `json:"target"`
	Result float64 `json:"result"`
	Factor float64 `json:"factor"`
}

// FactorInput is the input schema for the conversion_factor tool.
type FactorInput struct {
	Source string `json:"source" jsonschema:"unit expression to convert from, e.g. m/s^2"`
	Target string `json:"target" jsonschema:"unit expression to convert into, e.g. in/ms^2"`
}

// FactorOutput is the output schema for the conversion_factor tool.
type FactorOutput struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Factor float64 `json:"factor"`
}

// CompatibleInput is the input schema for the units_compatible tool.
type CompatibleInput struct {
	A string `json:"a" jsonschema:"first unit expression"`
	B string `json:"b" jsonschema:"second unit expression"`
}

// CompatibleOutput is the output schema for the units_compatible tool.
type CompatibleOutput struct {
	Compatible bool `json:"compatible"`
}

// ReduceInput is the input schema for the reduce_unit tool.
type ReduceInput struct {
	Expression string `json:"expression" jsonschema:"unit expression to reduce, e.g. kW*h"`
}

// ReduceOutput is the output schema for the reduce_unit tool.
type ReduceOutput struct {
	Expression string         `json:"expression"`
	Terms      []TermOutput   `json:"terms"`
	Dimension  map[string]int `json:"dimension"`
	Base       string         `json:"base"`
	Scale      float64        `json:"scale"`
}

// TermOutput is one parsed term of an expression.
type TermOutput struct {
	Symbol   string `json:"symbol"`
	Exponent int    `json:"exponent"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "convert_units",
		Description: "Convert a value from one unit expression to another, e.g. 10 lb to kg",
	}, s.handleConvert)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "conversion_factor",
		Description: "Factor that converts a quantity in source units into target units",
	}, s.handleFactor)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "units_compatible",
		Description: "Whether two unit expressions have the same physical dimension",
	}, s.handleCompatible)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "reduce_unit",
		Description: "Reduce a unit expression to SI base dimensions and scale",
	}, s.handleReduce)
}

// handleConvert handles the convert_units tool invocation.
func (s *Server) handleConvert(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ConvertInput,
) (*mcp.CallToolResult, ConvertOutput, error) {
	logger.Debug("mcp convert_units %g %q -> %q", input.Value, input.Source, input.Target)

	factor, err := s.ports.Conversion.ConversionFactor(input.Source, input.Target)
	if err != nil {
		return nil, ConvertOutput{}, err
	}

	return nil, ConvertOutput{
		Value:  input.Value,
		Source: input.Source,
		Target: input.Target,
		Result: input.Value * factor,
		Factor: factor,
	}, nil
}

// handleFactor handles the conversion_factor tool invocation.
func (s *Server) handleFactor(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input FactorInput,
) (*mcp.CallToolResult, FactorOutput, error) {
	factor, err := s.ports.Conversion.ConversionFactor(input.Source, input.Target)
	if err != nil {
		return nil, FactorOutput{}, err
	}

	return nil, FactorOutput{Source: input.Source, Target: input.Target, Factor: factor}, nil
}

// handleCompatible handles the units_compatible tool invocation.
func (s *Server) handleCompatible(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input CompatibleInput,
) (*mcp.CallToolResult, CompatibleOutput, error) {
	ok, err := s.ports.Conversion.AreCompatible(input.A, input.B)
	if err != nil {
		return nil, CompatibleOutput{}, err
	}

	return nil, CompatibleOutput{Compatible: ok}, nil
}

// handleReduce handles the reduce_unit tool invocation.
func (s *Server) handleReduce(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input ReduceInput,
) (*mcp.CallToolResult, ReduceOutput, error) {
	unit, err := s.ports.Conversion.Parse(input.Expression)
	if err != nil {
		return nil, ReduceOutput{}, err
	}
	reduced, err := s.ports.Conversion.Reduce(input.Expression)
	if err != nil {
		return nil, ReduceOutput{}, err
	}

	output := ReduceOutput{
		Expression: input.Expression,
		Terms:      make([]TermOutput, len(unit)),
		Dimension:  reduced.Dimension.Map(),
		Base:       reduced.Dimension.String(),
		Scale:      reduced.Scale,
	}
	for i, term := range unit {
		output.Terms[i] = TermOutput{Symbol: term.Symbol, Exponent: term.Exponent}
	}

	return nil, output, nil
}
