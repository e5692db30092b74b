package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/unitconv/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for unitconv resources.
	uriScheme = "unitconv://"
)

// unitInfo is the JSON shape of a unit resource.
type unitInfo struct {
	Symbol    string         `json:"symbol"`
	Name      string         `json:"name"`
	Dimension map[string]int `json:"dimension"`
	Base      string         `json:"base"`
	Scale     float64        `json:"scale"`
}

func newUnitInfo(def domain.UnitDef) unitInfo {
	return unitInfo{
		Symbol:    def.Symbol,
		Name:      def.Name,
		Dimension: def.Dimension.Map(),
		Base:      def.Dimension.String(),
		Scale:     def.Scale,
	}
}

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "units",
		Name:        "units",
		Description: "Every registered unit with its dimension and SI scale",
		MIMEType:    "application/json",
	}, s.handleUnitsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "units/{symbol}",
		Name:        "unit",
		Description: "A single unit, including SI-prefixed forms such as km",
		MIMEType:    "application/json",
	}, s.handleUnitResource)
}

// handleUnitsResource returns the registry listing.
func (s *Server) handleUnitsResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Units == nil {
		return jsonResource(req.Params.URI, "[]"), nil
	}

	units, err := s.ports.Units.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing units: %w", err)
	}

	infos := make([]unitInfo, len(units))
	for i, def := range units {
		infos[i] = newUnitInfo(def)
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling units: %w", err)
	}

	return jsonResource(req.Params.URI, string(data)), nil
}

// handleUnitResource returns a single unit.
func (s *Server) handleUnitResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Units == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	symbol := extractSymbol(req.Params.URI)
	if symbol == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	def, err := s.ports.Units.Describe(ctx, symbol)
	if errors.Is(err, domain.ErrUnknownUnit) || errors.Is(err, domain.ErrInvalidInput) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("describing unit: %w", err)
	}

	data, err := json.MarshalIndent(newUnitInfo(def), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling unit: %w", err)
	}

	return jsonResource(req.Params.URI, string(data)), nil
}

func jsonResource(uri, text string) *mcp.ReadResourceResult {
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     text,
		}},
	}
}

// extractSymbol extracts the symbol from a URI like unitconv://units/{symbol}.
func extractSymbol(uri string) string {
	const prefix = uriScheme + "units/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	return strings.TrimPrefix(uri, prefix)
}
