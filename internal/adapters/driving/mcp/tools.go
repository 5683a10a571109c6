package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// CheckInput is the input schema for the check_compatibility tool.
type CheckInput struct {
	Left  string `json:"left" jsonschema:"first quantity expression, e.g. 'speed' or 'length / time'"`
	Right string `json:"right" jsonschema:"second quantity expression to compare against"`
}

// CheckOutput is the output schema for the check_compatibility tool.
type CheckOutput struct {
	Left             string `json:"left"`
	Right            string `json:"right"`
	Equal            bool   `json:"equal"`
	Interconvertible bool   `json:"interconvertible"`
	Reason           string `json:"reason,omitempty"`
}

// ResolveInput is the input schema for the resolve_common_reference tool.
type ResolveInput struct {
	References []string `json:"references" jsonschema:"two or more references as 'spec@unit' or bare unit expressions"`
}

// ResolveOutput is the output schema for the resolve_common_reference tool.
type ResolveOutput struct {
	Spec      string `json:"spec"`
	Unit      string `json:"unit"`
	Reference string `json:"reference"`
}

// UnitSpecInput is the input schema for the unit_spec tool.
type UnitSpecInput struct {
	Unit string `json:"unit" jsonschema:"unit expression, e.g. 'km / h'"`
}

// UnitSpecOutput is the output schema for the unit_spec tool.
type UnitSpecOutput struct {
	Unit      string  `json:"unit"`
	Spec      string  `json:"spec"`
	Dimension string  `json:"dimension"`
	Base      string  `json:"base"`
	Factor    float64 `json:"factor"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "check_compatibility",
		Description: "Check whether two quantity expressions are equal or interconvertible",
	}, s.handleCheck)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resolve_common_reference",
		Description: "Resolve the common quantity spec and unit for two or more references",
	}, s.handleResolve)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "unit_spec",
		Description: "Report the quantity spec a unit expression measures and its base-unit expansion",
	}, s.handleUnitSpec)
}

// handleCheck handles the check_compatibility tool invocation.
func (s *Server) handleCheck(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CheckInput,
) (*mcp.CallToolResult, CheckOutput, error) {
	verdict, err := s.ports.Resolver.Check(ctx, input.Left, input.Right)
	if err != nil {
		return nil, CheckOutput{}, err
	}
	return nil, CheckOutput{
		Left:             verdict.Left,
		Right:            verdict.Right,
		Equal:            verdict.Equal,
		Interconvertible: verdict.Interconvertible,
		Reason:           verdict.Reason,
	}, nil
}

// handleResolve handles the resolve_common_reference tool invocation.
func (s *Server) handleResolve(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ResolveInput,
) (*mcp.CallToolResult, ResolveOutput, error) {
	resolved, err := s.ports.Resolver.Common(ctx, input.References...)
	if err != nil {
		return nil, ResolveOutput{}, err
	}
	return nil, ResolveOutput{
		Spec:      resolved.Spec,
		Unit:      resolved.Unit,
		Reference: resolved.Reference,
	}, nil
}

// handleUnitSpec handles the unit_spec tool invocation.
func (s *Server) handleUnitSpec(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input UnitSpecInput,
) (*mcp.CallToolResult, UnitSpecOutput, error) {
	report, err := s.ports.Resolver.UnitSpec(ctx, input.Unit)
	if err != nil {
		return nil, UnitSpecOutput{}, err
	}
	return nil, UnitSpecOutput{
		Unit:      report.Unit,
		Spec:      report.Spec,
		Dimension: report.Dimension,
		Base:      report.Base,
		Factor:    report.Factor,
	}, nil
}
