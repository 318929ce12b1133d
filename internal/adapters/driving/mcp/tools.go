package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/style-selector/internal/core/domain"
	"github.com/custodia-labs/style-selector/internal/logger"
)

// ListStylesInput is the input schema for the list_styles tool.
type ListStylesInput struct{}

// ListStylesOutput is the output schema for the list_styles tool.
type ListStylesOutput struct {
	Styles []string `json:"styles"`
	Count  int      `json:"count"`
}

// GetStyleInput is the input schema for the get_style tool.
type GetStyleInput struct {
	Name string `json:"name" jsonschema:"the style name"`
}

// ApplyStylesInput is the input schema for the apply_styles tool.
type ApplyStylesInput struct {
	Prompts         []string `json:"prompts" jsonschema:"positive prompts, one per image"`
	NegativePrompts []string `json:"negative_prompts,omitempty" jsonschema:"negative prompts, same length as prompts (default empty)"`
	Style           string   `json:"style,omitempty" jsonschema:"style to apply (default base)"`
	Randomize       bool     `json:"randomize,omitempty" jsonschema:"pick one random style for the batch"`
	RandomizeEach   bool     `json:"randomize_each,omitempty" jsonschema:"pick a random style for every prompt"`
	AllStyles       bool     `json:"all_styles,omitempty" jsonschema:"apply every style in turn across the batch"`
	Record          bool     `json:"record,omitempty" jsonschema:"save the result to history"`
}

// ApplyStylesOutput is the output schema for the apply_styles tool.
type ApplyStylesOutput struct {
	Prompts         []string                   `json:"prompts"`
	NegativePrompts []string                   `json:"negative_prompts"`
	Styles          []string                   `json:"styles"`
	Metadata        map[string]any             `json:"metadata"`
	Failures        []domain.ResolutionFailure `json:"failures,omitempty"`
	RecordID        string                     `json:"record_id,omitempty"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_styles",
		Description: "List the names of all available prompt styles",
	}, s.handleListStyles)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_style",
		Description: "Show the prompt and negative prompt templates of a style",
	}, s.handleGetStyle)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "apply_styles",
		Description: "Apply styles to a batch of prompts",
	}, s.handleApplyStyles)
}

// handleListStyles handles the list_styles tool invocation.
func (s *Server) handleListStyles(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ ListStylesInput,
) (*mcp.CallToolResult, ListStylesOutput, error) {
	names := s.ports.Catalog.Names()
	if names == nil {
		names = []string{}
	}
	return nil, ListStylesOutput{Styles: names, Count: len(names)}, nil
}

// handleGetStyle handles the get_style tool invocation.
func (s *Server) handleGetStyle(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input GetStyleInput,
) (*mcp.CallToolResult, domain.Style, error) {
	if input.Name == "" {
		return nil, domain.Style{}, fmt.Errorf("name is required: %w", domain.ErrInvalidInput)
	}
	style, err := s.ports.Catalog.Lookup(input.Name)
	if err != nil {
		return nil, domain.Style{}, err
	}
	return nil, style, nil
}

// handleApplyStyles handles the apply_styles tool invocation.
func (s *Server) handleApplyStyles(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ApplyStylesInput,
) (*mcp.CallToolResult, ApplyStylesOutput, error) {
	if len(input.Prompts) == 0 {
		return nil, ApplyStylesOutput{}, fmt.Errorf("at least one prompt is required: %w", domain.ErrInvalidInput)
	}

	negatives := input.NegativePrompts
	if len(negatives) == 0 {
		negatives = make([]string, len(input.Prompts))
	}

	style := input.Style
	if style == "" {
		style = domain.DefaultStyleName
	}

	req := domain.ResolutionRequest{
		Positives: input.Prompts,
		Negatives: negatives,
		Options: domain.SelectionOptions{
			Enabled:          true,
			Randomize:        input.Randomize,
			RandomizePerItem: input.RandomizeEach,
			AllStylesInOrder: input.AllStyles,
			SelectedStyle:    style,
		},
	}

	result, err := s.ports.Resolver.ResolveBatch(req)
	if err != nil {
		return nil, ApplyStylesOutput{}, err
	}

	output := ApplyStylesOutput{
		Prompts:         result.Positives,
		NegativePrompts: result.Negatives,
		Styles:          result.Styles,
		Failures:        result.Failures,
	}
	if result.Metadata != nil {
		output.Metadata = result.Metadata.Params()
	}

	if input.Record && s.ports.History != nil {
		record, err := s.ports.History.Record(ctx, req, result)
		if err != nil {
			logger.Warn("recording generation: %v", err)
		} else {
			output.RecordID = record.ID
		}
	}

	return nil, output, nil
}
