package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/style-selector/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for style resources.
	uriScheme = "styleselector://"

	jsonMIME = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "styles",
		Name:        "styles",
		Description: "Names of all available styles",
		MIMEType:    jsonMIME,
	}, s.handleStylesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "styles/{name}",
		Name:        "style",
		Description: "Templates of a single style",
		MIMEType:    jsonMIME,
	}, s.handleStyleResource)
}

// handleStylesResource returns the sorted style names.
func (s *Server) handleStylesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	names := s.ports.Catalog.Names()
	if names == nil {
		names = []string{}
	}
	return jsonResult(req.Params.URI, names)
}

// handleStyleResource returns one style's templates.
func (s *Server) handleStyleResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractStyleName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	style, err := s.ports.Catalog.Lookup(name)
	if errors.Is(err, domain.ErrStyleNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("looking up style: %w", err)
	}

	return jsonResult(req.Params.URI, style)
}

func jsonResult(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: jsonMIME,
			Text:     string(data),
		}},
	}, nil
}

// extractStyleName extracts the style name from a URI like
// styleselector://styles/{name}. Names may be percent-encoded.
func extractStyleName(uri string) string {
	const prefix = uriScheme + "styles/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	name, err := url.PathUnescape(strings.TrimPrefix(uri, prefix))
	if err != nil {
		return ""
	}
	return name
}
