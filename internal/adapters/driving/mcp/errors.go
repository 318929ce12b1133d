// Package mcp provides an MCP (Model Context Protocol) server adapter for the
// style selector. It lets assistants list styles and apply them to prompts.
package mcp

import "errors"

var (
	// ErrMissingCatalogService is returned when the catalog service is not provided.
	ErrMissingCatalogService = errors.New("mcp: catalog service is required")

	// ErrMissingResolverService is returned when the resolver service is not provided.
	ErrMissingResolverService = errors.New("mcp: resolver service is required")
)
