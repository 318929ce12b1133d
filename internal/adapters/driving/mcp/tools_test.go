package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/style-selector/internal/core/domain"
)

func newTestServer(t *testing.T, ports *Ports) *Server {
	t.Helper()
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server
}

func TestServer_handleListStyles(t *testing.T) {
	ctx := context.Background()

	t.Run("returns sorted names", func(t *testing.T) {
		server := newTestServer(t, &Ports{
			Catalog:  newMockCatalog(exampleStyles()...),
			Resolver: &mockResolverService{},
		})

		_, output, err := server.handleListStyles(ctx, nil, ListStylesInput{})

		require.NoError(t, err)
		assert.Equal(t, []string{"base", "vivid"}, output.Styles)
		assert.Equal(t, 2, output.Count)
	})

	t.Run("empty catalog returns empty list", func(t *testing.T) {
		server := newTestServer(t, &Ports{
			Catalog:  newMockCatalog(),
			Resolver: &mockResolverService{},
		})

		_, output, err := server.handleListStyles(ctx, nil, ListStylesInput{})

		require.NoError(t, err)
		assert.NotNil(t, output.Styles)
		assert.Equal(t, 0, output.Count)
	})
}

func TestServer_handleGetStyle(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, &Ports{
		Catalog:  newMockCatalog(exampleStyles()...),
		Resolver: &mockResolverService{},
	})

	t.Run("returns style", func(t *testing.T) {
		_, style, err := server.handleGetStyle(ctx, nil, GetStyleInput{Name: "vivid"})

		require.NoError(t, err)
		assert.Equal(t, "vivid, {prompt}", style.Prompt)
		assert.Equal(t, "dull", style.NegativePrompt)
	})

	t.Run("unknown style", func(t *testing.T) {
		_, _, err := server.handleGetStyle(ctx, nil, GetStyleInput{Name: "missing"})
		assert.ErrorIs(t, err, domain.ErrStyleNotFound)
	})

	t.Run("empty name", func(t *testing.T) {
		_, _, err := server.handleGetStyle(ctx, nil, GetStyleInput{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestServer_handleApplyStyles(t *testing.T) {
	ctx := context.Background()

	resolved := &domain.ResolutionResult{
		Positives: []string{"vivid, a cat"},
		Negatives: []string{"dull"},
		Styles:    []string{"vivid"},
		Metadata:  &domain.GenerationMetadata{Enabled: true, Style: "vivid"},
	}

	t.Run("builds request and returns result", func(t *testing.T) {
		resolver := &mockResolverService{result: resolved}
		server := newTestServer(t, &Ports{
			Catalog:  newMockCatalog(exampleStyles()...),
			Resolver: resolver,
		})

		_, output, err := server.handleApplyStyles(ctx, nil, ApplyStylesInput{
			Prompts:       []string{"a cat"},
			Style:         "vivid",
			RandomizeEach: true,
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"vivid, a cat"}, output.Prompts)
		assert.Equal(t, []string{"dull"}, output.NegativePrompts)
		assert.Equal(t, []string{"vivid"}, output.Styles)
		assert.Equal(t, "vivid", output.Metadata[domain.MetadataKeyStyle])
		assert.Empty(t, output.RecordID)

		req := resolver.lastRequest
		assert.Equal(t, []string{""}, req.Negatives)
		assert.True(t, req.Options.Enabled)
		assert.True(t, req.Options.RandomizePerItem)
		assert.False(t, req.Options.Randomize)
		assert.Equal(t, "vivid", req.Options.SelectedStyle)
	})

	t.Run("defaults to base style", func(t *testing.T) {
		resolver := &mockResolverService{result: resolved}
		server := newTestServer(t, &Ports{
			Catalog:  newMockCatalog(exampleStyles()...),
			Resolver: resolver,
		})

		_, _, err := server.handleApplyStyles(ctx, nil, ApplyStylesInput{Prompts: []string{"a cat"}})

		require.NoError(t, err)
		assert.Equal(t, domain.DefaultStyleName, resolver.lastRequest.Options.SelectedStyle)
	})

	t.Run("requires prompts", func(t *testing.T) {
		server := newTestServer(t, &Ports{
			Catalog:  newMockCatalog(),
			Resolver: &mockResolverService{},
		})

		_, _, err := server.handleApplyStyles(ctx, nil, ApplyStylesInput{})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("propagates resolver error", func(t *testing.T) {
		server := newTestServer(t, &Ports{
			Catalog:  newMockCatalog(),
			Resolver: &mockResolverService{err: domain.ErrInvalidInput},
		})

		_, _, err := server.handleApplyStyles(ctx, nil, ApplyStylesInput{
			Prompts:         []string{"a", "b"},
			NegativePrompts: []string{"x"},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("records when asked", func(t *testing.T) {
		history := &mockHistoryService{}
		server := newTestServer(t, &Ports{
			Catalog:  newMockCatalog(exampleStyles()...),
			Resolver: &mockResolverService{result: resolved},
			History:  history,
		})

		_, output, err := server.handleApplyStyles(ctx, nil, ApplyStylesInput{
			Prompts: []string{"a cat"},
			Record:  true,
		})

		require.NoError(t, err)
		assert.Equal(t, 1, history.recorded)
		assert.Equal(t, "rec-1", output.RecordID)
	})

	t.Run("history failure does not fail the call", func(t *testing.T) {
		server := newTestServer(t, &Ports{
			Catalog:  newMockCatalog(exampleStyles()...),
			Resolver: &mockResolverService{result: resolved},
			History:  &mockHistoryService{err: errors.New("disk full")},
		})

		_, output, err := server.handleApplyStyles(ctx, nil, ApplyStylesInput{
			Prompts: []string{"a cat"},
			Record:  true,
		})

		require.NoError(t, err)
		assert.Empty(t, output.RecordID)
	})
}
