package mcp

import (
	"context"
	"sort"

	"github.com/custodia-labs/style-selector/internal/core/domain"
)

// mockCatalogService is a mock implementation of driving.CatalogService.
type mockCatalogService struct {
	styles map[string]domain.Style
	err    error
}

func newMockCatalog(styles ...domain.Style) *mockCatalogService {
	m := &mockCatalogService{styles: make(map[string]domain.Style)}
	for _, s := range styles {
		m.styles[s.Name] = s
	}
	return m
}

func (m *mockCatalogService) Names() []string {
	var names []string
	for name := range m.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (m *mockCatalogService) Lookup(name string) (domain.Style, error) {
	if m.err != nil {
		return domain.Style{}, m.err
	}
	style, ok := m.styles[name]
	if !ok {
		return domain.Style{}, domain.ErrStyleNotFound
	}
	return style, nil
}

func (m *mockCatalogService) Catalog() *domain.Catalog {
	return domain.EmptyCatalog()
}

func (m *mockCatalogService) Reload() error {
	return m.err
}

// mockResolverService is a mock implementation of driving.ResolverService.
type mockResolverService struct {
	lastRequest domain.ResolutionRequest
	result      *domain.ResolutionResult
	err         error
}

func (m *mockResolverService) ResolvePositive(_, positive string) (string, error) {
	return positive, m.err
}

func (m *mockResolverService) ResolveNegative(_, negative string) (string, error) {
	return negative, m.err
}

func (m *mockResolverService) ResolveBatch(req domain.ResolutionRequest) (*domain.ResolutionResult, error) {
	m.lastRequest = req
	return m.result, m.err
}

// mockHistoryService is a mock implementation of driving.HistoryService.
type mockHistoryService struct {
	recorded int
	err      error
}

func (m *mockHistoryService) Record(
	_ context.Context,
	_ domain.ResolutionRequest,
	_ *domain.ResolutionResult,
) (*domain.GenerationRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.recorded++
	return &domain.GenerationRecord{ID: "rec-1"}, nil
}

func (m *mockHistoryService) Get(_ context.Context, _ string) (*domain.GenerationRecord, error) {
	return nil, domain.ErrNotFound
}

func (m *mockHistoryService) List(_ context.Context, _ int) ([]domain.GenerationRecord, error) {
	return nil, m.err
}

func exampleStyles() []domain.Style {
	return []domain.Style{
		{Name: "base", Prompt: "{prompt}"},
		{Name: "vivid", Prompt: "vivid, {prompt}", NegativePrompt: "dull"},
	}
}
