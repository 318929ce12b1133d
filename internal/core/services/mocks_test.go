package services

import (
	"context"

	"github.com/custodia-labs/style-selector/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/style-selector/internal/core/domain"
)

// sequenceChooser returns preset draws in order, recording each n requested.
type sequenceChooser struct {
	draws []int
	calls []int
}

func (c *sequenceChooser) IntN(n int) int {
	c.calls = append(c.calls, n)
	if len(c.draws) == 0 {
		return 0
	}
	v := c.draws[0]
	c.draws = c.draws[1:]
	return v % n
}

// failingHistoryStore fails every call with err.
type failingHistoryStore struct {
	err error
}

func (s *failingHistoryStore) Save(_ context.Context, _ *domain.GenerationRecord) error {
	return s.err
}

func (s *failingHistoryStore) Get(_ context.Context, _ string) (*domain.GenerationRecord, error) {
	return nil, s.err
}

func (s *failingHistoryStore) List(_ context.Context, _ int) ([]domain.GenerationRecord, error) {
	return nil, s.err
}

// exampleStyles is the two-style catalog used across tests.
func exampleStyles() []domain.Style {
	return []domain.Style{
		{Name: "base", Prompt: "{prompt}", NegativePrompt: ""},
		{Name: "vivid", Prompt: "vivid, {prompt}", NegativePrompt: "dull"},
	}
}

// loadedCatalog returns a catalog service loaded with styles.
func loadedCatalog(styles ...domain.Style) *CatalogService {
	svc := NewCatalogService(memory.NewCatalogStoreFromStyles(styles...))
	if err := svc.Load(); err != nil {
		panic(err)
	}
	return svc
}
