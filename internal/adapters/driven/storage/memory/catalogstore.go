package memory

import (
	"sync"

	"github.com/custodia-labs/style-selector/internal/core/domain"
	"github.com/custodia-labs/style-selector/internal/core/ports/driven"
)

// Ensure CatalogStore implements the interface.
var _ driven.CatalogStore = (*CatalogStore)(nil)

// CatalogStore serves catalog entries held in memory.
type CatalogStore struct {
	mu      sync.RWMutex
	entries []domain.CatalogEntry
	err     error
}

// NewCatalogStore creates a store serving the given entries.
func NewCatalogStore(entries ...domain.CatalogEntry) *CatalogStore {
	return &CatalogStore{entries: entries}
}

// NewCatalogStoreFromStyles creates a store from well-formed styles.
func NewCatalogStoreFromStyles(styles ...domain.Style) *CatalogStore {
	entries := make([]domain.CatalogEntry, len(styles))
	for i, s := range styles {
		entries[i] = domain.CatalogEntry{
			Name:           s.Name,
			Prompt:         s.Prompt,
			NegativePrompt: s.NegativePrompt,
			HasName:        true,
			HasPrompt:      true,
		}
	}
	return NewCatalogStore(entries...)
}

// Load returns a catalog built from the current entries, or the configured error.
func (s *CatalogStore) Load() (*domain.Catalog, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.err != nil {
		return nil, s.err
	}
	return domain.NewCatalog(s.entries), nil
}

// Path returns a pseudo path for log messages.
func (s *CatalogStore) Path() string {
	return ":memory:"
}

// SetEntries replaces the served entries.
func (s *CatalogStore) SetEntries(entries ...domain.CatalogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
}

// SetError makes subsequent loads fail with err. Pass nil to clear.
func (s *CatalogStore) SetError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}
