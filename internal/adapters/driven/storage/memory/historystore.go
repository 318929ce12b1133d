package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/custodia-labs/style-selector/internal/core/domain"
	"github.com/custodia-labs/style-selector/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	records map[string]domain.GenerationRecord
	order   []string
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{
		records: make(map[string]domain.GenerationRecord),
	}
}

// Save stores a record.
func (s *HistoryStore) Save(_ context.Context, record *domain.GenerationRecord) error {
	if record == nil || record.ID == "" {
		return domain.ErrInvalidInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[record.ID]; !ok {
		s.order = append(s.order, record.ID)
	}
	s.records[record.ID] = *record
	return nil
}

// Get retrieves a record by ID.
func (s *HistoryStore) Get(_ context.Context, id string) (*domain.GenerationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.records[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &record, nil
}

// List returns up to limit records, newest first.
func (s *HistoryStore) List(_ context.Context, limit int) ([]domain.GenerationRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.GenerationRecord, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		result = append(result, s.records[s.order[i]])
	}
	// Insertion order breaks ties between equal timestamps.
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
