package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/style-selector/internal/core/domain"
	"github.com/custodia-labs/style-selector/internal/core/ports/driven"
	"github.com/custodia-labs/style-selector/internal/core/ports/driving"
)

// Ensure HistoryService implements the interface.
var _ driving.HistoryService = (*HistoryService)(nil)

// ErrHistoryUnavailable indicates no history store is configured.
var ErrHistoryUnavailable = errors.New("generation history unavailable")

// HistoryService records resolved batches for later inspection.
type HistoryService struct {
	store driven.HistoryStore
	now   func() time.Time
}

// NewHistoryService creates a history service backed by store.
func NewHistoryService(store driven.HistoryStore) *HistoryService {
	return &HistoryService{
		store: store,
		now:   time.Now,
	}
}

// Record stores the outcome of a resolution.
func (s *HistoryService) Record(
	ctx context.Context,
	req domain.ResolutionRequest,
	result *domain.ResolutionResult,
) (*domain.GenerationRecord, error) {
	if s.store == nil {
		return nil, ErrHistoryUnavailable
	}
	if result == nil {
		return nil, domain.ErrInvalidInput
	}

	record := &domain.GenerationRecord{
		ID:                uuid.New().String(),
		CreatedAt:         s.now().UTC(),
		Options:           req.Options,
		OriginalPositives: req.Positives,
		OriginalNegatives: req.Negatives,
		Positives:         result.Positives,
		Negatives:         result.Negatives,
		Styles:            result.Styles,
		Metadata:          result.Metadata,
		Failures:          result.Failures,
	}

	if err := s.store.Save(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// Get retrieves a record by ID.
func (s *HistoryService) Get(ctx context.Context, id string) (*domain.GenerationRecord, error) {
	if s.store == nil {
		return nil, ErrHistoryUnavailable
	}
	if id == "" {
		return nil, domain.ErrInvalidInput
	}
	return s.store.Get(ctx, id)
}

// List returns the most recent records, newest first.
func (s *HistoryService) List(ctx context.Context, limit int) ([]domain.GenerationRecord, error) {
	if s.store == nil {
		return nil, ErrHistoryUnavailable
	}
	return s.store.List(ctx, limit)
}
