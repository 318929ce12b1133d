package driven

import (
	"context"

	"github.com/custodia-labs/style-selector/internal/core/domain"
)

// HistoryStore persists generation records.
type HistoryStore interface {
	// Save stores a record. Records are never updated.
	Save(ctx context.Context, record *domain.GenerationRecord) error

	// Get retrieves a record by ID.
	// Returns domain.ErrNotFound if no record has that ID.
	Get(ctx context.Context, id string) (*domain.GenerationRecord, error)

	// List returns up to limit records, newest first. limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]domain.GenerationRecord, error)
}
