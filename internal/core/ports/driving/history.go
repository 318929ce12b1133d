package driving

import (
	"context"

	"github.com/custodia-labs/style-selector/internal/core/domain"
)

// HistoryService records and retrieves resolved batches.
type HistoryService interface {
	// Record stores the outcome of a resolution and returns the new record.
	Record(
		ctx context.Context,
		req domain.ResolutionRequest,
		result *domain.ResolutionResult,
	) (*domain.GenerationRecord, error)

	// Get retrieves a record by ID.
	Get(ctx context.Context, id string) (*domain.GenerationRecord, error)

	// List returns the most recent records, newest first.
	List(ctx context.Context, limit int) ([]domain.GenerationRecord, error)
}
