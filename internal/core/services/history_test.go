package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/style-selector/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/style-selector/internal/core/domain"
)

func TestHistoryService_Record(t *testing.T) {
	ctx := context.Background()
	store := memory.NewHistoryStore()
	service := NewHistoryService(store)
	fixed := time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("CET", 3600))
	service.now = func() time.Time { return fixed }

	req := domain.ResolutionRequest{
		Positives: []string{"a cat"},
		Negatives: []string{""},
		Options:   domain.SelectionOptions{Enabled: true, SelectedStyle: "vivid"},
	}
	result := &domain.ResolutionResult{
		Positives: []string{"vivid, a cat"},
		Negatives: []string{"dull"},
		Styles:    []string{"vivid"},
		Metadata:  &domain.GenerationMetadata{Enabled: true, Style: "vivid"},
	}

	record, err := service.Record(ctx, req, result)

	require.NoError(t, err)
	_, err = uuid.Parse(record.ID)
	assert.NoError(t, err)
	assert.Equal(t, fixed.UTC(), record.CreatedAt)
	assert.Equal(t, []string{"a cat"}, record.OriginalPositives)
	assert.Equal(t, []string{"vivid, a cat"}, record.Positives)
	assert.Equal(t, "vivid", record.Options.SelectedStyle)

	stored, err := service.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, record.Styles, stored.Styles)

	records, err := service.List(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestHistoryService_Record_NilResult(t *testing.T) {
	service := NewHistoryService(memory.NewHistoryStore())

	_, err := service.Record(context.Background(), domain.ResolutionRequest{}, nil)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryService_NoStore(t *testing.T) {
	ctx := context.Background()
	service := NewHistoryService(nil)

	_, err := service.Record(ctx, domain.ResolutionRequest{}, &domain.ResolutionResult{})
	assert.ErrorIs(t, err, ErrHistoryUnavailable)

	_, err = service.Get(ctx, "id")
	assert.ErrorIs(t, err, ErrHistoryUnavailable)

	_, err = service.List(ctx, 1)
	assert.ErrorIs(t, err, ErrHistoryUnavailable)
}

func TestHistoryService_Get_EmptyID(t *testing.T) {
	service := NewHistoryService(memory.NewHistoryStore())

	_, err := service.Get(context.Background(), "")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestHistoryService_StoreErrorsPropagate(t *testing.T) {
	storeErr := errors.New("disk full")
	service := NewHistoryService(&failingHistoryStore{err: storeErr})

	_, err := service.Record(context.Background(), domain.ResolutionRequest{}, &domain.ResolutionResult{})

	assert.ErrorIs(t, err, storeErr)
}
