package cli

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/style-selector/internal/core/domain"
)

func TestHistory_Empty(t *testing.T) {
	output, err := runCLI(t, newTestServices(t, nil), "", "history", "list")

	require.NoError(t, err)
	assert.Contains(t, output, "No history yet.")
}

func TestHistory_ListAfterApply(t *testing.T) {
	svc := newTestServices(t, nil)
	applied := runApplyJSON(t, svc, "", "a cat", "--style", "vivid", "--batch", "2")

	output, err := runCLI(t, svc, "", "history")

	require.NoError(t, err)
	assert.Contains(t, output, applied.RecordID)
	assert.Contains(t, output, "2 prompts, vivid")
}

func TestHistory_ListJSON(t *testing.T) {
	svc := newTestServices(t, nil)
	runApplyJSON(t, svc, "", "a cat")
	runApplyJSON(t, svc, "", "a dog")

	output, err := runCLI(t, svc, "", "history", "list", "--json", "--limit", "1")
	require.NoError(t, err)

	var records []domain.GenerationRecord
	require.NoError(t, json.Unmarshal([]byte(output), &records))
	require.Len(t, records, 1)
	assert.Equal(t, []string{"a dog"}, records[0].OriginalPositives)
}

func TestHistory_Show(t *testing.T) {
	svc := newTestServices(t, nil)
	applied := runApplyJSON(t, svc, "", "a cat", "--style", "noir", "--randomize")

	output, err := runCLI(t, svc, "", "history", "show", applied.RecordID)

	require.NoError(t, err)
	assert.Contains(t, output, "Record "+applied.RecordID)
	assert.Contains(t, output, "randomize")
	assert.Contains(t, output, "Prompt:")
}

func TestHistory_ShowJSON(t *testing.T) {
	svc := newTestServices(t, nil)
	applied := runApplyJSON(t, svc, "", "a cat", "--style", "vivid")

	output, err := runCLI(t, svc, "", "history", "show", applied.RecordID, "--json")
	require.NoError(t, err)

	var record domain.GenerationRecord
	require.NoError(t, json.Unmarshal([]byte(output), &record))
	assert.Equal(t, applied.RecordID, record.ID)
	assert.Equal(t, []string{"vivid, a cat"}, record.Positives)
	require.NotNil(t, record.Metadata)
	assert.Equal(t, "vivid", record.Metadata.Style)
}

func TestHistory_ShowUnknown(t *testing.T) {
	_, err := runCLI(t, newTestServices(t, nil), "", "history", "show", "missing")

	assert.EqualError(t, err, "no record with ID missing")
}

func TestHistory_RequiresService(t *testing.T) {
	svc := newTestServices(t, nil)
	svc.History = nil

	_, err := runCLI(t, svc, "", "history", "list")

	assert.EqualError(t, err, "history service not configured")
}

func TestSummarizeRecord(t *testing.T) {
	meta := &domain.GenerationMetadata{Enabled: true}
	tests := []struct {
		name     string
		record   domain.GenerationRecord
		expected string
	}{
		{
			name:     "disabled",
			record:   domain.GenerationRecord{Positives: []string{"a"}},
			expected: "1 prompt, disabled",
		},
		{
			name: "single style",
			record: domain.GenerationRecord{
				Positives: []string{"a", "a"}, Styles: []string{"noir", "noir"}, Metadata: meta,
			},
			expected: "2 prompts, noir",
		},
		{
			name: "several styles with failures",
			record: domain.GenerationRecord{
				Positives: []string{"a", "a", "a"},
				Styles:    []string{"base", "noir", "base"},
				Metadata:  meta,
				Failures:  []domain.ResolutionFailure{{Index: 1}},
			},
			expected: "3 prompts, 2 styles, 1 failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, summarizeRecord(&tt.record))
		})
	}
}

func TestDescribeOptions(t *testing.T) {
	assert.Equal(t, "disabled", describeOptions(domain.SelectionOptions{}))
	assert.Equal(t, "style=base", describeOptions(domain.SelectionOptions{Enabled: true, SelectedStyle: "base"}))
	assert.Equal(t, "style=noir, randomize, randomize-each, all-styles", describeOptions(domain.SelectionOptions{
		Enabled:          true,
		SelectedStyle:    "noir",
		Randomize:        true,
		RandomizePerItem: true,
		AllStylesInOrder: true,
	}))
}

func TestHistory_ListOrder(t *testing.T) {
	svc := newTestServices(t, nil)
	first := runApplyJSON(t, svc, "", "first")
	time.Sleep(2 * time.Millisecond)
	second := runApplyJSON(t, svc, "", "second")

	records, err := svc.History.List(context.Background(), 0)

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, second.RecordID, records[0].ID)
	assert.Equal(t, first.RecordID, records[1].ID)
}
