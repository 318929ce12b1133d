package domain

import "time"

// GenerationRecord is the stored audit trail of one resolved batch.
type GenerationRecord struct {
	ID        string           `json:"id"`
	CreatedAt time.Time        `json:"created_at"`
	Options   SelectionOptions `json:"options"`

	// OriginalPositives and OriginalNegatives are the prompts before resolution.
	OriginalPositives []string `json:"original_positives"`
	OriginalNegatives []string `json:"original_negatives"`

	// Positives and Negatives are the resolved prompts.
	Positives []string `json:"positives"`
	Negatives []string `json:"negatives"`

	Styles   []string            `json:"styles"`
	Metadata *GenerationMetadata `json:"metadata,omitempty"`
	Failures []ResolutionFailure `json:"failures,omitempty"`
}

// BatchSize returns the number of prompt slots in the record.
func (r GenerationRecord) BatchSize() int {
	return len(r.Positives)
}
