package domain

// DefaultStyleName is the style preselected in the settings panel.
const DefaultStyleName = "base"

// Metadata keys written onto a generation request.
const (
	MetadataKeyEnabled   = "Style Selector Enabled"
	MetadataKeyRandomize = "Style Selector Randomize"
	MetadataKeyStyle     = "Style Selector Style"
)

// SelectionOptions are the user's choices for one generation request.
type SelectionOptions struct {
	// Enabled turns style substitution on. When false the batch is untouched.
	Enabled bool `json:"enabled"`

	// Randomize replaces the selected style with a random one.
	Randomize bool `json:"randomize"`

	// RandomizePerItem applies the per-index style assignment to every prompt.
	RandomizePerItem bool `json:"randomize_per_item"`

	// AllStylesInOrder cycles through every catalog style in sorted order.
	AllStylesInOrder bool `json:"all_styles_in_order"`

	// SelectedStyle is the style name chosen by the user.
	SelectedStyle string `json:"selected_style"`
}

// ResolutionRequest is one batch of prompts to rewrite.
// Positives and Negatives are index-aligned.
type ResolutionRequest struct {
	Positives []string
	Negatives []string
	Options   SelectionOptions
}

// BatchSize returns the number of prompt slots in the request.
func (r ResolutionRequest) BatchSize() int {
	return len(r.Positives)
}

// GenerationMetadata is the audit information recorded for a request.
type GenerationMetadata struct {
	Enabled   bool   `json:"enabled"`
	Randomize bool   `json:"randomize"`
	Style     string `json:"style"`
}

// Params returns the metadata as host generation parameters.
func (m GenerationMetadata) Params() map[string]any {
	return map[string]any{
		MetadataKeyEnabled:   m.Enabled,
		MetadataKeyRandomize: m.Randomize,
		MetadataKeyStyle:     m.Style,
	}
}

// ResolutionFailure describes a prompt slot left unsubstituted.
type ResolutionFailure struct {
	Index    int    `json:"index"`
	Style    string `json:"style"`
	Negative bool   `json:"negative"`
	Reason   string `json:"reason"`
}

// ResolutionResult is the rewritten batch.
type ResolutionResult struct {
	Positives []string `json:"positives"`
	Negatives []string `json:"negatives"`

	// Styles holds the style applied at each index. Empty when disabled.
	Styles []string `json:"styles,omitempty"`

	// Metadata is nil when substitution was disabled.
	Metadata *GenerationMetadata `json:"metadata,omitempty"`

	Failures []ResolutionFailure `json:"failures,omitempty"`
}

// Applied returns true if styles were applied to the batch.
func (r *ResolutionResult) Applied() bool {
	return r.Metadata != nil
}

// GenerationRequest is the host's view of one generation call.
// The plugin rewrites the prompt slices in place and adds metadata to
// ExtraGenerationParams.
type GenerationRequest struct {
	AllPrompts            []string
	AllNegativePrompts    []string
	ExtraGenerationParams map[string]any
}
