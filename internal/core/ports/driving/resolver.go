package driving

import "github.com/custodia-labs/style-selector/internal/core/domain"

// ResolverService rewrites prompts with style templates.
type ResolverService interface {
	// ResolvePositive substitutes positive into the named style's prompt template.
	ResolvePositive(styleName, positive string) (string, error)

	// ResolveNegative combines the named style's negative fragment with negative.
	ResolveNegative(styleName, negative string) (string, error)

	// ResolveBatch assigns a style to every slot and rewrites the batch.
	// Lookup failures leave the affected prompt unchanged and are reported
	// in the result; only malformed requests return an error.
	ResolveBatch(req domain.ResolutionRequest) (*domain.ResolutionResult, error)
}
