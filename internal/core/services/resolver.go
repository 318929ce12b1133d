package services

import (
	"fmt"

	"github.com/custodia-labs/style-selector/internal/core/domain"
	"github.com/custodia-labs/style-selector/internal/core/ports/driven"
	"github.com/custodia-labs/style-selector/internal/core/ports/driving"
	"github.com/custodia-labs/style-selector/internal/logger"
)

// Ensure ResolverService implements the interface.
var _ driving.ResolverService = (*ResolverService)(nil)

// ResolverService assigns styles to prompt slots and rewrites them.
type ResolverService struct {
	catalog driving.CatalogService
	chooser driven.Chooser
}

// NewResolverService creates a resolver over the given catalog.
// A nil chooser falls back to the process-wide random source.
func NewResolverService(catalog driving.CatalogService, chooser driven.Chooser) *ResolverService {
	if chooser == nil {
		chooser = GlobalChooser{}
	}
	return &ResolverService{
		catalog: catalog,
		chooser: chooser,
	}
}

// ResolvePositive substitutes positive into the named style's prompt template.
func (s *ResolverService) ResolvePositive(styleName, positive string) (string, error) {
	return resolvePositive(s.catalog.Catalog(), styleName, positive)
}

// ResolveNegative combines the named style's negative fragment with negative.
func (s *ResolverService) ResolveNegative(styleName, negative string) (string, error) {
	return resolveNegative(s.catalog.Catalog(), styleName, negative)
}

// ResolveBatch assigns a style to every slot and rewrites the batch.
//
// With a single prompt the selected style is used, replaced by one random
// draw when Randomize is set. With several prompts a per-index assignment is
// built (a fresh random draw per index when Randomize is set, otherwise the
// selected style), and AllStylesInOrder overrides index i with the i-th
// sorted style, wrapping around. The per-index assignment is only applied
// when RandomizePerItem or AllStylesInOrder is set; otherwise index 0's
// style is used for the whole batch.
func (s *ResolverService) ResolveBatch(req domain.ResolutionRequest) (*domain.ResolutionResult, error) {
	if len(req.Positives) != len(req.Negatives) {
		return nil, fmt.Errorf("%d prompts but %d negative prompts: %w",
			len(req.Positives), len(req.Negatives), domain.ErrInvalidInput)
	}

	result := &domain.ResolutionResult{
		Positives: append([]string(nil), req.Positives...),
		Negatives: append([]string(nil), req.Negatives...),
	}

	opts := req.Options
	if !opts.Enabled {
		return result, nil
	}

	catalog := s.catalog.Catalog()

	style := opts.SelectedStyle
	if opts.Randomize {
		style = s.randomName(catalog)
	}

	styles := s.assignStyles(catalog, req.BatchSize(), style, opts)
	result.Styles = styles

	logger.Section("Resolve")
	logger.Debug("batch of %d, styles %v", req.BatchSize(), styles)

	for i, name := range styles {
		positive, err := resolvePositive(catalog, name, req.Positives[i])
		if err != nil {
			logger.Error("an error occurred: %v", err)
			result.Failures = append(result.Failures, domain.ResolutionFailure{
				Index: i, Style: name, Reason: err.Error(),
			})
		} else {
			result.Positives[i] = positive
		}

		negative, err := resolveNegative(catalog, name, req.Negatives[i])
		if err != nil {
			logger.Error("an error occurred: %v", err)
			result.Failures = append(result.Failures, domain.ResolutionFailure{
				Index: i, Style: name, Negative: true, Reason: err.Error(),
			})
		} else {
			result.Negatives[i] = negative
		}
	}

	result.Metadata = &domain.GenerationMetadata{
		Enabled:   true,
		Randomize: opts.Randomize,
		Style:     style,
	}

	return result, nil
}

// assignStyles returns the style applied at each index.
func (s *ResolverService) assignStyles(
	catalog *domain.Catalog,
	size int,
	style string,
	opts domain.SelectionOptions,
) []string {
	switch {
	case size == 0:
		return []string{}
	case size == 1:
		return []string{style}
	}

	perIndex := make([]string, size)
	for i := range perIndex {
		if opts.Randomize {
			perIndex[i] = s.randomName(catalog)
		} else {
			perIndex[i] = style
		}
		if opts.AllStylesInOrder && catalog.Len() > 0 {
			perIndex[i] = catalog.NameAt(i)
		}
	}

	if opts.RandomizePerItem || opts.AllStylesInOrder {
		return perIndex
	}

	applied := make([]string, size)
	for i := range applied {
		applied[i] = perIndex[0]
	}
	return applied
}

// randomName draws a style name uniformly from the catalog.
// An empty catalog yields the empty name, which then fails lookup.
func (s *ResolverService) randomName(catalog *domain.Catalog) string {
	if catalog.Len() == 0 {
		logger.Warn("random style requested but the catalog is empty")
		return ""
	}
	return catalog.NameAt(s.chooser.IntN(catalog.Len()))
}

func resolvePositive(catalog *domain.Catalog, styleName, positive string) (string, error) {
	style, err := catalog.Lookup(styleName)
	if err != nil {
		return "", err
	}
	return style.ApplyPositive(positive), nil
}

func resolveNegative(catalog *domain.Catalog, styleName, negative string) (string, error) {
	style, err := catalog.Lookup(styleName)
	if err != nil {
		return "", err
	}
	return style.ApplyNegative(negative), nil
}
