package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/custodia-labs/style-selector/internal/core/domain"
	"github.com/custodia-labs/style-selector/internal/core/ports/driving"
	"github.com/custodia-labs/style-selector/internal/logger"
)

// Ensure StyleSelector implements the host script interface.
var _ driving.Script = (*StyleSelector)(nil)

// Element IDs of the host prompt textboxes.
const (
	elemTxt2ImgPrompt = "txt2img_prompt"
	elemImg2ImgPrompt = "img2img_prompt"
)

// ScriptTitle is the name the host shows for the plugin.
const ScriptTitle = "Extended Style Selector"

// ErrNoResolver is returned when the selector is built without a resolver.
var ErrNoResolver = errors.New("style selector: resolver is required")

// StyleSelector adapts the catalog, resolver and settings services to the
// host's script interface.
type StyleSelector struct {
	catalog  driving.CatalogService
	resolver driving.ResolverService
	settings driving.SettingsService

	mu           sync.Mutex
	txt2imgInput any
	img2imgInput any
}

// NewStyleSelector wires the services behind the host script interface.
func NewStyleSelector(
	catalog driving.CatalogService,
	resolver driving.ResolverService,
	settings driving.SettingsService,
) (*StyleSelector, error) {
	if resolver == nil {
		return nil, ErrNoResolver
	}
	return &StyleSelector{
		catalog:  catalog,
		resolver: resolver,
		settings: settings,
	}, nil
}

// Title is the name shown by the host.
func (s *StyleSelector) Title() string {
	return ScriptTitle
}

// Show keeps the panel visible on both tabs.
func (s *StyleSelector) Show(_ bool) domain.Visibility {
	return domain.VisibilityAlwaysVisible
}

// UI describes the settings accordion.
func (s *StyleSelector) UI(_ bool) (*domain.Panel, error) {
	settings := domain.DefaultPluginSettings()
	if s.settings != nil {
		stored, err := s.settings.Get()
		if err != nil {
			return nil, fmt.Errorf("read plugin settings: %w", err)
		}
		settings = *stored
	}

	var names []string
	if s.catalog != nil {
		names = s.catalog.Names()
	}

	styleControl := domain.Control{
		ID:      domain.ControlIDStyle,
		Kind:    domain.ControlRadio,
		Label:   "Style",
		Choices: names,
		Value:   domain.DefaultStyleName,
	}
	if settings.StylesUI == domain.StylesUISelectList {
		styleControl.Kind = domain.ControlDropdown
		styleControl.Label = "Select Style"
	}

	panel := &domain.Panel{
		Title: ScriptTitle,
		Open:  false,
		Rows: []domain.Row{
			{Controls: []domain.Control{
				{
					ID:       domain.ControlIDEnabled,
					Kind:     domain.ControlCheckbox,
					Label:    "Enable Style Selector",
					Info:     "enable or disable style selector",
					Value:    settings.EnabledByDefault,
					MinWidth: 160,
				},
				{
					ID:    domain.ControlIDRandomize,
					Kind:  domain.ControlCheckbox,
					Label: "Randomize Style",
					Info:  "this overrides the selected style",
					Value: false,
				},
				{
					ID:    domain.ControlIDRandomizeEach,
					Kind:  domain.ControlCheckbox,
					Label: "Randomize For Each Iteration",
					Info:  "every prompt in batch will have a random style",
					Value: false,
				},
			}},
			{Controls: []domain.Control{
				{
					ID:    domain.ControlIDAllStyles,
					Kind:  domain.ControlCheckbox,
					Label: "Generate All Styles In Order",
					Info: fmt.Sprintf("to generate your prompt in all available styles, "+
						"set batch count to %d (style count)", len(names)),
					Value:    false,
					MinWidth: 160,
				},
			}},
			{Controls: []domain.Control{styleControl}},
		},
	}

	return panel, nil
}

// Process rewrites the request's prompts in place and records metadata.
// A disabled selector leaves the request untouched. The returned result
// carries the per-slot styles and failures.
func (s *StyleSelector) Process(req *domain.GenerationRequest, opts domain.SelectionOptions) (*domain.ResolutionResult, error) {
	if req == nil {
		return nil, domain.ErrInvalidInput
	}

	result, err := s.resolver.ResolveBatch(domain.ResolutionRequest{
		Positives: req.AllPrompts,
		Negatives: req.AllNegativePrompts,
		Options:   opts,
	})
	if err != nil {
		return nil, fmt.Errorf("resolve styles: %w", err)
	}
	if !result.Applied() {
		return result, nil
	}

	copy(req.AllPrompts, result.Positives)
	copy(req.AllNegativePrompts, result.Negatives)

	if result.Metadata != nil {
		if req.ExtraGenerationParams == nil {
			req.ExtraGenerationParams = make(map[string]any)
		}
		for k, v := range result.Metadata.Params() {
			req.ExtraGenerationParams[k] = v
		}
	}

	if len(result.Failures) > 0 {
		logger.Warn("%d prompt slots left unstyled", len(result.Failures))
	}
	return result, nil
}

// AfterComponent remembers the host prompt textboxes.
func (s *StyleSelector) AfterComponent(component any, elemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch elemID {
	case elemTxt2ImgPrompt:
		s.txt2imgInput = component
	case elemImg2ImgPrompt:
		s.img2imgInput = component
	}
}

// PromptComponent returns the prompt textbox seen for the given tab, if any.
func (s *StyleSelector) PromptComponent(isImg2Img bool) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := s.txt2imgInput
	if isImg2Img {
		c = s.img2imgInput
	}
	return c, c != nil
}
