package driving

import "github.com/custodia-labs/style-selector/internal/core/domain"

// Script is the capability interface a host image-generation UI calls
// into. The host builds the panel once per tab, then calls Process for
// every generation request with the current control values.
type Script interface {
	// Title is the name shown by the host.
	Title() string

	// Show reports when the panel is visible.
	Show(isImg2Img bool) domain.Visibility

	// UI describes the settings panel for the txt2img or img2img tab.
	UI(isImg2Img bool) (*domain.Panel, error)

	// Process rewrites the request's prompts in place and returns the
	// resolution behind the rewrite.
	Process(req *domain.GenerationRequest, opts domain.SelectionOptions) (*domain.ResolutionResult, error)

	// AfterComponent is called by the host for every component it creates.
	AfterComponent(component any, elemID string)
}
