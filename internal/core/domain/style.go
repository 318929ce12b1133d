package domain

import "strings"

// PlaceholderToken marks where the user's prompt is inserted into a template.
const PlaceholderToken = "{prompt}"

// negativeSeparator joins a template negative fragment with the user's negative prompt.
const negativeSeparator = ", "

// Style is a named prompt template.
type Style struct {
	// Name is the unique, human-readable key of the style.
	Name string `json:"name"`

	// Prompt wraps the positive prompt; it contains PlaceholderToken.
	Prompt string `json:"prompt"`

	// NegativePrompt is prepended to the user's negative prompt. May be empty.
	NegativePrompt string `json:"negative_prompt,omitempty"`
}

// ApplyPositive replaces every placeholder occurrence in the template with positive.
func (s Style) ApplyPositive(positive string) string {
	return strings.ReplaceAll(s.Prompt, PlaceholderToken, positive)
}

// ApplyNegative combines the template negative fragment with negative.
//
// A non-empty negative is appended after the fragment ("fragment, negative"),
// or returned unchanged when the fragment is empty. An empty negative yields
// the fragment itself.
func (s Style) ApplyNegative(negative string) string {
	if negative == "" {
		return s.NegativePrompt
	}
	if s.NegativePrompt == "" {
		return negative
	}
	return s.NegativePrompt + negativeSeparator + negative
}
