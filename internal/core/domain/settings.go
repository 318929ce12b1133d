package domain

const unknownDescription = "Unknown"

// StylesUIMode controls how style names are offered in the settings panel.
type StylesUIMode string

// Available style control modes.
const (
	// StylesUIRadioButtons shows one radio button per style.
	StylesUIRadioButtons StylesUIMode = "radio-buttons"

	// StylesUISelectList shows a single-select dropdown.
	StylesUISelectList StylesUIMode = "select-list"
)

// IsValid returns true if the mode is recognised.
func (m StylesUIMode) IsValid() bool {
	switch m {
	case StylesUIRadioButtons, StylesUISelectList:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m StylesUIMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m StylesUIMode) Description() string {
	switch m {
	case StylesUIRadioButtons:
		return "Radio buttons"
	case StylesUISelectList:
		return "Select list"
	default:
		return unknownDescription
	}
}

// AllStylesUIModes returns all valid style control modes.
func AllStylesUIModes() []StylesUIMode {
	return []StylesUIMode{StylesUIRadioButtons, StylesUISelectList}
}

// PluginSettings are the host-persisted options the plugin reads.
type PluginSettings struct {
	// EnabledByDefault is the initial value of the enable checkbox.
	EnabledByDefault bool

	// StylesUI selects the style control type.
	StylesUI StylesUIMode
}

// DefaultPluginSettings returns the settings used when nothing is stored.
func DefaultPluginSettings() PluginSettings {
	return PluginSettings{
		EnabledByDefault: true,
		StylesUI:         StylesUIRadioButtons,
	}
}
