package domain

// Visibility tells the host when the plugin's panel is shown.
type Visibility string

// Visibility values.
const (
	// VisibilityAlwaysVisible shows the panel on every tab without a script picker entry.
	VisibilityAlwaysVisible Visibility = "always_visible"

	// VisibilityHidden hides the panel.
	VisibilityHidden Visibility = "hidden"
)

// ControlKind identifies the widget type of a panel control.
type ControlKind string

// Control kinds.
const (
	ControlCheckbox ControlKind = "checkbox"
	ControlRadio    ControlKind = "radio"
	ControlDropdown ControlKind = "dropdown"
)

// Control IDs, in the order the host passes their values to Process.
const (
	ControlIDEnabled       = "is_enabled"
	ControlIDRandomize     = "randomize"
	ControlIDRandomizeEach = "randomize_each"
	ControlIDAllStyles     = "all_styles"
	ControlIDStyle         = "style"
)

// Control describes one input in the settings panel.
type Control struct {
	ID    string      `json:"id"`
	Kind  ControlKind `json:"kind"`
	Label string      `json:"label"`
	Info  string      `json:"info,omitempty"`

	// Choices lists selectable values for radio and dropdown controls.
	Choices []string `json:"choices,omitempty"`

	// Value is the initial value: a bool for checkboxes, a string otherwise.
	Value any `json:"value"`

	// MinWidth is the minimum column width hint, zero when unset.
	MinWidth int `json:"min_width,omitempty"`
}

// Row is a horizontal group of controls.
type Row struct {
	Controls []Control `json:"controls"`
}

// Panel describes the settings accordion the host renders for the plugin.
type Panel struct {
	Title string `json:"title"`
	Open  bool   `json:"open"`
	Rows  []Row  `json:"rows"`
}

// Control returns the control with the given ID.
func (p *Panel) Control(id string) (Control, bool) {
	for _, row := range p.Rows {
		for _, c := range row.Controls {
			if c.ID == id {
				return c, true
			}
		}
	}
	return Control{}, false
}

// DefaultOptions returns the selection the panel starts with.
func (p *Panel) DefaultOptions() SelectionOptions {
	return SelectionOptions{
		Enabled:          p.boolValue(ControlIDEnabled),
		Randomize:        p.boolValue(ControlIDRandomize),
		RandomizePerItem: p.boolValue(ControlIDRandomizeEach),
		AllStylesInOrder: p.boolValue(ControlIDAllStyles),
		SelectedStyle:    p.stringValue(ControlIDStyle),
	}
}

func (p *Panel) boolValue(id string) bool {
	c, ok := p.Control(id)
	if !ok {
		return false
	}
	b, _ := c.Value.(bool)
	return b
}

func (p *Panel) stringValue(id string) string {
	c, ok := p.Control(id)
	if !ok {
		return ""
	}
	s, _ := c.Value.(string)
	return s
}
