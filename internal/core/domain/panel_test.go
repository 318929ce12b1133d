package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPanel() *Panel {
	return &Panel{
		Title: "Extended Style Selector",
		Rows: []Row{
			{Controls: []Control{
				{ID: ControlIDEnabled, Kind: ControlCheckbox, Value: true},
				{ID: ControlIDRandomize, Kind: ControlCheckbox, Value: false},
				{ID: ControlIDRandomizeEach, Kind: ControlCheckbox, Value: true},
			}},
			{Controls: []Control{
				{ID: ControlIDAllStyles, Kind: ControlCheckbox, Value: false},
			}},
			{Controls: []Control{
				{ID: ControlIDStyle, Kind: ControlRadio, Choices: []string{"base"}, Value: "base"},
			}},
		},
	}
}

func TestPanel_Control(t *testing.T) {
	panel := testPanel()

	c, ok := panel.Control(ControlIDStyle)
	assert.True(t, ok)
	assert.Equal(t, ControlRadio, c.Kind)

	_, ok = panel.Control("missing")
	assert.False(t, ok)
}

func TestPanel_DefaultOptions(t *testing.T) {
	opts := testPanel().DefaultOptions()

	assert.Equal(t, SelectionOptions{
		Enabled:          true,
		RandomizePerItem: true,
		SelectedStyle:    "base",
	}, opts)
}

func TestPanel_DefaultOptions_EmptyPanel(t *testing.T) {
	opts := (&Panel{}).DefaultOptions()

	assert.Equal(t, SelectionOptions{}, opts)
}
