package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// palette holds the colours used for terminal output.
var palette = struct {
	Primary, Secondary, Muted, Success, Warning, Error lipgloss.Color
}{
	Primary:   lipgloss.Color("#7C3AED"), // Purple
	Secondary: lipgloss.Color("#06B6D4"), // Cyan
	Muted:     lipgloss.Color("#6C7086"), // Medium gray
	Success:   lipgloss.Color("#A6E3A1"), // Green
	Warning:   lipgloss.Color("#F9E2AF"), // Yellow
	Error:     lipgloss.Color("#F38BA8"), // Red
}

// theme renders text with lipgloss styles when writing to a terminal and
// passes it through unchanged otherwise.
type theme struct {
	plain bool

	title    lipgloss.Style
	subtitle lipgloss.Style
	muted    lipgloss.Style
	success  lipgloss.Style
	warning  lipgloss.Style
	err      lipgloss.Style
}

// newTheme picks styled or plain output for w.
func newTheme(w io.Writer) *theme {
	return &theme{
		plain: !isTerminal(w),

		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(palette.Primary),

		subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(palette.Secondary),

		muted: lipgloss.NewStyle().
			Foreground(palette.Muted),

		success: lipgloss.NewStyle().
			Foreground(palette.Success),

		warning: lipgloss.NewStyle().
			Foreground(palette.Warning),

		err: lipgloss.NewStyle().
			Foreground(palette.Error),
	}
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (t *theme) render(style lipgloss.Style, s string) string {
	if t.plain {
		return s
	}
	return style.Render(s)
}

// Title renders a heading.
func (t *theme) Title(s string) string { return t.render(t.title, s) }

// Subtitle renders a secondary heading.
func (t *theme) Subtitle(s string) string { return t.render(t.subtitle, s) }

// Muted renders less important text.
func (t *theme) Muted(s string) string { return t.render(t.muted, s) }

// Success renders a positive outcome.
func (t *theme) Success(s string) string { return t.render(t.success, s) }

// Warning renders a caution.
func (t *theme) Warning(s string) string { return t.render(t.warning, s) }

// Error renders a problem.
func (t *theme) Error(s string) string { return t.render(t.err, s) }
