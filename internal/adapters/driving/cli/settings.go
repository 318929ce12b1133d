package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/style-selector/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show plugin settings",
	Long: `Show the plugin options read from config.toml.

Options live in the [styleselector] table:

  [styleselector]
  styles_ui = "radio-buttons"   # or "select-list"
  enable_by_default = true`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}
	if svc.Settings == nil {
		return errors.New("settings service not configured")
	}

	settings, err := svc.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	w := out(cmd)
	t := newTheme(w)

	fmt.Fprintln(w, t.Title("Current Settings"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, t.Subtitle("[Style Selector]"))
	fmt.Fprintf(w, "  Styles UI: %s\n", settings.StylesUI.Description())
	fmt.Fprintf(w, "  Enabled by default: %s\n", yesNo(settings.EnabledByDefault))
	fmt.Fprintln(w)
	fmt.Fprintln(w, t.Subtitle("[Catalog]"))
	fmt.Fprintf(w, "  Path: %s\n", svc.CatalogPath)
	fmt.Fprintf(w, "  Styles: %d\n", len(svc.Catalog.Names()))
	fmt.Fprintln(w)
	fmt.Fprintln(w, t.Muted("Available styles UI modes:"))
	for _, mode := range domain.AllStylesUIModes() {
		fmt.Fprintf(w, "  %-14s %s\n", mode, mode.Description())
	}
	return nil
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
