package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var stylesJSON bool

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "Browse the style catalog",
	RunE:  runStylesList,
}

var stylesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List style names",
	Args:  cobra.NoArgs,
	RunE:  runStylesList,
}

var stylesShowCmd = &cobra.Command{
	Use:   "show NAME",
	Short: "Show a style's templates",
	Args:  cobra.ExactArgs(1),
	RunE:  runStylesShow,
}

func init() {
	stylesCmd.PersistentFlags().BoolVar(&stylesJSON, "json", false, "output as JSON")
	stylesCmd.AddCommand(stylesListCmd)
	stylesCmd.AddCommand(stylesShowCmd)
	rootCmd.AddCommand(stylesCmd)
}

func runStylesList(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	names := svc.Catalog.Names()
	if stylesJSON {
		if names == nil {
			names = []string{}
		}
		return writeJSON(out(cmd), names)
	}

	w := out(cmd)
	t := newTheme(w)
	if len(names) == 0 {
		fmt.Fprintln(w, t.Warning("No styles found in "+svc.CatalogPath))
		return nil
	}

	fmt.Fprintln(w, t.Title(fmt.Sprintf("Styles (%d)", len(names))))
	for _, name := range names {
		fmt.Fprintf(w, "  %s\n", name)
	}
	return nil
}

func runStylesShow(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	style, err := svc.Catalog.Lookup(args[0])
	if err != nil {
		return err
	}

	if stylesJSON {
		return writeJSON(out(cmd), style)
	}

	w := out(cmd)
	t := newTheme(w)
	fmt.Fprintln(w, t.Title(style.Name))
	fmt.Fprintf(w, "  %s %s\n", t.Subtitle("Prompt:"), style.Prompt)
	negative := style.NegativePrompt
	if negative == "" {
		negative = t.Muted("(none)")
	}
	fmt.Fprintf(w, "  %s %s\n", t.Subtitle("Negative:"), negative)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
