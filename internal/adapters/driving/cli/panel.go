package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/style-selector/internal/core/domain"
)

var panelImg2Img bool

var panelCmd = &cobra.Command{
	Use:   "panel",
	Short: "Print the settings panel descriptor as JSON",
	Long: `Prints the panel a generation host renders for the style selector:
its title, visibility, and controls with their initial values.`,
	Args: cobra.NoArgs,
	RunE: runPanel,
}

func init() {
	panelCmd.Flags().BoolVar(&panelImg2Img, "img2img", false, "describe the img2img tab")
	rootCmd.AddCommand(panelCmd)
}

// panelOutput is the JSON shape printed by panel.
type panelOutput struct {
	Title          string                  `json:"title"`
	Visibility     domain.Visibility       `json:"visibility"`
	Panel          *domain.Panel           `json:"panel"`
	DefaultOptions domain.SelectionOptions `json:"default_options"`
}

func runPanel(cmd *cobra.Command, _ []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}
	if svc.Script == nil {
		return errors.New("script not configured")
	}

	panel, err := svc.Script.UI(panelImg2Img)
	if err != nil {
		return fmt.Errorf("failed to build panel: %w", err)
	}

	return writeJSON(out(cmd), panelOutput{
		Title:          svc.Script.Title(),
		Visibility:     svc.Script.Show(panelImg2Img),
		Panel:          panel,
		DefaultOptions: panel.DefaultOptions(),
	})
}
