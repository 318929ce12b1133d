// Package cli provides the styleselector command line interface.
//
// The package owns flag parsing and output. Services are built by a Wiring
// function supplied by main, so the CLI never imports driven adapters.
package cli

import (
	"context"
	"errors"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/style-selector/internal/core/ports/driving"
	"github.com/custodia-labs/style-selector/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// annotationNoServices marks commands that run without wired services.
const annotationNoServices = "no-services"

// Options are the global flags handed to the Wiring function.
type Options struct {
	// CatalogPath overrides the style catalog location.
	CatalogPath string

	// ConfigDir holds config.toml.
	ConfigDir string

	// DataDir holds the history database.
	DataDir string

	// Ephemeral keeps history in memory only.
	Ephemeral bool

	// Seed makes random style choices reproducible when HasSeed is set.
	Seed    uint64
	HasSeed bool
}

// Services are the driving ports the commands run against.
type Services struct {
	Catalog  driving.CatalogService
	Resolver driving.ResolverService
	Settings driving.SettingsService
	History  driving.HistoryService
	Script   driving.Script

	// CatalogPath is where the catalog was loaded from.
	CatalogPath string

	// Watch reloads the catalog on file changes until ctx is done. Optional.
	Watch func(ctx context.Context) error

	// Close releases resources such as the history database. Optional.
	Close func() error
}

// Wiring builds the services for the parsed global flags.
type Wiring func(opts Options) (*Services, error)

var (
	opts    Options
	verbose bool

	wiring Wiring
	active *Services
)

var rootCmd = &cobra.Command{
	Use:   "styleselector",
	Short: "Apply prompt styles to image generation batches",
	Long: `styleselector rewrites image generation prompts with named style templates.

A style's prompt template has a {prompt} placeholder that is replaced by the
user's prompt, and an optional negative fragment that is joined to the
negative prompt. Styles are read from a JSON catalog.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.CatalogPath, "catalog", "", "style catalog JSON file (default ~/.styleselector/sdxl_styles.json)")
	flags.StringVar(&opts.ConfigDir, "config-dir", "", "directory containing config.toml (default ~/.styleselector)")
	flags.StringVar(&opts.DataDir, "data-dir", "", "directory for the history database (default ~/.styleselector/data)")
	flags.BoolVar(&opts.Ephemeral, "ephemeral", false, "keep history in memory for this run only")
	flags.Uint64Var(&opts.Seed, "seed", 0, "seed for reproducible random styles")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command with services built by wire.
func Execute(ctx context.Context, wire Wiring) error {
	wiring = wire
	err := rootCmd.ExecuteContext(ctx)
	if closeErr := teardown(); err == nil {
		err = closeErr
	}
	return err
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	opts.HasSeed = cmd.Flags().Changed("seed")

	if cmd.Annotations[annotationNoServices] == "true" {
		return nil
	}
	if wiring == nil {
		return errors.New("services not configured")
	}

	built, err := wiring(opts)
	if err != nil {
		return err
	}
	active = built
	return nil
}

func teardown() error {
	svc := active
	active = nil
	if svc == nil || svc.Close == nil {
		return nil
	}
	return svc.Close()
}

// requireServices returns the wired services or an error naming what is missing.
func requireServices() (*Services, error) {
	if active == nil {
		return nil, errors.New("services not configured")
	}
	return active, nil
}

func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
