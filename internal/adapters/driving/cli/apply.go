package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/style-selector/internal/core/domain"
	"github.com/custodia-labs/style-selector/internal/logger"
)

var (
	applyNegatives     []string
	applyStyle         string
	applyEnabled       bool
	applyRandomize     bool
	applyRandomizeEach bool
	applyAllStyles     bool
	applyBatch         int
	applyJSON          bool
	applyNoRecord      bool
)

var applyCmd = &cobra.Command{
	Use:   "apply [PROMPT...]",
	Short: "Apply styles to a batch of prompts",
	Long: `Rewrites each prompt with a style template and prints the result.

Prompts are taken from the arguments, or one per line from stdin when no
arguments are given. Use --batch to repeat a single prompt, as a generation
host does for a batch count greater than one.

Examples:
  styleselector apply "a cat on a sofa" --style sai-anime
  styleselector apply "a lighthouse" --batch 4 --randomize-each
  styleselector apply "a castle" --all-styles`,
	RunE: runApply,
}

func init() {
	flags := applyCmd.Flags()
	flags.StringArrayVarP(&applyNegatives, "negative", "n", nil,
		"negative prompt (once for all prompts, or once per prompt)")
	flags.StringVarP(&applyStyle, "style", "s", domain.DefaultStyleName, "style to apply")
	flags.BoolVar(&applyEnabled, "enabled", true, "apply styles (default from config enable_by_default)")
	flags.BoolVar(&applyRandomize, "randomize", false, "pick one random style for the batch")
	flags.BoolVar(&applyRandomizeEach, "randomize-each", false, "pick a random style for every prompt")
	flags.BoolVar(&applyAllStyles, "all-styles", false, "apply every style in turn (batch defaults to the style count)")
	flags.IntVarP(&applyBatch, "batch", "b", 1, "repeat a single prompt this many times")
	flags.BoolVar(&applyJSON, "json", false, "output as JSON")
	flags.BoolVar(&applyNoRecord, "no-record", false, "do not save the result to history")
	rootCmd.AddCommand(applyCmd)
}

// applyOutput is the JSON shape printed by apply.
type applyOutput struct {
	Prompts         []string                   `json:"prompts"`
	NegativePrompts []string                   `json:"negative_prompts"`
	Styles          []string                   `json:"styles"`
	Metadata        map[string]any             `json:"metadata,omitempty"`
	Params          map[string]any             `json:"extra_generation_params,omitempty"`
	Failures        []domain.ResolutionFailure `json:"failures,omitempty"`
	RecordID        string                     `json:"record_id,omitempty"`
}

func runApply(cmd *cobra.Command, args []string) error {
	svc, err := requireServices()
	if err != nil {
		return err
	}

	prompts := args
	if len(prompts) == 0 {
		in := cmd.InOrStdin()
		if isTerminal(in) {
			return errors.New("no prompts given")
		}
		if prompts, err = readPrompts(in); err != nil {
			return err
		}
	}

	enabled := applyEnabled
	if !cmd.Flags().Changed("enabled") && svc.Settings != nil {
		settings, err := svc.Settings.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		enabled = settings.EnabledByDefault
	}

	batch := applyBatch
	if applyAllStyles && !cmd.Flags().Changed("batch") && len(prompts) == 1 {
		batch = max(len(svc.Catalog.Names()), 1)
	}

	positives, negatives, err := buildBatch(prompts, applyNegatives, batch)
	if err != nil {
		return err
	}

	if svc.Script == nil {
		return errors.New("script not configured")
	}

	req := domain.ResolutionRequest{
		Positives: positives,
		Negatives: negatives,
		Options: domain.SelectionOptions{
			Enabled:          enabled,
			Randomize:        applyRandomize,
			RandomizePerItem: applyRandomizeEach,
			AllStylesInOrder: applyAllStyles,
			SelectedStyle:    applyStyle,
		},
	}

	genReq := &domain.GenerationRequest{
		AllPrompts:         append([]string(nil), positives...),
		AllNegativePrompts: append([]string(nil), negatives...),
	}
	result, err := svc.Script.Process(genReq, req.Options)
	if err != nil {
		return fmt.Errorf("apply failed: %w", err)
	}

	recordID := ""
	if !applyNoRecord && svc.History != nil {
		record, err := svc.History.Record(context.Background(), req, result)
		if err != nil {
			logger.Warn("failed to record generation: %v", err)
		} else {
			recordID = record.ID
		}
	}

	if applyJSON {
		output := applyOutput{
			Prompts:         genReq.AllPrompts,
			NegativePrompts: genReq.AllNegativePrompts,
			Styles:          result.Styles,
			Params:          genReq.ExtraGenerationParams,
			Failures:        result.Failures,
			RecordID:        recordID,
		}
		if result.Metadata != nil {
			output.Metadata = result.Metadata.Params()
		}
		return writeJSON(out(cmd), output)
	}

	printResult(out(cmd), result, recordID)
	return nil
}

// readPrompts returns the non-blank lines of r.
func readPrompts(r io.Reader) ([]string, error) {
	var prompts []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			prompts = append(prompts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading prompts: %w", err)
	}
	if len(prompts) == 0 {
		return nil, errors.New("no prompts given")
	}
	return prompts, nil
}

// buildBatch pairs prompts with negatives and expands a single prompt to
// batch copies.
func buildBatch(prompts, negatives []string, batch int) ([]string, []string, error) {
	if len(prompts) == 0 {
		return nil, nil, fmt.Errorf("no prompts given: %w", domain.ErrInvalidInput)
	}
	if batch < 1 {
		return nil, nil, fmt.Errorf("batch must be at least 1: %w", domain.ErrInvalidInput)
	}
	if batch > 1 && len(prompts) != 1 {
		return nil, nil, fmt.Errorf("--batch needs exactly one prompt, got %d: %w",
			len(prompts), domain.ErrInvalidInput)
	}

	paired := make([]string, len(prompts))
	switch len(negatives) {
	case 0:
	case 1:
		for i := range paired {
			paired[i] = negatives[0]
		}
	case len(prompts):
		copy(paired, negatives)
	default:
		return nil, nil, fmt.Errorf("got %d negative prompts for %d prompts: %w",
			len(negatives), len(prompts), domain.ErrInvalidInput)
	}

	if batch == 1 {
		return append([]string(nil), prompts...), paired, nil
	}

	positives := make([]string, batch)
	expanded := make([]string, batch)
	for i := range positives {
		positives[i] = prompts[0]
		expanded[i] = paired[0]
	}
	return positives, expanded, nil
}

func printResult(w io.Writer, result *domain.ResolutionResult, recordID string) {
	t := newTheme(w)

	if !result.Applied() {
		fmt.Fprintln(w, t.Muted("Style selector disabled, prompts unchanged"))
	} else {
		fmt.Fprintln(w, t.Title("Styles applied"))
	}
	fmt.Fprintln(w)

	for i, positive := range result.Positives {
		label := fmt.Sprintf("[%d]", i+1)
		if i < len(result.Styles) {
			label += " " + result.Styles[i]
		}
		fmt.Fprintln(w, t.Subtitle(label))
		fmt.Fprintf(w, "    Prompt:   %s\n", positive)
		if negative := result.Negatives[i]; negative != "" {
			fmt.Fprintf(w, "    Negative: %s\n", negative)
		}
	}

	if len(result.Failures) > 0 {
		fmt.Fprintln(w)
		for _, f := range result.Failures {
			kind := "prompt"
			if f.Negative {
				kind = "negative prompt"
			}
			fmt.Fprintln(w, t.Warning(fmt.Sprintf("  [%d] %s left unchanged: %s", f.Index+1, kind, f.Reason)))
		}
	}

	if recordID != "" {
		fmt.Fprintln(w)
		fmt.Fprintln(w, t.Muted("Recorded as "+recordID))
	}
}
