package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/style-selector/internal/core/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse previously applied batches",
	RunE:  runHistoryList,
}

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent batches",
	Args:  cobra.NoArgs,
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show ID",
	Short: "Show a recorded batch",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyCmd.PersistentFlags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.PersistentFlags().IntVarP(&historyLimit, "limit", "n", 20, "maximum number of records")
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func historyService() (*Services, error) {
	svc, err := requireServices()
	if err != nil {
		return nil, err
	}
	if svc.History == nil {
		return nil, errors.New("history service not configured")
	}
	return svc, nil
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	svc, err := historyService()
	if err != nil {
		return err
	}

	records, err := svc.History.List(context.Background(), historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if historyJSON {
		if records == nil {
			records = []domain.GenerationRecord{}
		}
		return writeJSON(out(cmd), records)
	}

	w := out(cmd)
	t := newTheme(w)
	if len(records) == 0 {
		fmt.Fprintln(w, "No history yet.")
		return nil
	}

	fmt.Fprintln(w, t.Title("History"))
	for i := range records {
		r := &records[i]
		fmt.Fprintf(w, "  %s  %s  %s\n",
			t.Muted(r.CreatedAt.Local().Format("2006-01-02 15:04:05")),
			r.ID,
			summarizeRecord(r))
	}
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	svc, err := historyService()
	if err != nil {
		return err
	}

	record, err := svc.History.Get(context.Background(), args[0])
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no record with ID %s", args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to get record: %w", err)
	}

	if historyJSON {
		return writeJSON(out(cmd), record)
	}

	w := out(cmd)
	t := newTheme(w)
	fmt.Fprintln(w, t.Title("Record "+record.ID))
	fmt.Fprintf(w, "  Created: %s\n", record.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "  Options: %s\n", describeOptions(record.Options))
	fmt.Fprintln(w)
	printResult(w, &domain.ResolutionResult{
		Positives: record.Positives,
		Negatives: record.Negatives,
		Styles:    record.Styles,
		Metadata:  record.Metadata,
		Failures:  record.Failures,
	}, "")
	return nil
}

// summarizeRecord describes a record on one line.
func summarizeRecord(r *domain.GenerationRecord) string {
	n := r.BatchSize()
	noun := "prompts"
	if n == 1 {
		noun = "prompt"
	}
	summary := fmt.Sprintf("%d %s", n, noun)

	switch {
	case r.Metadata == nil:
		summary += ", disabled"
	case len(uniqueStyles(r.Styles)) > 1:
		summary += fmt.Sprintf(", %d styles", len(uniqueStyles(r.Styles)))
	case len(r.Styles) > 0:
		summary += ", " + r.Styles[0]
	}

	if len(r.Failures) > 0 {
		summary += fmt.Sprintf(", %d failed", len(r.Failures))
	}
	return summary
}

func uniqueStyles(styles []string) []string {
	seen := make(map[string]bool, len(styles))
	var unique []string
	for _, s := range styles {
		if !seen[s] {
			seen[s] = true
			unique = append(unique, s)
		}
	}
	return unique
}

// describeOptions renders the selection flags that were set.
func describeOptions(o domain.SelectionOptions) string {
	if !o.Enabled {
		return "disabled"
	}
	parts := []string{"style=" + o.SelectedStyle}
	if o.Randomize {
		parts = append(parts, "randomize")
	}
	if o.RandomizePerItem {
		parts = append(parts, "randomize-each")
	}
	if o.AllStylesInOrder {
		parts = append(parts, "all-styles")
	}
	return strings.Join(parts, ", ")
}
