package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	metricsJSON  bool
	metricsSince string
)

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Display scheduler metrics from the event log",
	Long: `Display aggregated metrics derived from the event log.

Metrics include completion and plan-generation counts, plan and task resets,
and dropped ledger entries. These reflect recorded events, not the ledger
itself; use "chorewheel stats" for ledger-backed statistics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if MetricsCalc == nil {
			return fmt.Errorf("metrics calculator not initialized (observability may be disabled)")
		}

		sinceTime, err := parseSinceDuration(metricsSince)
		if err != nil {
			return fmt.Errorf("parsing --since: %w", err)
		}

		metrics, err := MetricsCalc.Calculate(sinceTime)
		if err != nil {
			return fmt.Errorf("calculating metrics: %w", err)
		}

		if metricsJSON {
			data, err := json.MarshalIndent(metrics, "", "  ")
			if err != nil {
				return fmt.Errorf("formatting metrics as JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		// Table format.
		fmt.Printf("Metrics (since %s)\n\n", sinceTime.Format("2006-01-02"))
		fmt.Printf("  %-24s %d\n", "Events recorded:", metrics.EventCount)
		fmt.Printf("  %-24s %d\n", "Tasks completed:", metrics.TasksCompleted)
		fmt.Printf("  %-24s %d\n", "Plans generated:", metrics.PlansGenerated)
		fmt.Printf("  %-24s %d\n", "Plans reset:", metrics.PlansReset)
		fmt.Printf("  %-24s %d\n", "Tasks reset:", metrics.TasksReset)
		fmt.Printf("  %-24s %d\n", "Ledger entries dropped:", metrics.EntriesDropped)

		if len(metrics.CompletionsByTask) > 0 {
			fmt.Println("\n  Completions by task:")
			for taskID, count := range metrics.CompletionsByTask {
				fmt.Printf("    %-28s %d\n", taskID+":", count)
			}
		}

		if metrics.OldestEvent != nil && metrics.NewestEvent != nil {
			fmt.Printf("\n  Window: %s to %s\n",
				metrics.OldestEvent.Format("2006-01-02 15:04"),
				metrics.NewestEvent.Format("2006-01-02 15:04"))
		}

		return nil
	},
}

// parseSinceDuration parses a human-friendly duration string like "7d", "30d",
// or "24h" into a cutoff time. An empty string defaults to 7 days ago.
func parseSinceDuration(s string) (time.Time, error) {
	now := time.Now().UTC()
	s = strings.TrimSpace(s)
	if s == "" {
		return now.AddDate(0, 0, -7), nil
	}

	if strings.HasSuffix(s, "d") {
		days, err := strconv.Atoi(strings.TrimSuffix(s, "d"))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid day duration %q", s)
		}
		return now.AddDate(0, 0, -days), nil
	}

	if strings.HasSuffix(s, "h") {
		hours, err := strconv.Atoi(strings.TrimSuffix(s, "h"))
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid hour duration %q", s)
		}
		return now.Add(-time.Duration(hours) * time.Hour), nil
	}

	return time.Time{}, fmt.Errorf("unsupported duration format %q (use e.g. 7d, 30d, 24h)", s)
}

func init() {
	metricsCmd.Flags().BoolVar(&metricsJSON, "json", false, "output metrics as JSON")
	metricsCmd.Flags().StringVar(&metricsSince, "since", "", "time window (e.g. 7d, 24h; default 7d)")
	rootCmd.AddCommand(metricsCmd)
}
