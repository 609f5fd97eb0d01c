package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display completion statistics",
	Long: `Display aggregated completion statistics derived from the ledger.

Statistics include the share of tasks completed within their frequency
window, current and longest daily streaks, recent activity, and a
per-frequency breakdown of overdue tasks.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Scheduler == nil {
			return fmt.Errorf("scheduler not initialized")
		}

		stats, err := Scheduler.Stats(time.Now().UTC())
		if err != nil {
			return fmt.Errorf("calculating stats: %w", err)
		}

		if statsJSON {
			data, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return fmt.Errorf("formatting stats as JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("Statistics as of %s\n\n", stats.AsOf)
		fmt.Printf("  %-26s %d\n", "Tasks in catalog:", stats.TotalTasks)
		fmt.Printf("  %-26s %d\n", "Total completions:", stats.TotalCompletions)
		fmt.Printf("  %-26s %.0f%%\n", "On-schedule rate:", stats.CompletionRate*100)
		fmt.Printf("  %-26s %d day(s)\n", "Current streak:", stats.CurrentStreak)
		fmt.Printf("  %-26s %d day(s)\n", "Longest streak:", stats.LongestStreak)
		fmt.Printf("  %-26s %d (last %d days)\n", "Recent completions:", stats.RecentCompletions, stats.RecentWindowDays)
		if stats.MostCompletedID != "" {
			fmt.Printf("  %-26s %s (%d times)\n", "Most completed:", stats.MostCompletedID, stats.MostCompletedN)
		}

		if len(stats.ByFrequency) > 0 {
			fmt.Println("\n  By frequency:")
			for _, fb := range stats.ByFrequency {
				fmt.Printf("    every %3d day(s): %2d task(s), %2d ever done, %2d overdue\n",
					fb.FrequencyDays, fb.TotalTasks, fb.EverCompleted, fb.Overdue)
			}
		}

		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statsCmd)
}
