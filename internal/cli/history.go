package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	historyDueOnly bool
	historyJSON    bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show per-task completion history",
	Long: `Show the completion history for every task in the catalog: when it was
last done, how many days ago, how many times it has been completed, and
whether it is currently due.

Tasks that have been done recently sort first; never-done tasks sort last.
Use --due to show only tasks that are due right now.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Scheduler == nil {
			return fmt.Errorf("scheduler not initialized")
		}

		entries, err := Scheduler.History(time.Now().UTC())
		if err != nil {
			return fmt.Errorf("loading history: %w", err)
		}

		if historyDueOnly {
			filtered := entries[:0]
			for _, e := range entries {
				if e.Due {
					filtered = append(filtered, e)
				}
			}
			entries = filtered
		}

		if historyJSON {
			data, err := json.MarshalIndent(entries, "", "  ")
			if err != nil {
				return fmt.Errorf("formatting history as JSON: %w", err)
			}
			fmt.Println(string(data))
			return nil
		}

		if len(entries) == 0 {
			fmt.Println("No tasks to show.")
			return nil
		}

		fmt.Printf("%-32s %-10s %-12s %-10s %6s  %s\n",
			"TASK", "PRIORITY", "LAST DONE", "DAYS AGO", "COUNT", "DUE")
		for _, e := range entries {
			lastDone := e.LastDone
			daysAgo := fmt.Sprintf("%d", e.DaysSince)
			if e.NeverDone {
				lastDone = "never"
				daysAgo = "-"
			}
			due := ""
			if e.Due {
				due = "due"
			}
			fmt.Printf("%-32s %-10s %-12s %-10s %6d  %s\n",
				e.TaskID, e.Priority, lastDone, daysAgo, e.Count, due)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().BoolVar(&historyDueOnly, "due", false, "show only tasks that are currently due")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(historyCmd)
}
