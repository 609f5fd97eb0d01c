package cli

import (
	"errors"
	"fmt"

	"github.com/chorewheel/chorewheel/internal/core"
	"github.com/spf13/cobra"
)

var resetDayDate string

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset cached plans or task history",
	Long:  "Commands for discarding a day's cached plan or a task's completion history.",
}

var resetDayCmd = &cobra.Command{
	Use:   "day",
	Short: "Discard a day's cached plan and recompute it",
	Long: `Discard the cached plan for a day (default today) and recompute it from
the current ledger. Completions recorded in the ledger are not affected.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Scheduler == nil {
			return fmt.Errorf("scheduler not initialized")
		}

		day, err := parseDateFlag(resetDayDate)
		if err != nil {
			return err
		}

		plan, err := Scheduler.ResetDay(day)
		if err != nil {
			return fmt.Errorf("resetting day: %w", err)
		}

		fmt.Printf("Plan for %s regenerated (week %d, focus: %s)\n",
			plan.Date, plan.WeekNumber, plan.FocusCategory)
		return nil
	},
}

var resetTaskCmd = &cobra.Command{
	Use:   "task <task-id>",
	Short: "Clear a task's completion history",
	Long: `Clear the completion history for one task: its last-done date, count,
and recorded dates. The task goes back to scoring as never done.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Scheduler == nil {
			return fmt.Errorf("scheduler not initialized")
		}

		taskID := args[0]
		if err := Scheduler.ResetTask(taskID); err != nil {
			var unknown *core.UnknownTaskError
			if errors.As(err, &unknown) {
				return fmt.Errorf("unknown task %q (run \"chorewheel tasks\" to list task IDs)", taskID)
			}
			return fmt.Errorf("resetting task: %w", err)
		}

		fmt.Printf("Cleared completion history for %s\n", taskID)
		return nil
	},
}

func init() {
	resetDayCmd.Flags().StringVar(&resetDayDate, "date", "", "day to reset (YYYY-MM-DD, default today)")
	resetCmd.AddCommand(resetDayCmd)
	resetCmd.AddCommand(resetTaskCmd)
	rootCmd.AddCommand(resetCmd)
}
