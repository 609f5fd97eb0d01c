package cli

import (
	"errors"
	"fmt"

	"github.com/chorewheel/chorewheel/internal/core"
	"github.com/chorewheel/chorewheel/pkg/models"
	"github.com/spf13/cobra"
)

var completeDate string

var completeCmd = &cobra.Command{
	Use:   "complete <task-id>",
	Short: "Mark a cleaning task as completed",
	Long: `Mark a cleaning task as completed on a day (default today).

The completion is recorded in the ledger and the day's cached plan is
invalidated, so the next recommendation reflects the new state. Use
"chorewheel tasks" to list the catalog task IDs.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Scheduler == nil {
			return fmt.Errorf("scheduler not initialized")
		}

		taskID := args[0]
		day, err := parseDateFlag(completeDate)
		if err != nil {
			return err
		}

		if err := Scheduler.MarkComplete(taskID, day); err != nil {
			var unknown *core.UnknownTaskError
			if errors.As(err, &unknown) {
				return fmt.Errorf("unknown task %q (run \"chorewheel tasks\" to list task IDs)", taskID)
			}
			return fmt.Errorf("completing task: %w", err)
		}

		fmt.Printf("Completed %s on %s\n", taskID, day.Format(models.DateFormat))
		return nil
	},
}

func init() {
	completeCmd.Flags().StringVar(&completeDate, "date", "", "completion day (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(completeCmd)
}
