package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets the version information injected via ldflags.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "chorewheel",
	Short: "Chorewheel - adaptive household cleaning scheduler",
	Long: `Chorewheel is an adaptive cleaning scheduler that decides what to clean
next based on how overdue each chore is, how important it is, and how much
energy you have right now.

It scores every chore in the catalog, rotates a weekly focus area through
the home, and recommends a short list sized to your energy level. Completions
are recorded in a ledger that feeds streaks and statistics.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("chorewheel %s\ncommit: %s\nbuilt:  %s\n", appVersion, appCommit, appDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
