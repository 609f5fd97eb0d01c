package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	cwmcp "github.com/chorewheel/chorewheel/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  "Commands for running the chorewheel MCP (Model Context Protocol) server.",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the chorewheel MCP server on stdio",
	Long: `Start the chorewheel MCP server on stdio transport.

The server exposes the scheduler as MCP tools that AI assistants can call:
get_recommendations, complete_task, get_stats, get_history, get_metrics.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if Scheduler == nil {
			return fmt.Errorf("scheduler not initialized")
		}

		srv := cwmcp.NewServer(Scheduler, MetricsCalc, appVersion)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("running MCP server: %w", err)
		}

		return nil
	},
}

func init() {
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}
