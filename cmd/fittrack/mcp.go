// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for AI assistant integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

The server communicates via stdin/stdout.

AVAILABLE TOOLS:

  log_cardio         Record a cardio workout
  log_food           Record a food log entry
  log_health         Record health vitals
  cardio_dashboard   Weekly cardio totals
  strength_data      Per-exercise volume history and PR
  bmi                Calculate BMI

AVAILABLE RESOURCES:

  fitness://recent    Latest entries across all four logs
  fitness://summary   Dashboard aggregations`,
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := mcp.NewServer(store)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return srv.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
