// ABOUTME: Root Cobra command for the fittrack CLI.
// ABOUTME: Opens the SQLite store via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/config"
	"github.com/harperreed/fittrack/internal/storage"
)

var (
	cfg   *config.Config
	store *storage.DB
)

var rootCmd = &cobra.Command{
	Use:   "fittrack",
	Short: "Personal fitness tracker",
	Long: `Fittrack is a personal fitness tracking service and CLI.

WHAT IT TRACKS:

  Cardio     runs, rides, swims with distance, duration, derived pace
  Strength   workouts with nested exercises and sets
  Food       meals with calories and serving notes
  Health     blood pressure, heart rate, weight, derived BMI

QUICK START:

  $ fittrack serve                       # Start the HTTP service
  $ fittrack export cardio csv           # Dump the cardio log as CSV
  $ fittrack import health backup.csv    # Restore the health log

CONFIGURATION:

  FITTRACK_ADDR        HTTP listen address (default :8080)
  FITTRACK_DB_PATH     SQLite file (default ~/.local/share/fittrack/fittrack.db)
  FITTRACK_LOG_LEVEL   logrus level name (default info)

  A .env file in the working directory is loaded automatically.

MCP INTEGRATION:

  Run 'fittrack mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants:

  {
    "mcpServers": {
      "fittrack": { "command": "fittrack", "args": ["mcp"] }
    }
  }`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		cfg = config.Load()
		var err error
		store, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}
