// ABOUTME: CLI command for running the HTTP service.
// ABOUTME: Wires config, logger, storage, and the gin router together.
package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harperreed/fittrack/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP service",
	Long: `Start the fitness tracker HTTP service.

Routes are grouped by domain:

  /cardio     workout log, activity types, weekly dashboard
  /food       food log and meal types
  /health     vitals log and trend dashboard
  /strength   workouts with nested exercises and sets

EXAMPLES:

  fittrack serve                         # Listen on :8080
  FITTRACK_ADDR=:9090 fittrack serve     # Listen elsewhere`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := server.NewLogger(cfg.LogLevel)
		srv := server.New(store, log)

		log.WithField("addr", cfg.Addr).Info("starting server")
		color.Green("fittrack listening on %s (db: %s)", cfg.Addr, store.Path())
		return srv.Router().Run(cfg.Addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
