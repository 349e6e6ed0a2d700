// ABOUTME: CLI command for initializing the database and lookup catalogs.
// ABOUTME: Opening the store creates the schema; this reports what exists.
package main

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Initialize the database and seed lookup catalogs",
	Long: `Create the database schema and seed the lookup catalogs.

Meal types (Breakfast, Lunch, Dinner, Snack) and a starter set of exercise
types are inserted only when their tables are empty, so running seed against
an existing database changes nothing.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		meals, err := store.ListMealTypes()
		if err != nil {
			return err
		}
		exercises, err := store.ListExerciseTypes()
		if err != nil {
			return err
		}
		activities, err := store.ListActivityTypes()
		if err != nil {
			return err
		}

		color.Green("✓ Database ready at %s", store.Path())
		color.White("  %d meal types, %d exercise types, %d activity types",
			len(meals), len(exercises), len(activities))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
