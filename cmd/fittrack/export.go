// ABOUTME: CLI commands for exporting and importing fitness data.
// ABOUTME: Dispatches per-domain to the storage export/import paths.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <domain> <format>",
	Short: "Export fitness data",
	Long: `Export one domain of fitness data.

DOMAINS AND FORMATS:

  cardio     csv, json
  food       csv, json
  health     csv, json
  strength   csv, json, yaml

EXAMPLES:

  fittrack export cardio csv                  # Dump cardio log to stdout
  fittrack export strength yaml -o lifts.yml  # Save strength log to a file`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, format := args[0], args[1]

		var data []byte
		var err error
		switch domain + "/" + format {
		case "cardio/csv":
			data, err = store.ExportCardioCSV()
		case "cardio/json":
			data, err = store.ExportCardioJSON()
		case "food/csv":
			data, err = store.ExportFoodCSV()
		case "food/json":
			data, err = store.ExportFoodJSON()
		case "health/csv":
			data, err = store.ExportHealthCSV()
		case "health/json":
			data, err = store.ExportHealthJSON()
		case "strength/csv":
			data, err = store.ExportStrengthCSV()
		case "strength/json":
			data, err = store.ExportStrengthJSON()
		case "strength/yaml":
			data, err = store.ExportStrengthYAML()
		default:
			return fmt.Errorf("unsupported export: %s %s", domain, format)
		}
		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Println(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <domain> <file>",
	Short: "Import fitness data",
	Long: `Import one domain of fitness data from a file.

Cardio, food, and health imports take CSV. Strength takes CSV or JSON,
chosen by file extension. Each import is all-or-nothing: a bad row rolls
back the whole file.

EXAMPLES:

  fittrack import cardio runs.csv
  fittrack import strength lifts.json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		domain, filename := args[0], args[1]

		f, err := os.Open(filename)
		if err != nil {
			return fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()

		var count int
		switch domain {
		case "cardio":
			count, err = store.ImportCardioCSV(f)
		case "food":
			count, err = store.ImportFoodCSV(f)
		case "health":
			count, err = store.ImportHealthCSV(f)
		case "strength":
			if strings.HasSuffix(strings.ToLower(filename), ".json") {
				count, err = store.ImportStrengthJSON(f)
			} else {
				count, err = store.ImportStrengthCSV(f)
			}
		default:
			return fmt.Errorf("unknown domain: %s", domain)
		}
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported %d rows from %s", count, filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
