package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edgescope/edgescope/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the journal to JSON or CSV",
	Long: `Export every journal record to a file.

JSON exports are full backups and round-trip through "import json"
without loss. A .xz suffix compresses the backup transparently.
CSV exports use the journal's historical 43-column layout, one row per
record, for spreadsheets and external analysis.

Examples:
  edgescope export json backup.json
  edgescope export json backup.json.xz
  edgescope export csv trades.csv`,
}

var exportJSONCmd = &cobra.Command{
	Use:   "json <path>",
	Short: "Write a full JSON backup (add .xz to compress)",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportJSON,
}

var exportCSVCmd = &cobra.Command{
	Use:   "csv <path>",
	Short: "Write a CSV export",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportCSV,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportJSONCmd)
	exportCmd.AddCommand(exportCSVCmd)
}

func runExportJSON(cmd *cobra.Command, args []string) error {
	j, _, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListTrades()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	if err := journal.WriteBackup(args[0], recs); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	fmt.Printf("✓ Exported %d record(s) to %s\n", len(recs), args[0])
	return nil
}

func runExportCSV(cmd *cobra.Command, args []string) error {
	j, _, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListTrades()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer f.Close()

	if err := journal.ExportCSV(f, recs); err != nil {
		return fmt.Errorf("write csv: %w", err)
	}
	fmt.Printf("✓ Exported %d record(s) to %s\n", len(recs), args[0])
	return nil
}
