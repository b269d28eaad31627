package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/edgescope/edgescope/journal"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import and merge a JSON or CSV export",
	Long: `Import records from a previous export and merge them into the journal.

Merging is by record ID: unknown IDs are added, and when an incoming
record collides with an existing one the newer updatedAt wins. Nothing
is ever deleted by an import.

Examples:
  edgescope import json backup.json
  edgescope import json backup.json.xz
  edgescope import csv trades.csv`,
}

var importJSONCmd = &cobra.Command{
	Use:   "json <path>",
	Short: "Merge a JSON backup (reads .xz transparently)",
	Args:  cobra.ExactArgs(1),
	RunE:  runImportJSON,
}

var importCSVCmd = &cobra.Command{
	Use:   "csv <path>",
	Short: "Merge a CSV export",
	Args:  cobra.ExactArgs(1),
	RunE:  runImportCSV,
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.AddCommand(importJSONCmd)
	importCmd.AddCommand(importCSVCmd)
}

func runImportJSON(cmd *cobra.Command, args []string) error {
	incoming, err := journal.ReadBackup(args[0])
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}
	return mergeIntoJournal(incoming)
}

func runImportCSV(cmd *cobra.Command, args []string) error {
	f, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	incoming, err := journal.ImportCSV(f)
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}
	return mergeIntoJournal(incoming)
}

func mergeIntoJournal(incoming []journal.TradeRecord) error {
	j, _, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	existing, err := j.ListTrades()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	merged, added, updated := journal.MergeRecords(existing, incoming)
	for _, rec := range merged {
		if err := j.RestoreTrade(rec); err != nil {
			return fmt.Errorf("restore trade %s: %w", rec.ID, err)
		}
	}

	fmt.Printf("✓ Imported %d record(s): %d added, %d updated\n", len(incoming), added, updated)
	return nil
}
