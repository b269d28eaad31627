package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var journalCmd = &cobra.Command{
	Use:   "journal",
	Short: "Query trade journal records",
	Long: `Query and display trade journal records from the SQLite database.

Subcommands:
  list    - List all records, newest entry first
  show    - Show one record in full
  delete  - Delete a record

Examples:
  edgescope journal list
  edgescope journal show 01JD...
  edgescope journal delete 01JD...`,
}

var journalListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all records, newest entry first",
	Args:  cobra.NoArgs,
	RunE:  runJournalList,
}

var journalShowCmd = &cobra.Command{
	Use:   "show <trade-id>",
	Short: "Show one record in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalShow,
}

var journalDeleteCmd = &cobra.Command{
	Use:   "delete <trade-id>",
	Short: "Delete a record",
	Args:  cobra.ExactArgs(1),
	RunE:  runJournalDelete,
}

func init() {
	rootCmd.AddCommand(journalCmd)
	journalCmd.AddCommand(journalListCmd)
	journalCmd.AddCommand(journalShowCmd)
	journalCmd.AddCommand(journalDeleteCmd)
}

func runJournalList(cmd *cobra.Command, args []string) error {
	j, _, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListTrades()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	if len(recs) == 0 {
		fmt.Println("No records.")
		return nil
	}

	fmt.Printf("%-26s  %-16s  %-8s  %-6s  %-10s  %-10s  %s\n",
		"ID", "ENTRY", "SYMBOL", "TYPE", "DIRECTION", "PRICE", "PROFIT")
	for _, r := range recs {
		profit := "open"
		if r.HasResult {
			profit = fmtYen(r.Profit)
		}
		fmt.Printf("%-26s  %-16s  %-8s  %-6s  %-10s  %-10s  %s\n",
			r.ID, fmtTime(r.EntryTime), r.Symbol, r.TradeType,
			r.TakenDirection(), fmtFloat(r.EntryPrice), profit)
	}
	fmt.Printf("\n%d record(s)\n", len(recs))
	return nil
}

func runJournalShow(cmd *cobra.Command, args []string) error {
	j, _, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	r, err := j.GetTrade(args[0])
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}

	fmt.Printf("Trade %s\n", r.ID)
	fmt.Printf("  created:   %s\n", r.CreatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Printf("  updated:   %s\n", r.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
	fmt.Println()
	fmt.Printf("Entry\n")
	fmt.Printf("  time:      %s\n", fmtTime(r.EntryTime))
	fmt.Printf("  symbol:    %s (%s)\n", r.Symbol, r.Timeframe)
	fmt.Printf("  type:      %s\n", r.TradeType)
	fmt.Printf("  direction: %s\n", r.DirectionPlanned)
	fmt.Printf("  price:     %s  size: %s  fee: %s\n", fmtFloat(r.EntryPrice), fmtFloat(r.Size), fmtFloat(r.FeePerUnit))
	fmt.Printf("  stop: %s  limit: %s  cut-loss: %s\n", fmtFloat(r.PlannedStopPrice), fmtFloat(r.PlannedLimitPrice), fmtFloat(r.CutLossPrice))
	if r.MarketMemo != "" {
		fmt.Printf("  memo:      %s\n", r.MarketMemo)
	}
	if r.NotionURL != "" {
		fmt.Printf("  notion:    %s\n", r.NotionURL)
	}
	fmt.Println()
	fmt.Printf("Fingerprint\n")
	fmt.Printf("  wave: %s  stage: %s  vs-ema200: %s  band: %s  zone: %s\n",
		r.PrevWave, r.TrendStage, r.PriceVsEMA200, r.EMABandColor, r.VolatilityZone)
	fmt.Printf("  cmf: %s/%s  macd: %s  roc: %s/%s  rsi: %s\n",
		r.CMFSign, r.CMFSMADir, r.MACDState, r.ROCSign, r.ROCSMADir, r.RSIZone)
	fmt.Println()
	fmt.Printf("Judgment (frozen at save)\n")
	fmt.Printf("  recommendation: %s  win rate: %s  confidence: %s\n",
		r.Recommendation, fmtPct(r.WinRate), fmtPct(r.Confidence))
	fmt.Printf("  expected move: %s  cases: %s  threshold: %s\n",
		fmtYen(r.ExpectedMove), fmtInt(r.PseudoCaseCount), fmtPct(r.MinWinRate))
	fmt.Printf("  avg win: %s  avg loss: %s\n", fmtSignedYen(r.AvgWin), fmtSignedYen(r.AvgLoss))
	fmt.Println()
	if r.HasResult {
		fmt.Printf("Result\n")
		fmt.Printf("  exit:      %s @ %s\n", fmtTime(r.ExitTime), fmtFloat(r.ExitPrice))
		fmt.Printf("  taken:     %s\n", r.TakenDirection())
		fmt.Printf("  range:     high %s / low %s\n", fmtFloat(r.HighDuringTrade), fmtFloat(r.LowDuringTrade))
		fmt.Printf("  profit:    %s\n", fmtSignedYen(r.Profit))
		if r.ResultMemo != "" {
			fmt.Printf("  memo:      %s\n", r.ResultMemo)
		}
	} else {
		fmt.Println("Result: open")
	}
	return nil
}

func runJournalDelete(cmd *cobra.Command, args []string) error {
	j, _, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	if err := j.DeleteTrade(args[0]); err != nil {
		return fmt.Errorf("delete trade: %w", err)
	}
	fmt.Printf("✓ Deleted %s\n", args[0])
	return nil
}

func fmtInt(p *int) string {
	if p == nil {
		return "—"
	}
	return fmt.Sprintf("%d", *p)
}
