package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edgescope/edgescope/engine"
	"github.com/edgescope/edgescope/market"
)

var exitCmd = &cobra.Command{
	Use:   "exit",
	Short: "Record the outcome of a trade",
}

var exitRecordCmd = &cobra.Command{
	Use:   "record <trade-id>",
	Short: "Record exit facts and compute the realized profit",
	Long: `Record the exit of a trade. Profit is computed from the entry and exit
prices using the instrument's contract multiplier, net of fees.

Example:
  edgescope exit record 01JD... --time 2025-06-02T14:30 --price 38150 \
      --high 38560 --low 38090 --memo "took profit into close"`,
	Args: cobra.ExactArgs(1),
	RunE: runExitRecord,
}

var (
	exitTime      string
	exitPrice     float64
	exitDirection string
	exitHigh      float64
	exitLow       float64
	exitMemo      string
)

func init() {
	rootCmd.AddCommand(exitCmd)
	exitCmd.AddCommand(exitRecordCmd)

	exitRecordCmd.Flags().StringVar(&exitTime, "time", "", "exit time (YYYY-MM-DDTHH:MM, local) (required)")
	exitRecordCmd.Flags().Float64Var(&exitPrice, "price", 0, "exit price (required)")
	exitRecordCmd.Flags().StringVar(&exitDirection, "direction", "", "direction actually taken (defaults to planned)")
	exitRecordCmd.Flags().Float64Var(&exitHigh, "high", 0, "highest price seen during the trade")
	exitRecordCmd.Flags().Float64Var(&exitLow, "low", 0, "lowest price seen during the trade")
	exitRecordCmd.Flags().StringVar(&exitMemo, "memo", "", "result memo")
	exitRecordCmd.MarkFlagRequired("time")
	exitRecordCmd.MarkFlagRequired("price")
}

func runExitRecord(cmd *cobra.Command, args []string) error {
	j, _, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	rec, err := j.GetTrade(args[0])
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}

	t, err := parseFlagTime(exitTime)
	if err != nil {
		return err
	}
	rec.ExitTime = &t
	price := exitPrice
	rec.ExitPrice = &price

	fl := cmd.Flags()
	if fl.Changed("direction") {
		rec.DirectionTaken = market.ParseDirection(exitDirection)
	}
	if fl.Changed("high") {
		v := exitHigh
		rec.HighDuringTrade = &v
	}
	if fl.Changed("low") {
		v := exitLow
		rec.LowDuringTrade = &v
	}
	if fl.Changed("memo") {
		rec.ResultMemo = exitMemo
	}

	rec.Profit = engine.ComputeProfit(rec.Symbol, rec.TakenDirection(), rec.EntryPrice, rec.ExitPrice, rec.FeePerUnit, rec.Size)
	rec.HasResult = true
	rec.Normalize()

	if err := j.SaveTrade(rec); err != nil {
		return fmt.Errorf("save trade: %w", err)
	}

	fmt.Printf("✓ Exit recorded for %s\n", rec.ID)
	fmt.Printf("  損益: %s\n", fmtSignedYen(rec.Profit))
	return nil
}
