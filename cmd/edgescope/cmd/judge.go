package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edgescope/edgescope/engine"
	"github.com/edgescope/edgescope/journal"
	"github.com/edgescope/edgescope/market"
)

var judgeCmd = &cobra.Command{
	Use:   "judge",
	Short: "Judge a setup without saving anything",
	Long: `Run the judgment engine against the journal for a hypothetical setup.
Nothing is written; use "entry add" to record the trade.

Example:
  edgescope judge --symbol nk225mc --timeframe 1時間 \
      --prev-wave LH --trend-stage Stage5 --band bearish --macd bearish`,
	Args: cobra.NoArgs,
	RunE: runJudge,
}

var judgeFlags setupFlags

func init() {
	rootCmd.AddCommand(judgeCmd)
	judgeFlags.register(judgeCmd)
}

func runJudge(cmd *cobra.Command, args []string) error {
	j, cfg, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	var rec journal.TradeRecord
	rec.Symbol = cfg.Entry.Symbol
	rec.Timeframe = cfg.Entry.Timeframe
	rec.TradeType = cfg.Entry.TradeType
	rec.DirectionPlanned = market.ParseDirection(cfg.Entry.Direction)
	mwr := cfg.Entry.MinWinRate
	rec.MinWinRate = &mwr

	if err := judgeFlags.apply(cmd, &rec); err != nil {
		return err
	}
	rec.Normalize()

	history, err := j.ListTrades()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	judgment := engine.Judge(history, engine.CandidateFromRecord(rec))
	fmt.Println(renderJudgment(rec.Symbol, judgment))
	return nil
}
