package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/edgescope/edgescope/market"
	"github.com/edgescope/edgescope/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate performance statistics",
	Long: `Summarize journal performance: totals, win rate, net profit, breakdowns
by direction and timeframe, and the cumulative profit curve.

Examples:
  edgescope stats
  edgescope stats --symbol nk225mc --result closed --from 2025-01-01`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

var (
	statsSymbol    string
	statsTimeframe string
	statsType      string
	statsDirection string
	statsResult    string
	statsFrom      string
	statsTo        string
	statsCurve     bool
)

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsSymbol, "symbol", "", "filter by instrument symbol")
	statsCmd.Flags().StringVar(&statsTimeframe, "timeframe", "", "filter by timeframe label")
	statsCmd.Flags().StringVar(&statsType, "type", "", "filter by trade type (real or sim)")
	statsCmd.Flags().StringVar(&statsDirection, "direction", "", "filter by direction taken (long or short)")
	statsCmd.Flags().StringVar(&statsResult, "result", "", "filter by result state (open or closed)")
	statsCmd.Flags().StringVar(&statsFrom, "from", "", "earliest entry date (YYYY-MM-DD)")
	statsCmd.Flags().StringVar(&statsTo, "to", "", "latest entry date (YYYY-MM-DD)")
	statsCmd.Flags().BoolVar(&statsCurve, "curve", false, "print the cumulative profit curve")
}

func runStats(cmd *cobra.Command, args []string) error {
	filter, err := statsFilter(cmd)
	if err != nil {
		return err
	}

	j, _, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	recs, err := j.ListTrades()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}
	recs = stats.Apply(recs, filter)

	s := stats.Summarize(recs)
	fmt.Println("Summary")
	fmt.Printf("  trades:     %d (%d closed)\n", s.Total, s.Closed)
	fmt.Printf("  win rate:   %s\n", fmtPct(s.WinRate))
	fmt.Printf("  net profit: %+.0f円\n", s.NetProfit)
	fmt.Printf("  avg win:    %s  avg loss: %s\n", fmtSignedYen(s.AvgWin), fmtSignedYen(s.AvgLoss))

	fmt.Println("\nBy direction")
	fmt.Printf("  %-8s  %5s  %8s  %12s  %12s\n", "DIR", "N", "WIN%", "AVG WIN", "AVG LOSS")
	for _, row := range stats.ByDirection(recs) {
		fmt.Printf("  %-8s  %5d  %7.1f%%  %+11.0f円  %+11.0f円\n",
			row.Direction, row.N, row.WinRate, row.AvgWin, row.AvgLoss)
	}

	rows := stats.ByTimeframe(recs)
	if len(rows) > 0 {
		fmt.Println("\nBy timeframe")
		fmt.Printf("  %-10s  %5s  %8s\n", "TIMEFRAME", "N", "WIN%")
		for _, row := range rows {
			fmt.Printf("  %-10s  %5d  %7.1f%%\n", row.Timeframe, row.N, row.WinRate)
		}
	}

	if statsCurve {
		fmt.Println("\nCumulative profit")
		for _, p := range stats.CumulativeCurve(recs) {
			fmt.Printf("  %s  %+10.0f円  %+10.0f円\n",
				p.Time.Local().Format("2006-01-02 15:04"), p.Profit, p.Cumulative)
		}
	}
	return nil
}

func statsFilter(cmd *cobra.Command) (stats.Filter, error) {
	f := stats.Filter{
		Symbol:    statsSymbol,
		Timeframe: statsTimeframe,
		TradeType: statsType,
		Result:    statsResult,
	}
	if statsDirection != "" {
		f.Direction = market.ParseDirection(statsDirection)
	}
	if statsResult != "" && statsResult != stats.ResultOpen && statsResult != stats.ResultClosed {
		return f, fmt.Errorf("result must be %q or %q", stats.ResultOpen, stats.ResultClosed)
	}
	if statsFrom != "" {
		t, err := time.ParseInLocation("2006-01-02", statsFrom, time.Local)
		if err != nil {
			return f, fmt.Errorf("bad from date %q: %w", statsFrom, err)
		}
		f.Start = t
	}
	if statsTo != "" {
		t, err := time.ParseInLocation("2006-01-02", statsTo, time.Local)
		if err != nil {
			return f, fmt.Errorf("bad to date %q: %w", statsTo, err)
		}
		f.End = t
	}
	return f, nil
}
