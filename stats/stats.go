// stats/stats.go
//
// Aggregate reporting over the journal: the filtered summary, direction and
// timeframe breakdowns, and the cumulative profit curve. These are display
// datasets, distinct from the engine's per-judgment statistics.
package stats

import (
	"math"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/edgescope/edgescope/journal"
	"github.com/edgescope/edgescope/market"
)

// Filter narrows the record set before aggregation. Zero values mean
// "no restriction".
type Filter struct {
	Symbol    string
	Timeframe string
	TradeType string
	Direction market.Direction

	// Result is "", "open" or "closed".
	Result string

	// Start and End bound the entry time, inclusive on both ends at day
	// resolution. Records without an entry time pass date filters.
	Start time.Time
	End   time.Time
}

const (
	ResultOpen   = "open"
	ResultClosed = "closed"
)

// Apply returns the records matching f, preserving order.
func Apply(records []journal.TradeRecord, f Filter) []journal.TradeRecord {
	return lo.Filter(records, func(r journal.TradeRecord, _ int) bool {
		if f.Symbol != "" && r.Symbol != f.Symbol {
			return false
		}
		if f.Timeframe != "" && r.Timeframe != f.Timeframe {
			return false
		}
		if f.TradeType != "" && r.TradeType != f.TradeType {
			return false
		}
		if f.Direction != "" && r.TakenDirection() != f.Direction {
			return false
		}
		if f.Result == ResultOpen && r.HasResult {
			return false
		}
		if f.Result == ResultClosed && !r.HasResult {
			return false
		}
		if r.EntryTime != nil {
			day := r.EntryTime.Truncate(24 * time.Hour)
			if !f.Start.IsZero() && day.Before(f.Start.Truncate(24*time.Hour)) {
				return false
			}
			if !f.End.IsZero() && day.After(f.End.Truncate(24*time.Hour)) {
				return false
			}
		}
		return true
	})
}

// Summary is the headline block of the stats view.
type Summary struct {
	Total     int
	Closed    int
	WinRate   *float64
	NetProfit float64
	AvgWin    *float64
	AvgLoss   *float64
}

// Summarize computes the headline numbers over a (usually pre-filtered)
// record set. Win rate and averages consider closed trades with a finite
// profit only.
func Summarize(records []journal.TradeRecord) Summary {
	closed := closedTrades(records)
	wins := lo.Filter(closed, func(r journal.TradeRecord, _ int) bool { return *r.Profit > 0 })
	losses := lo.Filter(closed, func(r journal.TradeRecord, _ int) bool { return *r.Profit < 0 })

	s := Summary{Total: len(records), Closed: len(closed)}
	if s.Closed > 0 {
		wr := float64(len(wins)) / float64(s.Closed) * 100
		s.WinRate = &wr
		s.NetProfit = lo.SumBy(closed, func(r journal.TradeRecord) float64 { return *r.Profit })
	}
	s.AvgWin = meanProfit(wins)
	s.AvgLoss = meanProfit(losses)
	return s
}

// DirectionRow is one bar group of the direction chart. Zero stands in for
// missing values here; the chart draws absent data as zero-height bars.
type DirectionRow struct {
	Direction market.Direction
	N         int
	WinRate   float64
	AvgWin    float64
	AvgLoss   float64
}

// ByDirection breaks closed trades down by the direction actually taken.
// Rows come back in fixed long, short order.
func ByDirection(records []journal.TradeRecord) []DirectionRow {
	closed := closedTrades(records)

	return lo.Map([]market.Direction{market.Long, market.Short}, func(d market.Direction, _ int) DirectionRow {
		group := lo.Filter(closed, func(r journal.TradeRecord, _ int) bool {
			return r.TakenDirection() == d
		})
		wins := lo.Filter(group, func(r journal.TradeRecord, _ int) bool { return *r.Profit > 0 })
		losses := lo.Filter(group, func(r journal.TradeRecord, _ int) bool { return *r.Profit < 0 })

		row := DirectionRow{Direction: d, N: len(group)}
		if row.N > 0 {
			row.WinRate = float64(len(wins)) / float64(row.N) * 100
		}
		if v := meanProfit(wins); v != nil {
			row.AvgWin = *v
		}
		if v := meanProfit(losses); v != nil {
			row.AvgLoss = *v
		}
		return row
	})
}

// TimeframeRow is one bar of the per-timeframe win-rate chart.
type TimeframeRow struct {
	Timeframe string
	N         int
	WinRate   float64
}

// ByTimeframe buckets closed trades by timeframe label, in order of first
// appearance.
func ByTimeframe(records []journal.TradeRecord) []TimeframeRow {
	closed := closedTrades(records)

	var order []string
	wins := map[string]int{}
	counts := map[string]int{}
	for _, r := range closed {
		if _, seen := counts[r.Timeframe]; !seen {
			order = append(order, r.Timeframe)
		}
		counts[r.Timeframe]++
		if *r.Profit > 0 {
			wins[r.Timeframe]++
		}
	}

	return lo.Map(order, func(tf string, _ int) TimeframeRow {
		row := TimeframeRow{Timeframe: tf, N: counts[tf]}
		row.WinRate = float64(wins[tf]) / float64(row.N) * 100
		return row
	})
}

// CurvePoint is one step of the cumulative profit curve.
type CurvePoint struct {
	Time       time.Time
	Profit     float64
	Cumulative float64
}

// CumulativeCurve orders closed trades by exit time (entry time when the
// exit timestamp is missing) and accumulates their profits.
func CumulativeCurve(records []journal.TradeRecord) []CurvePoint {
	closed := closedTrades(records)
	sort.SliceStable(closed, func(i, j int) bool {
		return curveTime(closed[i]).Before(curveTime(closed[j]))
	})

	out := make([]CurvePoint, 0, len(closed))
	cum := 0.0
	for _, r := range closed {
		cum += *r.Profit
		out = append(out, CurvePoint{Time: curveTime(r), Profit: *r.Profit, Cumulative: cum})
	}
	return out
}

func curveTime(r journal.TradeRecord) time.Time {
	if r.ExitTime != nil {
		return *r.ExitTime
	}
	if r.EntryTime != nil {
		return *r.EntryTime
	}
	return r.CreatedAt
}

func closedTrades(records []journal.TradeRecord) []journal.TradeRecord {
	return lo.Filter(records, func(r journal.TradeRecord, _ int) bool {
		return r.HasResult && r.Profit != nil && !math.IsNaN(*r.Profit) && !math.IsInf(*r.Profit, 0)
	})
}

func meanProfit(group []journal.TradeRecord) *float64 {
	if len(group) == 0 {
		return nil
	}
	mean := lo.SumBy(group, func(r journal.TradeRecord) float64 { return *r.Profit }) / float64(len(group))
	return &mean
}
