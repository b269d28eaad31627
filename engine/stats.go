// engine/stats.go
package engine

import (
	"math"

	"github.com/samber/lo"

	"github.com/edgescope/edgescope/journal"
	"github.com/edgescope/edgescope/market"
)

// DirectionStats summarizes the pseudo-cases that ran in one direction.
// Nil fields mean "no data": no winners means no average win, an empty
// group means no win rate at all.
type DirectionStats struct {
	// N is the sample count. Break-even trades (profit exactly zero)
	// count here but in neither average.
	N int

	// WinRate is winners/N in percent, nil when N is zero.
	WinRate *float64

	// AvgWin and AvgLoss are the mean profits of the winning and losing
	// subsets (AvgLoss is negative), nil when the subset is empty.
	AvgWin  *float64
	AvgLoss *float64

	// ExpectedMove is the mean favorable price excursion: high minus
	// entry for longs, entry minus low for shorts, floored at zero.
	// Never computed for flat.
	ExpectedMove *float64

	// ExpectedValue is AvgWin plus AvgLoss with nil contributing zero:
	// a direction with only losses goes negative, one with only wins
	// stays cleanly positive.
	ExpectedValue float64
}

// StatsByDirection holds the summary for each of the three directions.
// The domain is closed, so this is a fixed struct rather than a map;
// every consumer can rely on all three being present.
type StatsByDirection struct {
	Long  DirectionStats
	Short DirectionStats
	Flat  DirectionStats
}

// For returns the stats bucket for d. Unknown directions read as flat.
func (s StatsByDirection) For(d market.Direction) DirectionStats {
	switch d {
	case market.Long:
		return s.Long
	case market.Short:
		return s.Short
	default:
		return s.Flat
	}
}

// Aggregate groups pseudo-cases by the direction actually taken (planned
// direction when no exit was recorded) and computes per-direction
// statistics.
func Aggregate(cases []journal.TradeRecord) StatsByDirection {
	return StatsByDirection{
		Long:  directionStats(market.Long, cases),
		Short: directionStats(market.Short, cases),
		Flat:  directionStats(market.Flat, cases),
	}
}

func directionStats(d market.Direction, cases []journal.TradeRecord) DirectionStats {
	group := lo.Filter(cases, func(r journal.TradeRecord, _ int) bool {
		return r.TakenDirection() == d
	})

	wins := lo.Filter(group, func(r journal.TradeRecord, _ int) bool {
		return r.Profit != nil && *r.Profit > 0
	})
	losses := lo.Filter(group, func(r journal.TradeRecord, _ int) bool {
		return r.Profit != nil && *r.Profit < 0
	})

	stats := DirectionStats{N: len(group)}
	if stats.N > 0 {
		wr := float64(len(wins)) / float64(stats.N) * 100
		stats.WinRate = &wr
	}
	stats.AvgWin = meanProfit(wins)
	stats.AvgLoss = meanProfit(losses)
	stats.ExpectedMove = expectedMove(d, group)
	stats.ExpectedValue = orZero(stats.AvgWin) + orZero(stats.AvgLoss)
	return stats
}

func meanProfit(group []journal.TradeRecord) *float64 {
	if len(group) == 0 {
		return nil
	}
	sum := lo.SumBy(group, func(r journal.TradeRecord) float64 {
		return orZero(r.Profit)
	})
	mean := sum / float64(len(group))
	return &mean
}

// expectedMove averages the favorable excursion of the group, in price
// units (no contract multiplier). Cases missing the excursion or entry
// price are skipped; flat has no favorable side and stays nil.
func expectedMove(d market.Direction, group []journal.TradeRecord) *float64 {
	var moves []float64
	switch d {
	case market.Long:
		moves = lo.FilterMap(group, func(r journal.TradeRecord, _ int) (float64, bool) {
			if !finite(r.HighDuringTrade) || !finite(r.EntryPrice) {
				return 0, false
			}
			return math.Max(0, *r.HighDuringTrade-*r.EntryPrice), true
		})
	case market.Short:
		moves = lo.FilterMap(group, func(r journal.TradeRecord, _ int) (float64, bool) {
			if !finite(r.LowDuringTrade) || !finite(r.EntryPrice) {
				return 0, false
			}
			return math.Max(0, *r.EntryPrice-*r.LowDuringTrade), true
		})
	default:
		return nil
	}

	if len(moves) == 0 {
		return nil
	}
	mean := lo.Sum(moves) / float64(len(moves))
	return &mean
}
