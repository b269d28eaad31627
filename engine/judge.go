// engine/judge.go
package engine

import (
	"math"

	"github.com/edgescope/edgescope/journal"
	"github.com/edgescope/edgescope/market"
)

// Judgment is the engine's recommendation for a candidate trade. Nil
// fields mean "unknown": downstream display shows them as not applicable.
type Judgment struct {
	Recommendation   market.Direction `json:"recommendation"`
	ExpectedMove     *float64         `json:"expectedMove"`
	ExpectedMoveUnit string           `json:"expectedMoveUnit"`
	Confidence       float64          `json:"confidence"`
	WinRate          *float64         `json:"winRate"`
	AvgWin           *float64         `json:"avgProfit"`
	AvgLoss          *float64         `json:"avgLoss"`
	PseudoCaseCount  int              `json:"pseudoCaseCount"`
	MinWinRate       float64          `json:"minWinRate"`
}

// Judge runs the full pipeline: select pseudo-cases from history,
// aggregate per direction, and pick a recommendation. A pure function of
// its inputs; it neither reads nor writes any store, and historical
// profits are consumed as recorded, never recomputed.
func Judge(records []journal.TradeRecord, c Candidate) Judgment {
	minWinRate := journal.DefaultMinWinRate
	if finite(c.MinWinRate) {
		minWinRate = *c.MinWinRate
	}

	pseudo := SelectPseudoCases(records, c)
	if len(pseudo) == 0 {
		return Judgment{
			Recommendation:   market.Flat,
			ExpectedMoveUnit: journal.DefaultExpectedMoveUnit,
			MinWinRate:       minWinRate,
		}
	}

	return Select(Aggregate(pseudo), len(pseudo), minWinRate)
}

// Select applies the selection and threshold policy to aggregated
// statistics. Only long and short with at least one sample are
// candidates; flat is a fallback, never a choice.
func Select(stats StatsByDirection, pseudoCaseCount int, minWinRate float64) Judgment {
	candidates := make([]market.Direction, 0, 2)
	for _, d := range []market.Direction{market.Long, market.Short} {
		if stats.For(d).N > 0 {
			candidates = append(candidates, d)
		}
	}

	if len(candidates) == 0 {
		return Judgment{
			Recommendation:   market.Flat,
			ExpectedMoveUnit: journal.DefaultExpectedMoveUnit,
			Confidence:       Confidence(nil, pseudoCaseCount),
			PseudoCaseCount:  pseudoCaseCount,
			MinWinRate:       minWinRate,
		}
	}

	best := candidates[0]
	for _, d := range candidates[1:] {
		if compareCandidates(stats.For(d), stats.For(best)) > 0 {
			best = d
		}
	}
	chosen := stats.For(best)

	recommendation := best
	winRate := chosen.WinRate
	expectedMove := chosen.ExpectedMove
	if winRate != nil && *winRate < minWinRate {
		// Threshold gate: the direction loses its recommendation and
		// its win rate. The expected move was computed for the pre-gate
		// direction and is discarded with it.
		recommendation = market.Flat
		winRate = nil
		expectedMove = nil
	}

	return Judgment{
		Recommendation:   recommendation,
		ExpectedMove:     expectedMove,
		ExpectedMoveUnit: journal.DefaultExpectedMoveUnit,
		Confidence:       Confidence(winRate, pseudoCaseCount),
		WinRate:          winRate,
		AvgWin:           chosen.AvgWin,
		AvgLoss:          chosen.AvgLoss,
		PseudoCaseCount:  pseudoCaseCount,
		MinWinRate:       minWinRate,
	}
}

// Snapshot freezes the judgment onto a record. This is the only place a
// judgment outlives the call that produced it; it is never recomputed
// retroactively.
func (j Judgment) Snapshot(r *journal.TradeRecord) {
	r.Recommendation = j.Recommendation
	r.ExpectedMove = j.ExpectedMove
	r.ExpectedMoveUnit = j.ExpectedMoveUnit
	conf := j.Confidence
	r.Confidence = &conf
	r.WinRate = j.WinRate
	r.AvgWin = j.AvgWin
	r.AvgLoss = j.AvgLoss
	count := j.PseudoCaseCount
	r.PseudoCaseCount = &count
	minWinRate := j.MinWinRate
	r.MinWinRate = &minWinRate
}

// compareCandidates is the ordered tie-break chain: expected value,
// then win rate, then sample count. Missing values always lose. Returns
// >0 when a is the better candidate, <0 when b is, 0 on a full tie.
func compareCandidates(a, b DirectionStats) int {
	if c := compareFloat(a.expectedValueOrWorst(), b.expectedValueOrWorst()); c != 0 {
		return c
	}
	if c := compareFloat(a.winRateOrWorst(), b.winRateOrWorst()); c != 0 {
		return c
	}
	return a.N - b.N
}

func (s DirectionStats) expectedValueOrWorst() float64 {
	if s.N == 0 {
		return math.Inf(-1)
	}
	return s.ExpectedValue
}

func (s DirectionStats) winRateOrWorst() float64 {
	if s.WinRate == nil {
		return math.Inf(-1)
	}
	return *s.WinRate
}

func compareFloat(a, b float64) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// Confidence blends the resolved win rate with sample abundance, weighted
// 70/30. The sample boost grows logarithmically, saturating around 15
// similar cases, so a big history helps but with diminishing returns.
// Always in [0, 100].
func Confidence(winRate *float64, pseudoCaseCount int) float64 {
	wr := 0.0
	if winRate != nil {
		wr = *winRate / 100
	}
	boost := clamp(math.Log10(float64(pseudoCaseCount)+1)/1.2, 0, 1)
	return clamp((wr*0.7+boost*0.3)*100, 0, 100)
}
