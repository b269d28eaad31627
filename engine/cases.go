// engine/cases.go
package engine

import (
	"sort"

	"github.com/samber/lo"

	"github.com/edgescope/edgescope/journal"
)

// SimilarityThreshold is the minimum fingerprint similarity for a closed
// trade to count as a pseudo-case. At eleven fields this keeps records
// differing in at most three of them.
const SimilarityThreshold = 0.70

// SelectPseudoCases picks the historical records a judgment is based on:
// closed trades of the same symbol and timeframe with a finite recorded
// profit, scored against the candidate's fingerprint and kept when the
// similarity reaches the threshold. The result is ordered by descending
// similarity; ties keep the input order.
func SelectPseudoCases(records []journal.TradeRecord, c Candidate) []journal.TradeRecord {
	eligible := lo.Filter(records, func(r journal.TradeRecord, _ int) bool {
		return r.HasResult &&
			r.Symbol == c.Symbol &&
			r.Timeframe == c.Timeframe &&
			finite(r.Profit)
	})

	type scored struct {
		rec   journal.TradeRecord
		score float64
	}
	ranked := lo.Map(eligible, func(r journal.TradeRecord, _ int) scored {
		return scored{rec: r, score: Similarity(r.Fingerprint, c.Fingerprint)}
	})
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	kept := lo.Filter(ranked, func(s scored, _ int) bool {
		return s.score >= SimilarityThreshold
	})
	return lo.Map(kept, func(s scored, _ int) journal.TradeRecord {
		return s.rec
	})
}
