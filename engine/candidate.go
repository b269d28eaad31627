// engine/candidate.go
package engine

import (
	"time"

	"github.com/edgescope/edgescope/journal"
	"github.com/edgescope/edgescope/market"
)

// Candidate is a proposed trade submitted for judgment. It carries the
// same entry and fingerprint facets as a journaled record but has no
// outcome and is never persisted by the engine.
type Candidate struct {
	EntryTime         *time.Time
	Symbol            string
	Timeframe         string
	TradeType         string
	DirectionPlanned  market.Direction
	EntryPrice        *float64
	Size              *float64
	FeePerUnit        *float64
	PlannedStopPrice  *float64
	PlannedLimitPrice *float64
	CutLossPrice      *float64

	Fingerprint market.Fingerprint

	// MinWinRate overrides the judgment threshold; nil means the
	// journal default of 30.
	MinWinRate *float64
}

// CandidateFromRecord rebuilds the judgment input from a saved record,
// used when an entry is edited and re-judged.
func CandidateFromRecord(r journal.TradeRecord) Candidate {
	return Candidate{
		EntryTime:         r.EntryTime,
		Symbol:            r.Symbol,
		Timeframe:         r.Timeframe,
		TradeType:         r.TradeType,
		DirectionPlanned:  r.DirectionPlanned,
		EntryPrice:        r.EntryPrice,
		Size:              r.Size,
		FeePerUnit:        r.FeePerUnit,
		PlannedStopPrice:  r.PlannedStopPrice,
		PlannedLimitPrice: r.PlannedLimitPrice,
		CutLossPrice:      r.CutLossPrice,
		Fingerprint:       r.Fingerprint,
		MinWinRate:        r.MinWinRate,
	}
}
