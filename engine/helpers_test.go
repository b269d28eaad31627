package engine

import (
	"time"

	"github.com/edgescope/edgescope/journal"
	"github.com/edgescope/edgescope/market"
)

func fp(v float64) *float64 { return &v }

// pseudoCase builds a closed trade that fully matches the default
// candidate fingerprint on symbol nk225mc / 1時間.
func pseudoCase(dir market.Direction, profit float64) journal.TradeRecord {
	exit := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rec := journal.TradeRecord{
		Symbol:           "nk225mc",
		Timeframe:        "1時間",
		DirectionPlanned: dir,
		DirectionTaken:   dir,
		HasResult:        true,
		ExitTime:         &exit,
		ExitPrice:        fp(38100),
		EntryPrice:       fp(38000),
		Profit:           fp(profit),
	}
	rec.Normalize()
	return rec
}

// defaultCandidate matches the fingerprint produced by pseudoCase.
func defaultCandidate() Candidate {
	return Candidate{
		Symbol:      "nk225mc",
		Timeframe:   "1時間",
		Fingerprint: market.DefaultFingerprint(),
	}
}
