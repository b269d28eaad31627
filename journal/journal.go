// journal/journal.go
package journal

import (
	"time"

	"github.com/edgescope/edgescope/market"
	"github.com/edgescope/edgescope/pkg/id"
)

// Journal entry defaults, kept identical to the values older versions of
// the journal assumed when a field was missing.
const (
	DefaultSymbol           = "nk225mc"
	DefaultTimeframe        = "1時間"
	DefaultMinWinRate       = 30.0
	DefaultExpectedMoveUnit = "円"
)

// Trade types. "real" is an actual order, "sim" is a paper trade.
const (
	TradeTypeReal = "real"
	TradeTypeSim  = "sim"
)

// TradeRecord is one journaled trade: the planned entry, the market
// fingerprint observed at entry time, the judgment snapshot frozen when the
// entry was saved, and (once recorded) the actual outcome.
//
// Nullable numerics are pointers: nil means the user never supplied the
// value, which is distinct from zero. JSON keys match the journal's
// historical export format so old backups round-trip unchanged.
type TradeRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// Entry facet.
	EntryTime         *time.Time       `json:"datetimeEntry"`
	Symbol            string           `json:"symbol"`
	Timeframe         string           `json:"timeframe"`
	TradeType         string           `json:"tradeType"`
	DirectionPlanned  market.Direction `json:"directionPlanned"`
	EntryPrice        *float64         `json:"entryPrice"`
	Size              *float64         `json:"size"`
	FeePerUnit        *float64         `json:"feePerUnit"`
	PlannedStopPrice  *float64         `json:"plannedStopPrice"`
	PlannedLimitPrice *float64         `json:"plannedLimitPrice"`
	CutLossPrice      *float64         `json:"cutLossPrice"`

	// Market fingerprint facet.
	market.Fingerprint

	// Judgment threshold: minimum acceptable win rate in percent.
	MinWinRate *float64 `json:"minWinRate"`

	MarketMemo string `json:"marketMemo"`
	NotionURL  string `json:"notionUrl"`

	// Judgment snapshot facet, frozen at entry-save time and never
	// recomputed retroactively.
	Recommendation   market.Direction `json:"recommendation,omitempty"`
	ExpectedMove     *float64         `json:"expectedMove"`
	ExpectedMoveUnit string           `json:"expectedMoveUnit"`
	Confidence       *float64         `json:"confidence"`
	WinRate          *float64         `json:"winRate"`
	AvgWin           *float64         `json:"avgProfit"`
	AvgLoss          *float64         `json:"avgLoss"`
	PseudoCaseCount  *int             `json:"pseudoCaseCount"`

	// Outcome facet.
	HasResult       bool             `json:"hasResult"`
	ExitTime        *time.Time       `json:"datetimeExit"`
	ExitPrice       *float64         `json:"exitPrice"`
	DirectionTaken  market.Direction `json:"directionTaken"`
	HighDuringTrade *float64         `json:"highDuringTrade"`
	LowDuringTrade  *float64         `json:"lowDuringTrade"`
	Profit          *float64         `json:"profit"`
	ResultMemo      string           `json:"resultMemo"`
}

// Normalize fills defaults on a record loaded from an older backup or
// built from partial input. It is the Go counterpart of the original
// journal's record migration: identity and createdAt are assigned once and
// never changed afterwards.
func (r *TradeRecord) Normalize() {
	if r.ID == "" {
		r.ID = id.New()
	}
	now := time.Now().UTC()
	if r.CreatedAt.IsZero() {
		r.CreatedAt = now
	}
	if r.UpdatedAt.IsZero() {
		r.UpdatedAt = r.CreatedAt
	}

	if r.Symbol == "" {
		r.Symbol = DefaultSymbol
	}
	if r.Timeframe == "" {
		r.Timeframe = DefaultTimeframe
	}
	if r.TradeType == "" {
		r.TradeType = TradeTypeReal
	}
	r.DirectionPlanned = market.ParseDirection(string(r.DirectionPlanned))

	r.Fingerprint.Normalize()

	if r.MinWinRate == nil {
		mwr := DefaultMinWinRate
		r.MinWinRate = &mwr
	}
	if r.ExpectedMoveUnit == "" {
		r.ExpectedMoveUnit = DefaultExpectedMoveUnit
	}

	if r.DirectionTaken == "" {
		r.DirectionTaken = r.DirectionPlanned
	}

	// hasResult holds only while both exit facts exist.
	if r.ExitTime == nil || r.ExitPrice == nil {
		r.HasResult = false
	}
}

// TakenDirection is the direction the trade actually ran, falling back to
// the planned direction when no exit was recorded yet.
func (r *TradeRecord) TakenDirection() market.Direction {
	if r.DirectionTaken.Valid() {
		return r.DirectionTaken
	}
	return r.DirectionPlanned
}

// Journal is the persisted record store. The judgment engine never touches
// it directly; callers load a snapshot and hand the slice over.
type Journal interface {
	SaveTrade(TradeRecord) error
	RestoreTrade(TradeRecord) error
	GetTrade(id string) (TradeRecord, error)
	ListTrades() ([]TradeRecord, error)
	DeleteTrade(id string) error
	Close() error
}
