package journal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/edgescope/edgescope/market"
)

func fp(v float64) *float64 { return &v }

func tp(t time.Time) *time.Time { return &t }

func TestNormalizeFillsDefaults(t *testing.T) {
	t.Parallel()

	var rec TradeRecord
	rec.Normalize()

	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())
	assert.Equal(t, rec.CreatedAt, rec.UpdatedAt)

	assert.Equal(t, DefaultSymbol, rec.Symbol)
	assert.Equal(t, DefaultTimeframe, rec.Timeframe)
	assert.Equal(t, TradeTypeReal, rec.TradeType)
	assert.Equal(t, market.Long, rec.DirectionPlanned)
	assert.Equal(t, market.Long, rec.DirectionTaken)

	assert.Equal(t, market.PrevWaveHH, rec.PrevWave)
	assert.Equal(t, market.TrendStage3, rec.TrendStage)

	assert.NotNil(t, rec.MinWinRate)
	assert.InDelta(t, DefaultMinWinRate, *rec.MinWinRate, 1e-9)
	assert.Equal(t, DefaultExpectedMoveUnit, rec.ExpectedMoveUnit)
	assert.False(t, rec.HasResult)
}

func TestNormalizeKeepsIdentity(t *testing.T) {
	t.Parallel()

	created := time.Date(2024, 12, 1, 9, 0, 0, 0, time.UTC)
	rec := TradeRecord{ID: "01JD0000000000000000000000", CreatedAt: created}
	rec.Normalize()

	assert.Equal(t, "01JD0000000000000000000000", rec.ID)
	assert.Equal(t, created, rec.CreatedAt)
}

func TestNormalizeExplicitZeroThresholdSurvives(t *testing.T) {
	t.Parallel()

	rec := TradeRecord{MinWinRate: fp(0)}
	rec.Normalize()

	assert.NotNil(t, rec.MinWinRate)
	assert.Zero(t, *rec.MinWinRate)
}

func TestNormalizeHasResultInvariant(t *testing.T) {
	t.Parallel()

	exit := time.Date(2025, 1, 10, 15, 0, 0, 0, time.UTC)

	// claimed result without exit facts is cleared
	rec := TradeRecord{HasResult: true}
	rec.Normalize()
	assert.False(t, rec.HasResult)

	rec = TradeRecord{HasResult: true, ExitTime: tp(exit)}
	rec.Normalize()
	assert.False(t, rec.HasResult)

	rec = TradeRecord{HasResult: true, ExitTime: tp(exit), ExitPrice: fp(38500)}
	rec.Normalize()
	assert.True(t, rec.HasResult)
}

func TestTakenDirectionFallsBackToPlanned(t *testing.T) {
	t.Parallel()

	rec := TradeRecord{DirectionPlanned: market.Short}
	assert.Equal(t, market.Short, rec.TakenDirection())

	rec.DirectionTaken = market.Long
	assert.Equal(t, market.Long, rec.TakenDirection())
}
