package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edgescope/edgescope/journal"
	"github.com/edgescope/edgescope/market"
)

func TestAggregateWinRateAndAverages(t *testing.T) {
	t.Parallel()

	cases := []journal.TradeRecord{
		pseudoCase(market.Long, 100),
		pseudoCase(market.Long, 300),
		pseudoCase(market.Long, -50),
		pseudoCase(market.Long, 0), // break-even: in N, in neither average
		pseudoCase(market.Short, -200),
	}

	stats := Aggregate(cases)

	assert.Equal(t, 4, stats.Long.N)
	assert.NotNil(t, stats.Long.WinRate)
	assert.InDelta(t, 50, *stats.Long.WinRate, 1e-9)
	assert.NotNil(t, stats.Long.AvgWin)
	assert.InDelta(t, 200, *stats.Long.AvgWin, 1e-9)
	assert.NotNil(t, stats.Long.AvgLoss)
	assert.InDelta(t, -50, *stats.Long.AvgLoss, 1e-9)
	assert.InDelta(t, 150, stats.Long.ExpectedValue, 1e-9)

	assert.Equal(t, 1, stats.Short.N)
	assert.NotNil(t, stats.Short.WinRate)
	assert.Zero(t, *stats.Short.WinRate)
	assert.Nil(t, stats.Short.AvgWin)
	assert.NotNil(t, stats.Short.AvgLoss)
	assert.InDelta(t, -200, *stats.Short.AvgLoss, 1e-9)
	// only losses: expected value goes negative
	assert.InDelta(t, -200, stats.Short.ExpectedValue, 1e-9)

	assert.Zero(t, stats.Flat.N)
	assert.Nil(t, stats.Flat.WinRate)
	assert.Nil(t, stats.Flat.ExpectedMove)
}

func TestAggregateGroupsByTakenDirection(t *testing.T) {
	t.Parallel()

	// planned long but actually ran short
	flipped := pseudoCase(market.Long, 80)
	flipped.DirectionTaken = market.Short

	// no exit direction recorded: falls back to planned
	fallback := pseudoCase(market.Short, -40)
	fallback.DirectionTaken = ""

	stats := Aggregate([]journal.TradeRecord{flipped, fallback})

	assert.Zero(t, stats.Long.N)
	assert.Equal(t, 2, stats.Short.N)
}

func TestAggregateExpectedMoveLong(t *testing.T) {
	t.Parallel()

	a := pseudoCase(market.Long, 100)
	a.EntryPrice = fp(38000)
	a.HighDuringTrade = fp(38150)

	b := pseudoCase(market.Long, 50)
	b.EntryPrice = fp(38000)
	b.HighDuringTrade = fp(37950) // adverse-only trade floors at 0

	c := pseudoCase(market.Long, -30)
	c.HighDuringTrade = nil // skipped entirely

	stats := Aggregate([]journal.TradeRecord{a, b, c})

	assert.NotNil(t, stats.Long.ExpectedMove)
	assert.InDelta(t, 75, *stats.Long.ExpectedMove, 1e-9) // (150 + 0) / 2
}

func TestAggregateExpectedMoveShort(t *testing.T) {
	t.Parallel()

	a := pseudoCase(market.Short, 100)
	a.EntryPrice = fp(38000)
	a.LowDuringTrade = fp(37900)

	b := pseudoCase(market.Short, 60)
	b.EntryPrice = fp(38000)
	b.LowDuringTrade = fp(37700)

	stats := Aggregate([]journal.TradeRecord{a, b})

	assert.NotNil(t, stats.Short.ExpectedMove)
	assert.InDelta(t, 200, *stats.Short.ExpectedMove, 1e-9) // (100 + 300) / 2
	assert.Nil(t, stats.Long.ExpectedMove)
}

func TestAggregateEmpty(t *testing.T) {
	t.Parallel()

	stats := Aggregate(nil)

	for _, d := range []market.Direction{market.Long, market.Short, market.Flat} {
		s := stats.For(d)
		assert.Zero(t, s.N)
		assert.Nil(t, s.WinRate)
		assert.Nil(t, s.AvgWin)
		assert.Nil(t, s.AvgLoss)
		assert.Nil(t, s.ExpectedMove)
		assert.Zero(t, s.ExpectedValue)
	}
}
