package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/edgescope/edgescope/market"
)

func TestSimilarityIdentical(t *testing.T) {
	t.Parallel()

	f := market.DefaultFingerprint()
	assert.Equal(t, 1.0, Similarity(f, f))
}

func TestSimilaritySymmetric(t *testing.T) {
	t.Parallel()

	a := market.DefaultFingerprint()
	b := a
	b.PrevWave = market.PrevWaveLL
	b.RSIZone = market.RSIOverbought

	assert.Equal(t, Similarity(a, b), Similarity(b, a))
	assert.InDelta(t, 9.0/11.0, Similarity(a, b), 1e-9)
}

func TestSimilaritySingleFieldMismatch(t *testing.T) {
	t.Parallel()

	a := market.DefaultFingerprint()
	b := a
	b.MACDState = market.MACDBearish

	assert.InDelta(t, 10.0/11.0, Similarity(a, b), 1e-9)
}

func TestSimilarityAbsentMatchesAbsent(t *testing.T) {
	t.Parallel()

	// two fully-absent fingerprints agree on every field
	var a, b market.Fingerprint
	assert.Equal(t, 1.0, Similarity(a, b))

	// absent never matches a present value
	b.PrevWave = market.PrevWaveHH
	assert.InDelta(t, 10.0/11.0, Similarity(a, b), 1e-9)
}

func TestSimilarityBounds(t *testing.T) {
	t.Parallel()

	a := market.Fingerprint{
		PrevWave:       market.PrevWaveLL,
		TrendStage:     market.TrendStage6,
		PriceVsEMA200:  market.PriceBelowEMA200,
		EMABandColor:   market.BandBearish,
		VolatilityZone: market.ZoneExpansion,
		CMFSign:        market.CMFNegative,
		CMFSMADir:      market.SMAFalling,
		MACDState:      market.MACDBearish,
		ROCSign:        market.ROCNegative,
		ROCSMADir:      market.SMAFalling,
		RSIZone:        market.RSIOversold,
	}
	b := market.DefaultFingerprint()

	got := Similarity(a, b)
	assert.GreaterOrEqual(t, got, 0.0)
	assert.LessOrEqual(t, got, 1.0)
	assert.Zero(t, got)
}
