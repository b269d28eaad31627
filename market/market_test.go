package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiplier(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10.0, Multiplier("nk225mc"))
	assert.Equal(t, 100.0, Multiplier("nk225m"))
	assert.Equal(t, 1000.0, Multiplier("nk225"))
	assert.Equal(t, 1.0, Multiplier("topix"))
	assert.Equal(t, 1.0, Multiplier(""))
}

func TestParseDirection(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Long, ParseDirection("long"))
	assert.Equal(t, Short, ParseDirection("short"))
	assert.Equal(t, Flat, ParseDirection("flat"))

	// legacy records without a direction default to long
	assert.Equal(t, Long, ParseDirection(""))
	assert.Equal(t, Long, ParseDirection("sideways"))
}

func TestFingerprintNormalizeDefaults(t *testing.T) {
	t.Parallel()

	var f Fingerprint
	f.Normalize()

	assert.Equal(t, PrevWaveHH, f.PrevWave)
	assert.Equal(t, TrendStage3, f.TrendStage)
	assert.Equal(t, PriceAboveEMA200, f.PriceVsEMA200)
	assert.Equal(t, BandNeutral, f.EMABandColor)
	assert.Equal(t, ZonePivot, f.VolatilityZone)
	assert.Equal(t, CMFNearZero, f.CMFSign)
	assert.Equal(t, SMAFlat, f.CMFSMADir)
	assert.Equal(t, MACDNeutral, f.MACDState)
	assert.Equal(t, ROCNearZero, f.ROCSign)
	assert.Equal(t, SMAFlat, f.ROCSMADir)
	assert.Equal(t, RSIAround50, f.RSIZone)
}

func TestFingerprintNormalizeKeepsUnknownValues(t *testing.T) {
	t.Parallel()

	f := Fingerprint{PrevWave: "double-top"}
	f.Normalize()

	// legacy free-form values survive; they just never match current input
	assert.Equal(t, PrevWave("double-top"), f.PrevWave)
	assert.Equal(t, TrendStage3, f.TrendStage)
}

func TestFingerprintFieldsOrder(t *testing.T) {
	t.Parallel()

	f := DefaultFingerprint()
	fields := f.Fields()

	assert.Len(t, fields, FingerprintFields)
	assert.Equal(t, "HH", fields[0])
	assert.Equal(t, "around50", fields[10])
}
