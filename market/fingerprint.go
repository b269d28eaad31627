// market/fingerprint.go
package market

// The market fingerprint is the set of categorical indicator readings taken
// at trade entry. Each field is a closed enumeration with an explicit
// default; records written by older versions of the journal may be missing
// fields, and Normalize fills those with the defaults so that similarity
// scoring treats legacy and current records alike.

// PrevWave classifies the shape of the swing leading into the entry.
type PrevWave string

const (
	PrevWaveHH PrevWave = "HH" // higher high
	PrevWaveHL PrevWave = "HL" // higher low
	PrevWaveLH PrevWave = "LH" // lower high
	PrevWaveLL PrevWave = "LL" // lower low
)

// TrendStage is the 5/20/40 EMA alignment stage (classic six-stage model).
type TrendStage string

const (
	TrendStage1 TrendStage = "Stage1"
	TrendStage2 TrendStage = "Stage2"
	TrendStage3 TrendStage = "Stage3"
	TrendStage4 TrendStage = "Stage4"
	TrendStage5 TrendStage = "Stage5"
	TrendStage6 TrendStage = "Stage6"
)

// PriceVsEMA200 relates the current price to the 200-period EMA.
type PriceVsEMA200 string

const (
	PriceAboveEMA200 PriceVsEMA200 = "above"
	PriceNearEMA200  PriceVsEMA200 = "near"
	PriceBelowEMA200 PriceVsEMA200 = "below"
)

// EMABandColor is the color of the EMA ribbon.
type EMABandColor string

const (
	BandBullish EMABandColor = "bullish"
	BandNeutral EMABandColor = "neutral"
	BandBearish EMABandColor = "bearish"
)

// VolatilityZone is the ATR-based volatility regime.
type VolatilityZone string

const (
	ZoneSqueeze   VolatilityZone = "squeeze"
	ZonePivot     VolatilityZone = "pivot"
	ZoneExpansion VolatilityZone = "expansion"
)

// CMFSign is the sign of the Chaikin Money Flow reading.
type CMFSign string

const (
	CMFPositive CMFSign = "positive"
	CMFNearZero CMFSign = "near_zero"
	CMFNegative CMFSign = "negative"
)

// SMADir is the slope of a short moving average over an indicator
// (shared by the CMF and ROC smoothings).
type SMADir string

const (
	SMARising  SMADir = "rising"
	SMAFlat    SMADir = "flat"
	SMAFalling SMADir = "falling"
)

// MACDState summarizes the MACD line relative to its signal.
type MACDState string

const (
	MACDBullish MACDState = "bullish"
	MACDNeutral MACDState = "neutral"
	MACDBearish MACDState = "bearish"
)

// ROCSign is the sign of the rate-of-change reading.
type ROCSign string

const (
	ROCPositive ROCSign = "positive"
	ROCNearZero ROCSign = "near_zero"
	ROCNegative ROCSign = "negative"
)

// RSIZone buckets the RSI reading.
type RSIZone string

const (
	RSIOverbought RSIZone = "overbought"
	RSIAbove50    RSIZone = "above50"
	RSIAround50   RSIZone = "around50"
	RSIBelow50    RSIZone = "below50"
	RSIOversold   RSIZone = "oversold"
)

// Per-field defaults. These are load-bearing: a legacy record missing a
// field is treated as carrying the default, and that value participates
// in similarity scoring.
const (
	DefaultPrevWave       = PrevWaveHH
	DefaultTrendStage     = TrendStage3
	DefaultPriceVsEMA200  = PriceAboveEMA200
	DefaultEMABandColor   = BandNeutral
	DefaultVolatilityZone = ZonePivot
	DefaultCMFSign        = CMFNearZero
	DefaultCMFSMADir      = SMAFlat
	DefaultMACDState      = MACDNeutral
	DefaultROCSign        = ROCNearZero
	DefaultROCSMADir      = SMAFlat
	DefaultRSIZone        = RSIAround50
)

// FingerprintFields is the number of categorical fields compared by the
// similarity scorer.
const FingerprintFields = 11

// Fingerprint holds the eleven indicator readings describing market
// conditions at entry. JSON keys match the journal's historical storage
// format so old exports round-trip unchanged.
type Fingerprint struct {
	PrevWave       PrevWave       `json:"prevWave"`
	TrendStage     TrendStage     `json:"trend_5_20_40"`
	PriceVsEMA200  PriceVsEMA200  `json:"price_vs_ema200"`
	EMABandColor   EMABandColor   `json:"ema_band_color"`
	VolatilityZone VolatilityZone `json:"zone"`
	CMFSign        CMFSign        `json:"cmf_sign"`
	CMFSMADir      SMADir         `json:"cmf_sma_dir"`
	MACDState      MACDState      `json:"macd_state"`
	ROCSign        ROCSign        `json:"roc_sign"`
	ROCSMADir      SMADir         `json:"roc_sma_dir"`
	RSIZone        RSIZone        `json:"rsi_zone"`
}

// DefaultFingerprint returns a fingerprint with every field at its default.
func DefaultFingerprint() Fingerprint {
	var f Fingerprint
	f.Normalize()
	return f
}

// Normalize fills empty fields with their defaults. Unknown non-empty
// values are preserved: they simply never match a current candidate.
func (f *Fingerprint) Normalize() {
	if f.PrevWave == "" {
		f.PrevWave = DefaultPrevWave
	}
	if f.TrendStage == "" {
		f.TrendStage = DefaultTrendStage
	}
	if f.PriceVsEMA200 == "" {
		f.PriceVsEMA200 = DefaultPriceVsEMA200
	}
	if f.EMABandColor == "" {
		f.EMABandColor = DefaultEMABandColor
	}
	if f.VolatilityZone == "" {
		f.VolatilityZone = DefaultVolatilityZone
	}
	if f.CMFSign == "" {
		f.CMFSign = DefaultCMFSign
	}
	if f.CMFSMADir == "" {
		f.CMFSMADir = DefaultCMFSMADir
	}
	if f.MACDState == "" {
		f.MACDState = DefaultMACDState
	}
	if f.ROCSign == "" {
		f.ROCSign = DefaultROCSign
	}
	if f.ROCSMADir == "" {
		f.ROCSMADir = DefaultROCSMADir
	}
	if f.RSIZone == "" {
		f.RSIZone = DefaultRSIZone
	}
}

// Fields flattens the fingerprint into its comparable values, in the fixed
// order used by the similarity scorer. An empty string is a legitimate
// "absent" category and matches another absent value.
func (f Fingerprint) Fields() [FingerprintFields]string {
	return [FingerprintFields]string{
		string(f.PrevWave),
		string(f.TrendStage),
		string(f.PriceVsEMA200),
		string(f.EMABandColor),
		string(f.VolatilityZone),
		string(f.CMFSign),
		string(f.CMFSMADir),
		string(f.MACDState),
		string(f.ROCSign),
		string(f.ROCSMADir),
		string(f.RSIZone),
	}
}
