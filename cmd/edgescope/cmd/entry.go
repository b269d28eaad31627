package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/edgescope/edgescope/engine"
	"github.com/edgescope/edgescope/journal"
	"github.com/edgescope/edgescope/market"
)

var entryCmd = &cobra.Command{
	Use:   "entry",
	Short: "Record or edit a planned entry",
	Long: `Record a planned entry together with the market fingerprint observed
at entry time. Saving an entry runs the judgment engine against the
journal and freezes the resulting judgment onto the record.

Examples:
  edgescope entry add --time 2025-06-02T09:15 --price 38500 --size 2 --fee 20 \
      --direction short --prev-wave LH --trend-stage Stage5 --macd bearish
  edgescope entry edit 01JD... --cut-loss 38800 --memo "CPI week"`,
}

var entryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Record a new planned entry (judged on save)",
	Args:  cobra.NoArgs,
	RunE:  runEntryAdd,
}

var entryEditCmd = &cobra.Command{
	Use:   "edit <trade-id>",
	Short: "Edit a planned entry and re-judge it",
	Args:  cobra.ExactArgs(1),
	RunE:  runEntryEdit,
}

// setupFlags are the entry-facet and fingerprint flags shared by
// entry add, entry edit and judge. Each command owns its own instance;
// apply copies only the flags the user actually set.
type setupFlags struct {
	entryTime  string
	symbol     string
	timeframe  string
	tradeType  string
	direction  string
	price      float64
	size       float64
	fee        float64
	stop       float64
	limit      float64
	cutLoss    float64
	minWinRate float64
	marketMemo string
	notionURL  string

	prevWave   string
	trendStage string
	vsEMA200   string
	bandColor  string
	zone       string
	cmfSign    string
	cmfSMADir  string
	macdState  string
	rocSign    string
	rocSMADir  string
	rsiZone    string
}

func (f *setupFlags) register(cmd *cobra.Command) {
	fl := cmd.Flags()

	fl.StringVar(&f.entryTime, "time", "", "entry time (YYYY-MM-DDTHH:MM, local)")
	fl.StringVar(&f.symbol, "symbol", "", "instrument symbol (nk225, nk225m, nk225mc)")
	fl.StringVar(&f.timeframe, "timeframe", "", "chart timeframe label")
	fl.StringVar(&f.tradeType, "type", "", "trade type (real or sim)")
	fl.StringVar(&f.direction, "direction", "", "planned direction (long or short)")
	fl.Float64Var(&f.price, "price", 0, "entry price")
	fl.Float64Var(&f.size, "size", 0, "position size in contracts")
	fl.Float64Var(&f.fee, "fee", 0, "fee per contract")
	fl.Float64Var(&f.stop, "stop", 0, "planned stop price")
	fl.Float64Var(&f.limit, "limit", 0, "planned limit price")
	fl.Float64Var(&f.cutLoss, "cut-loss", 0, "hard cut-loss price")
	fl.Float64Var(&f.minWinRate, "min-win-rate", 0, "judgment win-rate threshold in percent")
	fl.StringVar(&f.marketMemo, "memo", "", "market memo")
	fl.StringVar(&f.notionURL, "notion", "", "link to the Notion page for this trade")

	fl.StringVar(&f.prevWave, "prev-wave", "", "previous wave shape (HH, HL, LH, LL)")
	fl.StringVar(&f.trendStage, "trend-stage", "", "5/20/40 EMA stage (Stage1..Stage6)")
	fl.StringVar(&f.vsEMA200, "vs-ema200", "", "price vs 200 EMA (above, near, below)")
	fl.StringVar(&f.bandColor, "band", "", "EMA band color (bullish, neutral, bearish)")
	fl.StringVar(&f.zone, "zone", "", "volatility zone (squeeze, pivot, expansion)")
	fl.StringVar(&f.cmfSign, "cmf", "", "CMF sign (positive, near_zero, negative)")
	fl.StringVar(&f.cmfSMADir, "cmf-sma", "", "CMF SMA slope (rising, flat, falling)")
	fl.StringVar(&f.macdState, "macd", "", "MACD state (bullish, neutral, bearish)")
	fl.StringVar(&f.rocSign, "roc", "", "ROC sign (positive, near_zero, negative)")
	fl.StringVar(&f.rocSMADir, "roc-sma", "", "ROC SMA slope (rising, flat, falling)")
	fl.StringVar(&f.rsiZone, "rsi", "", "RSI zone (overbought, above50, around50, below50, oversold)")
}

// apply copies the flags the user set onto the record, leaving everything
// else untouched.
func (f *setupFlags) apply(cmd *cobra.Command, rec *journal.TradeRecord) error {
	fl := cmd.Flags()
	set := func(name string, fn func()) {
		if fl.Changed(name) {
			fn()
		}
	}

	if fl.Changed("time") {
		t, err := parseFlagTime(f.entryTime)
		if err != nil {
			return err
		}
		rec.EntryTime = &t
	}
	if fl.Changed("symbol") {
		if _, ok := market.Instruments[f.symbol]; !ok {
			return fmt.Errorf("unknown instrument: %s", f.symbol)
		}
		rec.Symbol = f.symbol
	}
	set("timeframe", func() { rec.Timeframe = f.timeframe })
	if fl.Changed("type") {
		if f.tradeType != journal.TradeTypeReal && f.tradeType != journal.TradeTypeSim {
			return fmt.Errorf("trade type must be %q or %q", journal.TradeTypeReal, journal.TradeTypeSim)
		}
		rec.TradeType = f.tradeType
	}
	set("direction", func() { rec.DirectionPlanned = market.ParseDirection(f.direction) })
	set("price", func() { v := f.price; rec.EntryPrice = &v })
	set("size", func() { v := f.size; rec.Size = &v })
	set("fee", func() { v := f.fee; rec.FeePerUnit = &v })
	set("stop", func() { v := f.stop; rec.PlannedStopPrice = &v })
	set("limit", func() { v := f.limit; rec.PlannedLimitPrice = &v })
	set("cut-loss", func() { v := f.cutLoss; rec.CutLossPrice = &v })
	if fl.Changed("min-win-rate") {
		if f.minWinRate < 0 || f.minWinRate > 100 {
			return fmt.Errorf("min-win-rate must be between 0 and 100")
		}
		v := f.minWinRate
		rec.MinWinRate = &v
	}
	set("memo", func() { rec.MarketMemo = f.marketMemo })
	set("notion", func() { rec.NotionURL = f.notionURL })

	set("prev-wave", func() { rec.PrevWave = market.PrevWave(f.prevWave) })
	set("trend-stage", func() { rec.TrendStage = market.TrendStage(f.trendStage) })
	set("vs-ema200", func() { rec.PriceVsEMA200 = market.PriceVsEMA200(f.vsEMA200) })
	set("band", func() { rec.EMABandColor = market.EMABandColor(f.bandColor) })
	set("zone", func() { rec.VolatilityZone = market.VolatilityZone(f.zone) })
	set("cmf", func() { rec.CMFSign = market.CMFSign(f.cmfSign) })
	set("cmf-sma", func() { rec.CMFSMADir = market.SMADir(f.cmfSMADir) })
	set("macd", func() { rec.MACDState = market.MACDState(f.macdState) })
	set("roc", func() { rec.ROCSign = market.ROCSign(f.rocSign) })
	set("roc-sma", func() { rec.ROCSMADir = market.SMADir(f.rocSMADir) })
	set("rsi", func() { rec.RSIZone = market.RSIZone(f.rsiZone) })

	return nil
}

// parseFlagTime accepts RFC 3339 or the short local form the journal has
// always used on its entry form.
func parseFlagTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation("2006-01-02T15:04", s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad time %q (want YYYY-MM-DDTHH:MM)", s)
	}
	return t, nil
}

var (
	entryAddFlags  setupFlags
	entryEditFlags setupFlags
)

func init() {
	rootCmd.AddCommand(entryCmd)
	entryCmd.AddCommand(entryAddCmd)
	entryCmd.AddCommand(entryEditCmd)

	entryAddFlags.register(entryAddCmd)
	entryAddCmd.MarkFlagRequired("time")
	entryAddCmd.MarkFlagRequired("price")
	entryAddCmd.MarkFlagRequired("size")
	entryAddCmd.MarkFlagRequired("fee")

	entryEditFlags.register(entryEditCmd)
}

func runEntryAdd(cmd *cobra.Command, args []string) error {
	j, cfg, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	var rec journal.TradeRecord
	rec.Symbol = cfg.Entry.Symbol
	rec.Timeframe = cfg.Entry.Timeframe
	rec.TradeType = cfg.Entry.TradeType
	rec.DirectionPlanned = market.ParseDirection(cfg.Entry.Direction)
	mwr := cfg.Entry.MinWinRate
	rec.MinWinRate = &mwr

	if err := entryAddFlags.apply(cmd, &rec); err != nil {
		return err
	}
	rec.Normalize()

	history, err := j.ListTrades()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	judgment := engine.Judge(history, engine.CandidateFromRecord(rec))
	judgment.Snapshot(&rec)

	if err := j.SaveTrade(rec); err != nil {
		return fmt.Errorf("save trade: %w", err)
	}

	fmt.Println(renderJudgment(rec.Symbol, judgment))
	fmt.Printf("✓ Entry %s saved\n", rec.ID)
	return nil
}

func runEntryEdit(cmd *cobra.Command, args []string) error {
	j, _, err := openJournal()
	if err != nil {
		return err
	}
	defer j.Close()

	rec, err := j.GetTrade(args[0])
	if err != nil {
		return fmt.Errorf("get trade: %w", err)
	}

	if err := entryEditFlags.apply(cmd, &rec); err != nil {
		return err
	}
	rec.Normalize()

	history, err := j.ListTrades()
	if err != nil {
		return fmt.Errorf("list trades: %w", err)
	}

	judgment := engine.Judge(history, engine.CandidateFromRecord(rec))
	judgment.Snapshot(&rec)

	if err := j.SaveTrade(rec); err != nil {
		return fmt.Errorf("save trade: %w", err)
	}

	fmt.Println(renderJudgment(rec.Symbol, judgment))
	fmt.Printf("✓ Entry %s updated\n", rec.ID)
	return nil
}
