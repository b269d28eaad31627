// journal/csv.go
package journal

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/edgescope/edgescope/market"
)

// CSVColumns is the flat export layout. Order and names are part of the
// backup format and must not change: old exports import against them.
var CSVColumns = []string{
	"id", "createdAt", "updatedAt",
	"datetimeEntry", "symbol", "timeframe", "tradeType", "directionPlanned",
	"entryPrice", "size", "feePerUnit", "plannedStopPrice", "plannedLimitPrice", "cutLossPrice",
	"prevWave", "trend_5_20_40", "price_vs_ema200", "ema_band_color", "zone",
	"cmf_sign", "cmf_sma_dir", "macd_state", "roc_sign", "roc_sma_dir", "rsi_zone",
	"minWinRate",
	"recommendation", "expectedMove", "expectedMoveUnit", "confidence", "winRate", "avgProfit", "avgLoss", "pseudoCaseCount",
	"hasResult", "datetimeExit", "exitPrice", "highDuringTrade", "lowDuringTrade", "profit",
	"marketMemo", "notionUrl", "resultMemo",
}

// ExportCSV writes all records as one flat CSV table. Missing values are
// empty cells.
func ExportCSV(w io.Writer, records []TradeRecord) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVColumns); err != nil {
		return err
	}
	for i := range records {
		rec := records[i]
		rec.Normalize()
		if err := cw.Write(csvRow(rec)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func csvRow(r TradeRecord) []string {
	fields := r.Fields()
	return []string{
		r.ID, csvTime(&r.CreatedAt), csvTime(&r.UpdatedAt),
		csvTime(r.EntryTime), r.Symbol, r.Timeframe, r.TradeType, string(r.DirectionPlanned),
		csvFloat(r.EntryPrice), csvFloat(r.Size), csvFloat(r.FeePerUnit),
		csvFloat(r.PlannedStopPrice), csvFloat(r.PlannedLimitPrice), csvFloat(r.CutLossPrice),
		fields[0], fields[1], fields[2], fields[3], fields[4],
		fields[5], fields[6], fields[7], fields[8], fields[9], fields[10],
		csvFloat(r.MinWinRate),
		string(r.Recommendation), csvFloat(r.ExpectedMove), r.ExpectedMoveUnit,
		csvFloat(r.Confidence), csvFloat(r.WinRate), csvFloat(r.AvgWin), csvFloat(r.AvgLoss), csvInt(r.PseudoCaseCount),
		strconv.FormatBool(r.HasResult), csvTime(r.ExitTime), csvFloat(r.ExitPrice),
		csvFloat(r.HighDuringTrade), csvFloat(r.LowDuringTrade), csvFloat(r.Profit),
		r.MarketMemo, r.NotionURL, r.ResultMemo,
	}
}

// ImportCSV reads records back from an export. The header decides column
// positions, so column reordering in a spreadsheet round-trips fine;
// unknown columns are ignored.
func ImportCSV(r io.Reader) ([]TradeRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	idx := map[string]int{}
	for i, name := range header {
		idx[name] = i
	}
	if _, ok := idx["id"]; !ok {
		return nil, fmt.Errorf("csv is missing the id column")
	}

	var out []TradeRecord
	line := 1
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		line++

		cell := func(name string) string {
			i, ok := idx[name]
			if !ok || i >= len(row) {
				return ""
			}
			return row[i]
		}

		rec, err := recordFromCells(cell)
		if err != nil {
			return nil, fmt.Errorf("csv line %d: %w", line, err)
		}
		out = append(out, rec)
	}
	return out, nil
}

func recordFromCells(cell func(string) string) (TradeRecord, error) {
	var rec TradeRecord
	var err error

	rec.ID = cell("id")
	if rec.CreatedAt, err = parseCSVTimeValue(cell("createdAt")); err != nil {
		return rec, err
	}
	if rec.UpdatedAt, err = parseCSVTimeValue(cell("updatedAt")); err != nil {
		return rec, err
	}

	if rec.EntryTime, err = parseCSVTime(cell("datetimeEntry")); err != nil {
		return rec, err
	}
	rec.Symbol = cell("symbol")
	rec.Timeframe = cell("timeframe")
	rec.TradeType = cell("tradeType")
	rec.DirectionPlanned = market.Direction(cell("directionPlanned"))

	if rec.EntryPrice, err = parseCSVFloat(cell("entryPrice")); err != nil {
		return rec, err
	}
	if rec.Size, err = parseCSVFloat(cell("size")); err != nil {
		return rec, err
	}
	if rec.FeePerUnit, err = parseCSVFloat(cell("feePerUnit")); err != nil {
		return rec, err
	}
	if rec.PlannedStopPrice, err = parseCSVFloat(cell("plannedStopPrice")); err != nil {
		return rec, err
	}
	if rec.PlannedLimitPrice, err = parseCSVFloat(cell("plannedLimitPrice")); err != nil {
		return rec, err
	}
	if rec.CutLossPrice, err = parseCSVFloat(cell("cutLossPrice")); err != nil {
		return rec, err
	}

	rec.Fingerprint = market.Fingerprint{
		PrevWave:       market.PrevWave(cell("prevWave")),
		TrendStage:     market.TrendStage(cell("trend_5_20_40")),
		PriceVsEMA200:  market.PriceVsEMA200(cell("price_vs_ema200")),
		EMABandColor:   market.EMABandColor(cell("ema_band_color")),
		VolatilityZone: market.VolatilityZone(cell("zone")),
		CMFSign:        market.CMFSign(cell("cmf_sign")),
		CMFSMADir:      market.SMADir(cell("cmf_sma_dir")),
		MACDState:      market.MACDState(cell("macd_state")),
		ROCSign:        market.ROCSign(cell("roc_sign")),
		ROCSMADir:      market.SMADir(cell("roc_sma_dir")),
		RSIZone:        market.RSIZone(cell("rsi_zone")),
	}

	if rec.MinWinRate, err = parseCSVFloat(cell("minWinRate")); err != nil {
		return rec, err
	}

	rec.Recommendation = market.Direction(cell("recommendation"))
	if rec.ExpectedMove, err = parseCSVFloat(cell("expectedMove")); err != nil {
		return rec, err
	}
	rec.ExpectedMoveUnit = cell("expectedMoveUnit")
	if rec.Confidence, err = parseCSVFloat(cell("confidence")); err != nil {
		return rec, err
	}
	if rec.WinRate, err = parseCSVFloat(cell("winRate")); err != nil {
		return rec, err
	}
	if rec.AvgWin, err = parseCSVFloat(cell("avgProfit")); err != nil {
		return rec, err
	}
	if rec.AvgLoss, err = parseCSVFloat(cell("avgLoss")); err != nil {
		return rec, err
	}
	if rec.PseudoCaseCount, err = parseCSVInt(cell("pseudoCaseCount")); err != nil {
		return rec, err
	}

	rec.HasResult = cell("hasResult") == "true"
	if rec.ExitTime, err = parseCSVTime(cell("datetimeExit")); err != nil {
		return rec, err
	}
	if rec.ExitPrice, err = parseCSVFloat(cell("exitPrice")); err != nil {
		return rec, err
	}
	rec.DirectionTaken = market.Direction(cell("directionTaken"))
	if rec.HighDuringTrade, err = parseCSVFloat(cell("highDuringTrade")); err != nil {
		return rec, err
	}
	if rec.LowDuringTrade, err = parseCSVFloat(cell("lowDuringTrade")); err != nil {
		return rec, err
	}
	if rec.Profit, err = parseCSVFloat(cell("profit")); err != nil {
		return rec, err
	}

	rec.MarketMemo = cell("marketMemo")
	rec.NotionURL = cell("notionUrl")
	rec.ResultMemo = cell("resultMemo")

	rec.Normalize()
	return rec, nil
}

func csvFloat(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'g', -1, 64)
}

func csvInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func csvTime(p *time.Time) string {
	if p == nil {
		return ""
	}
	return p.UTC().Format(time.RFC3339)
}

func parseCSVFloat(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("bad number %q: %w", s, err)
	}
	return &v, nil
}

func parseCSVInt(s string) (*int, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("bad integer %q: %w", s, err)
	}
	return &v, nil
}

func parseCSVTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseCSVTimeValue(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseCSVTimeValue(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	// older exports carried minute-resolution local timestamps
	t, err := time.Parse("2006-01-02T15:04", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad timestamp %q", s)
	}
	return t, nil
}
