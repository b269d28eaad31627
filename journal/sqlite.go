// journal/sqlite.go
package journal

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/edgescope/edgescope/market"
)

// SQLite is the default Journal backend: a single-file store that keeps
// every record field queryable.
type SQLite struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

const tradeColumns = `
	id, created_at, updated_at,
	entry_time, symbol, timeframe, trade_type, direction_planned,
	entry_price, size, fee_per_unit,
	planned_stop_price, planned_limit_price, cut_loss_price,
	prev_wave, trend_stage, price_vs_ema200, ema_band_color, volatility_zone,
	cmf_sign, cmf_sma_dir, macd_state, roc_sign, roc_sma_dir, rsi_zone,
	min_win_rate, market_memo, notion_url,
	recommendation, expected_move, expected_move_unit,
	confidence, win_rate, avg_win, avg_loss, pseudo_case_count,
	has_result, exit_time, exit_price, direction_taken,
	high_during_trade, low_during_trade, profit, result_memo`

// SaveTrade inserts or overwrites a record. The record is normalized
// first, updated_at advances, and created_at of an existing row wins over
// whatever the caller passed in.
func (j *SQLite) SaveTrade(rec TradeRecord) error {
	rec.Normalize()
	rec.UpdatedAt = time.Now().UTC()
	return j.putTrade(rec)
}

// RestoreTrade writes a record keeping its own updated_at. Import uses it:
// updated_at decides merge conflicts and has to survive the round trip.
func (j *SQLite) RestoreTrade(rec TradeRecord) error {
	rec.Normalize()
	return j.putTrade(rec)
}

func (j *SQLite) putTrade(rec TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT OR REPLACE INTO trades (`+tradeColumns+`)
		VALUES (?,
			COALESCE((SELECT created_at FROM trades WHERE id = ?), ?),
			?,
			?, ?, ?, ?, ?,
			?, ?, ?,
			?, ?, ?,
			?, ?, ?, ?, ?,
			?, ?, ?, ?, ?, ?,
			?, ?, ?,
			?, ?, ?,
			?, ?, ?, ?, ?,
			?, ?, ?, ?,
			?, ?, ?, ?)`,
		rec.ID,
		rec.ID, rec.CreatedAt,
		rec.UpdatedAt,
		nullTime(rec.EntryTime), rec.Symbol, rec.Timeframe, rec.TradeType, string(rec.DirectionPlanned),
		nullFloat(rec.EntryPrice), nullFloat(rec.Size), nullFloat(rec.FeePerUnit),
		nullFloat(rec.PlannedStopPrice), nullFloat(rec.PlannedLimitPrice), nullFloat(rec.CutLossPrice),
		string(rec.PrevWave), string(rec.TrendStage), string(rec.PriceVsEMA200), string(rec.EMABandColor), string(rec.VolatilityZone),
		string(rec.CMFSign), string(rec.CMFSMADir), string(rec.MACDState), string(rec.ROCSign), string(rec.ROCSMADir), string(rec.RSIZone),
		*rec.MinWinRate, rec.MarketMemo, rec.NotionURL,
		nullString(string(rec.Recommendation)), nullFloat(rec.ExpectedMove), rec.ExpectedMoveUnit,
		nullFloat(rec.Confidence), nullFloat(rec.WinRate), nullFloat(rec.AvgWin), nullFloat(rec.AvgLoss), nullInt(rec.PseudoCaseCount),
		rec.HasResult, nullTime(rec.ExitTime), nullFloat(rec.ExitPrice), string(rec.DirectionTaken),
		nullFloat(rec.HighDuringTrade), nullFloat(rec.LowDuringTrade), nullFloat(rec.Profit), rec.ResultMemo,
	)
	return err
}

// GetTrade returns a single record by ID.
func (j *SQLite) GetTrade(id string) (TradeRecord, error) {
	row := j.db.QueryRow(`SELECT `+tradeColumns+` FROM trades WHERE id = ?`, id)

	rec, err := scanTrade(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return TradeRecord{}, fmt.Errorf("trade %q not found", id)
		}
		return TradeRecord{}, err
	}
	return rec, nil
}

// ListTrades returns every record, newest entry first. Records without an
// entry time sort last, by creation time.
func (j *SQLite) ListTrades() ([]TradeRecord, error) {
	rows, err := j.db.Query(`
		SELECT ` + tradeColumns + `
		FROM trades
		ORDER BY entry_time IS NULL, entry_time DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TradeRecord
	for rows.Next() {
		rec, err := scanTrade(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteTrade removes a record. Deleting an unknown ID is an error so the
// CLI can tell the user nothing happened.
func (j *SQLite) DeleteTrade(id string) error {
	res, err := j.db.Exec(`DELETE FROM trades WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("trade %q not found", id)
	}
	return nil
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrade(row rowScanner) (TradeRecord, error) {
	var (
		rec TradeRecord

		entryTime, exitTime sql.NullTime

		entryPrice, size, feePerUnit          sql.NullFloat64
		plannedStop, plannedLimit, cutLoss    sql.NullFloat64
		expectedMove, confidence, winRate     sql.NullFloat64
		avgWin, avgLoss                       sql.NullFloat64
		exitPrice, highDuring, lowDuring      sql.NullFloat64
		profit                                sql.NullFloat64
		pseudoCases                           sql.NullInt64
		recommendation                        sql.NullString
		directionPlanned, directionTaken      string
		prevWave, trendStage, priceVsEMA      string
		bandColor, zone, cmfSign, cmfSMA      string
		macdState, rocSign, rocSMA, rsiZone   string
		minWinRate                            float64
	)

	err := row.Scan(
		&rec.ID, &rec.CreatedAt, &rec.UpdatedAt,
		&entryTime, &rec.Symbol, &rec.Timeframe, &rec.TradeType, &directionPlanned,
		&entryPrice, &size, &feePerUnit,
		&plannedStop, &plannedLimit, &cutLoss,
		&prevWave, &trendStage, &priceVsEMA, &bandColor, &zone,
		&cmfSign, &cmfSMA, &macdState, &rocSign, &rocSMA, &rsiZone,
		&minWinRate, &rec.MarketMemo, &rec.NotionURL,
		&recommendation, &expectedMove, &rec.ExpectedMoveUnit,
		&confidence, &winRate, &avgWin, &avgLoss, &pseudoCases,
		&rec.HasResult, &exitTime, &exitPrice, &directionTaken,
		&highDuring, &lowDuring, &profit, &rec.ResultMemo,
	)
	if err != nil {
		return TradeRecord{}, err
	}

	rec.EntryTime = timePtr(entryTime)
	rec.ExitTime = timePtr(exitTime)
	rec.DirectionPlanned = market.Direction(directionPlanned)
	rec.DirectionTaken = market.Direction(directionTaken)

	rec.EntryPrice = floatPtr(entryPrice)
	rec.Size = floatPtr(size)
	rec.FeePerUnit = floatPtr(feePerUnit)
	rec.PlannedStopPrice = floatPtr(plannedStop)
	rec.PlannedLimitPrice = floatPtr(plannedLimit)
	rec.CutLossPrice = floatPtr(cutLoss)

	rec.Fingerprint = market.Fingerprint{
		PrevWave:       market.PrevWave(prevWave),
		TrendStage:     market.TrendStage(trendStage),
		PriceVsEMA200:  market.PriceVsEMA200(priceVsEMA),
		EMABandColor:   market.EMABandColor(bandColor),
		VolatilityZone: market.VolatilityZone(zone),
		CMFSign:        market.CMFSign(cmfSign),
		CMFSMADir:      market.SMADir(cmfSMA),
		MACDState:      market.MACDState(macdState),
		ROCSign:        market.ROCSign(rocSign),
		ROCSMADir:      market.SMADir(rocSMA),
		RSIZone:        market.RSIZone(rsiZone),
	}

	rec.MinWinRate = &minWinRate

	if recommendation.Valid {
		rec.Recommendation = market.Direction(recommendation.String)
	}
	rec.ExpectedMove = floatPtr(expectedMove)
	rec.Confidence = floatPtr(confidence)
	rec.WinRate = floatPtr(winRate)
	rec.AvgWin = floatPtr(avgWin)
	rec.AvgLoss = floatPtr(avgLoss)
	if pseudoCases.Valid {
		n := int(pseudoCases.Int64)
		rec.PseudoCaseCount = &n
	}

	rec.ExitPrice = floatPtr(exitPrice)
	rec.HighDuringTrade = floatPtr(highDuring)
	rec.LowDuringTrade = floatPtr(lowDuring)
	rec.Profit = floatPtr(profit)

	return rec, nil
}

func nullFloat(p *float64) sql.NullFloat64 {
	if p == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *p, Valid: true}
}

func floatPtr(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	v := n.Float64
	return &v
}

func nullTime(p *time.Time) sql.NullTime {
	if p == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *p, Valid: true}
}

func timePtr(n sql.NullTime) *time.Time {
	if !n.Valid {
		return nil
	}
	v := n.Time
	return &v
}

func nullInt(p *int) sql.NullInt64 {
	if p == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*p), Valid: true}
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
