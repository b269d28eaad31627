// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	id TEXT PRIMARY KEY,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL,

	entry_time DATETIME,
	symbol TEXT NOT NULL,
	timeframe TEXT NOT NULL,
	trade_type TEXT NOT NULL,
	direction_planned TEXT NOT NULL,
	entry_price REAL,
	size REAL,
	fee_per_unit REAL,
	planned_stop_price REAL,
	planned_limit_price REAL,
	cut_loss_price REAL,

	prev_wave TEXT NOT NULL,
	trend_stage TEXT NOT NULL,
	price_vs_ema200 TEXT NOT NULL,
	ema_band_color TEXT NOT NULL,
	volatility_zone TEXT NOT NULL,
	cmf_sign TEXT NOT NULL,
	cmf_sma_dir TEXT NOT NULL,
	macd_state TEXT NOT NULL,
	roc_sign TEXT NOT NULL,
	roc_sma_dir TEXT NOT NULL,
	rsi_zone TEXT NOT NULL,

	min_win_rate REAL NOT NULL,
	market_memo TEXT NOT NULL DEFAULT '',
	notion_url TEXT NOT NULL DEFAULT '',

	recommendation TEXT,
	expected_move REAL,
	expected_move_unit TEXT NOT NULL,
	confidence REAL,
	win_rate REAL,
	avg_win REAL,
	avg_loss REAL,
	pseudo_case_count INTEGER,

	has_result INTEGER NOT NULL DEFAULT 0,
	exit_time DATETIME,
	exit_price REAL,
	direction_taken TEXT NOT NULL,
	high_during_trade REAL,
	low_during_trade REAL,
	profit REAL,
	result_memo TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_trades_symbol_timeframe ON trades(symbol, timeframe);
CREATE INDEX IF NOT EXISTS idx_trades_entry_time ON trades(entry_time);
`
