package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "nk225mc", cfg.Entry.Symbol)
	assert.Equal(t, "1時間", cfg.Entry.Timeframe)
	assert.InDelta(t, 30, cfg.Entry.MinWinRate, 1e-9)
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := `
journal:
  db_path: /tmp/journal.sqlite
entry:
  symbol: nk225m
  timeframe: 日足
  trade_type: sim
  direction: short
  min_win_rate: 45
`
	assert.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "/tmp/journal.sqlite", cfg.Journal.DBPath)
	assert.Equal(t, "nk225m", cfg.Entry.Symbol)
	assert.Equal(t, "sim", cfg.Entry.TradeType)
	assert.InDelta(t, 45, cfg.Entry.MinWinRate, 1e-9)
}

func TestSaveAndReloadJSON(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")

	cfg := Default()
	cfg.Entry.MinWinRate = 55
	assert.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	assert.NoError(t, err)
	assert.InDelta(t, 55, got.Entry.MinWinRate, 1e-9)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Entry.Symbol = "spx500"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Entry.TradeType = "paper"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Entry.Direction = "flat"
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Entry.MinWinRate = 120
	assert.Error(t, cfg.Validate())

	cfg = Default()
	cfg.Journal.DBPath = ""
	assert.Error(t, cfg.Validate())
}
