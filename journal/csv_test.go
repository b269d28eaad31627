package journal

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCSVExportHeader(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	assert.NoError(t, ExportCSV(&buf, nil))

	reader := csv.NewReader(strings.NewReader(buf.String()))
	header, err := reader.Read()
	assert.NoError(t, err)

	assert.Equal(t, CSVColumns, header)
	assert.Len(t, header, 43)
}

func TestCSVRoundTrip(t *testing.T) {
	t.Parallel()

	rec := fullRecord()

	var open TradeRecord
	open.Normalize()
	open.MarketMemo = "line one\nwith, comma and \"quotes\""

	var buf bytes.Buffer
	assert.NoError(t, ExportCSV(&buf, []TradeRecord{rec, open}))

	got, err := ImportCSV(&buf)
	assert.NoError(t, err)
	assert.Len(t, got, 2)

	r := got[0]
	assert.Equal(t, rec.ID, r.ID)
	// RFC3339 is second resolution
	assert.Equal(t, rec.CreatedAt.Unix(), r.CreatedAt.Unix())
	assert.Equal(t, rec.Symbol, r.Symbol)
	assert.Equal(t, rec.Timeframe, r.Timeframe)
	assert.Equal(t, rec.DirectionPlanned, r.DirectionPlanned)
	assert.Equal(t, rec.Fingerprint, r.Fingerprint)
	assert.InDelta(t, *rec.EntryPrice, *r.EntryPrice, 1e-9)
	assert.InDelta(t, *rec.Profit, *r.Profit, 1e-9)
	assert.Equal(t, *rec.PseudoCaseCount, *r.PseudoCaseCount)
	assert.True(t, r.HasResult)
	assert.Equal(t, rec.ExitTime.Unix(), r.ExitTime.Unix())

	o := got[1]
	assert.Equal(t, open.ID, o.ID)
	assert.False(t, o.HasResult)
	assert.Nil(t, o.EntryPrice)
	assert.Nil(t, o.Profit)
	assert.Equal(t, open.MarketMemo, o.MarketMemo)
}

func TestCSVImportToleratesColumnReorder(t *testing.T) {
	t.Parallel()

	data := "symbol,id,entryPrice,directionPlanned\nnk225,01JD0000000000000000000001,38000,short\n"

	got, err := ImportCSV(strings.NewReader(data))
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, "nk225", got[0].Symbol)
	assert.Equal(t, "01JD0000000000000000000001", got[0].ID)
	assert.InDelta(t, 38000, *got[0].EntryPrice, 1e-9)
	// missing columns fall back to defaults
	assert.Equal(t, DefaultTimeframe, got[0].Timeframe)
}

func TestCSVImportRejectsMissingID(t *testing.T) {
	t.Parallel()

	_, err := ImportCSV(strings.NewReader("symbol,timeframe\nnk225,1時間\n"))
	assert.Error(t, err)
}

func TestCSVImportRejectsBadNumbers(t *testing.T) {
	t.Parallel()

	data := "id,entryPrice\nabc,not-a-number\n"
	_, err := ImportCSV(strings.NewReader(data))
	assert.ErrorContains(t, err, "bad number")
}
