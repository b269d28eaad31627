package journal

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackupRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "trades.json")

	rec := fullRecord()
	assert.NoError(t, WriteBackup(path, []TradeRecord{rec}))

	got, err := ReadBackup(path)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, rec.ID, got[0].ID)
	assert.Equal(t, rec.Fingerprint, got[0].Fingerprint)
	assert.InDelta(t, *rec.Profit, *got[0].Profit, 1e-9)
	assert.True(t, got[0].HasResult)
}

func TestBackupRoundTripXZ(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "trades.json.xz")

	rec := fullRecord()
	assert.NoError(t, WriteBackup(path, []TradeRecord{rec}))

	got, err := ReadBackup(path)
	assert.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, rec.ID, got[0].ID)
}

func TestReadBackupRejectsUnknownVersion(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "trades.json")

	assert.NoError(t, os.WriteFile(path, []byte(`{"version": 2, "records": []}`), 0644))

	_, err := ReadBackup(path)
	assert.ErrorContains(t, err, "unsupported backup version")
}

func TestMergeRecords(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)

	cur := fullRecord()
	cur.UpdatedAt = base
	cur.ResultMemo = "current"

	stale := cur
	stale.UpdatedAt = base.Add(-time.Hour)
	stale.ResultMemo = "stale import"

	fresh := cur
	fresh.UpdatedAt = base.Add(time.Hour)
	fresh.ResultMemo = "fresh import"

	newcomer := fullRecord()
	newcomer.ID = ""
	newcomer.Normalize()

	// stale loses
	merged, added, updated := MergeRecords([]TradeRecord{cur}, []TradeRecord{stale})
	assert.Zero(t, added)
	assert.Zero(t, updated)
	assert.Len(t, merged, 1)
	assert.Equal(t, "current", merged[0].ResultMemo)

	// fresh wins, newcomer is added
	merged, added, updated = MergeRecords([]TradeRecord{cur}, []TradeRecord{fresh, newcomer})
	assert.Equal(t, 1, added)
	assert.Equal(t, 1, updated)
	assert.Len(t, merged, 2)

	byID := map[string]TradeRecord{}
	for _, r := range merged {
		byID[r.ID] = r
	}
	assert.Equal(t, "fresh import", byID[cur.ID].ResultMemo)
}

func TestMergeRecordsOrdersNewestEntryFirst(t *testing.T) {
	t.Parallel()

	older := fullRecord()
	older.EntryTime = tp(time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC))

	newer := fullRecord()
	newer.ID = ""
	newer.Normalize()
	newer.EntryTime = tp(time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	merged, _, _ := MergeRecords([]TradeRecord{older}, []TradeRecord{newer})
	assert.Len(t, merged, 2)
	assert.Equal(t, newer.ID, merged[0].ID)
	assert.Equal(t, older.ID, merged[1].ID)
}
