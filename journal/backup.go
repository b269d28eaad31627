// journal/backup.go
package journal

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/ulikunitz/xz"
)

// BackupVersion is the JSON payload version. Imports reject anything else.
const BackupVersion = 1

// BackupPayload is the on-disk JSON backup format: the same shape the
// journal has always exported, so old backups keep importing.
type BackupPayload struct {
	Version int           `json:"version"`
	Records []TradeRecord `json:"records"`
}

// WriteBackup writes a versioned JSON backup. A path ending in .xz is
// compressed transparently.
func WriteBackup(path string, records []TradeRecord) error {
	data, err := json.MarshalIndent(BackupPayload{Version: BackupVersion, Records: records}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal backup: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create backup: %w", err)
	}
	defer f.Close()

	var w io.Writer = f
	var xw *xz.Writer
	if strings.HasSuffix(path, ".xz") {
		xw, err = xz.NewWriter(f)
		if err != nil {
			return fmt.Errorf("xz writer: %w", err)
		}
		w = xw
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write backup: %w", err)
	}
	if xw != nil {
		if err := xw.Close(); err != nil {
			return fmt.Errorf("finish xz stream: %w", err)
		}
	}
	return f.Close()
}

// ReadBackup loads a JSON backup (optionally .xz compressed) and
// normalizes every record in it.
func ReadBackup(path string) ([]TradeRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open backup: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".xz") {
		xr, err := xz.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("xz reader: %w", err)
		}
		r = xr
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read backup: %w", err)
	}

	var payload BackupPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse backup: %w", err)
	}
	if payload.Version != BackupVersion {
		return nil, fmt.Errorf("unsupported backup version %d (want %d)", payload.Version, BackupVersion)
	}

	for i := range payload.Records {
		payload.Records[i].Normalize()
	}
	return payload.Records, nil
}

// MergeRecords folds incoming backup records into the existing set.
// New IDs are added; for known IDs the record with the newer updatedAt
// wins, so re-importing an old backup never clobbers fresher data.
// The merged set is ordered newest entry first.
func MergeRecords(existing, incoming []TradeRecord) (merged []TradeRecord, added, updated int) {
	byID := make(map[string]TradeRecord, len(existing))
	order := make([]string, 0, len(existing)+len(incoming))
	for _, rec := range existing {
		byID[rec.ID] = rec
		order = append(order, rec.ID)
	}

	for _, inc := range incoming {
		cur, ok := byID[inc.ID]
		if !ok {
			byID[inc.ID] = inc
			order = append(order, inc.ID)
			added++
			continue
		}
		if inc.UpdatedAt.After(cur.UpdatedAt) {
			byID[inc.ID] = inc
			updated++
		}
	}

	merged = make([]TradeRecord, 0, len(order))
	for _, id := range order {
		merged = append(merged, byID[id])
	}
	sort.SliceStable(merged, func(i, j int) bool {
		return entrySortKey(merged[i]).After(entrySortKey(merged[j]))
	})
	return merged, added, updated
}

func entrySortKey(r TradeRecord) time.Time {
	if r.EntryTime != nil {
		return *r.EntryTime
	}
	return r.CreatedAt
}
