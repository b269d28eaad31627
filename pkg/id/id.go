package id

import (
	"github.com/oklog/ulid/v2"
)

// New returns a ULID string (time-sortable identifier).
//
// ULIDs sort lexicographically by creation time, which keeps journal
// listings and SQLite indexes in entry order without a separate sequence.
// ulid.Make uses a process-wide monotonic entropy source, so IDs created
// within the same millisecond still increase.
func New() string {
	return ulid.Make().String()
}

// IsValid reports whether s parses as a ULID. Records imported from older
// backups may carry foreign ID formats; those are accepted by the journal
// but never minted here.
func IsValid(s string) bool {
	_, err := ulid.ParseStrict(s)
	return err == nil
}
