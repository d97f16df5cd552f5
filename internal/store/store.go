// Package store implements the in-memory record stores.
//
// Each store owns an ordered list of records and mirrors it to durable
// storage as a full JSON snapshot after every successful mutation. Mutations
// validate first, so a failed operation always leaves both the in-memory
// list and the snapshot untouched.
package store

import (
	"fmt"
	"time"

	"github.com/james997788/monyfun/internal/models"
)

// Snapshot keys, one per logical store.
const (
	KeyTransactions = "transactions"
	KeyGoals        = "goals"
	KeyAttendance   = "attendanceRecords"
)

// Persister writes store snapshots to durable storage and reads them back.
//
// Load returns nil data without an error when no snapshot exists yet.
type Persister interface {
	Save(key string, data []byte) error
	Load(key string) ([]byte, error)
}

// nextID returns the millisecond timestamp of now as record id. When two
// records are created within the same millisecond, the id is bumped past
// the last one handed out so that ids stay unique.
func nextID(now time.Time, last int64) int64 {
	id := now.UnixMilli()
	if id <= last {
		id = last + 1
	}

	return id
}

// persistError wraps persistence failures with a general error so that
// callers can map them uniformly.
func persistError(err error) error {
	return fmt.Errorf("%w: %v", models.ErrGeneral, err)
}
