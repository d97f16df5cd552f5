package store

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/james997788/monyfun/internal/models"
	"github.com/james997788/monyfun/internal/types"
	"golang.org/x/exp/slices"
)

// Daily cutoffs, as offsets from midnight in the clock's location.
const (
	// CheckInCutoff is the time after which a check-in counts as late.
	CheckInCutoff = 9 * time.Hour

	// EndOfDay is the time before which a check-out triggers the
	// "finish your tasks" advisory.
	EndOfDay = 17 * time.Hour
)

// LateWarningThreshold is the number of late arrivals per month above which
// the listing carries a warning.
const LateWarningThreshold = 3

// AttendanceStore owns the attendance records, at most one per calendar date.
type AttendanceStore struct {
	mu        sync.Mutex
	records   []models.AttendanceRecord
	persister Persister
	now       func() time.Time
}

// NewAttendanceStore loads the attendance snapshot and returns the store.
func NewAttendanceStore(p Persister, now func() time.Time) (*AttendanceStore, error) {
	s := &AttendanceStore{
		persister: p,
		now:       now,
	}

	data, err := p.Load(KeyAttendance)
	if err != nil {
		return nil, fmt.Errorf("loading attendance snapshot: %w", err)
	}

	if data != nil {
		err = json.Unmarshal(data, &s.records)
		if err != nil {
			return nil, fmt.Errorf("decoding attendance snapshot: %w", err)
		}
	}

	return s, nil
}

// persist writes the full record list. Callers must hold the mutex.
func (s *AttendanceStore) persist() error {
	data, err := json.Marshal(s.records)
	if err != nil {
		return persistError(err)
	}

	err = s.persister.Save(KeyAttendance, data)
	if err != nil {
		return persistError(err)
	}

	return nil
}

// cutoff returns the clock time on t's calendar day that lies offset past
// midnight, in t's location.
func cutoff(t time.Time, offset time.Duration) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location()).Add(offset)
}

// todayIndex returns the index of today's record. Callers must hold the mutex.
func (s *AttendanceStore) todayIndex(today types.Date) int {
	return slices.IndexFunc(s.records, func(r models.AttendanceRecord) bool {
		return r.Date.Equal(today)
	})
}

// CheckIn records the check-in for today. A check-in after the cutoff is
// late, otherwise on time. When the absence sweep already created a record
// for today, the check-in merges into it and decides the status.
func (s *AttendanceStore) CheckIn() (models.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	today := types.DateOf(now)

	status := models.AttendanceStatusOnTime
	if now.After(cutoff(now, CheckInCutoff)) {
		status = models.AttendanceStatusLate
	}

	i := s.todayIndex(today)
	if i >= 0 {
		if s.records[i].CheckedIn() {
			return models.AttendanceRecord{}, models.ErrAlreadyCheckedIn
		}

		previous := s.records[i]
		s.records[i].CheckInTime = &now
		s.records[i].Status = status

		if err := s.persist(); err != nil {
			s.records[i] = previous
			return models.AttendanceRecord{}, err
		}

		return s.records[i], nil
	}

	record := models.AttendanceRecord{
		Date:        today,
		CheckInTime: &now,
		Status:      status,
	}

	s.records = append(s.records, record)
	if err := s.persist(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return models.AttendanceRecord{}, err
	}

	return record, nil
}

// CheckOut records the check-out for today. It requires a prior check-in
// and rejects a second check-out. The status is never altered here.
// The second return value reports whether the check-out happened before the
// end of the working day.
func (s *AttendanceStore) CheckOut() (models.AttendanceRecord, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	today := types.DateOf(now)

	i := s.todayIndex(today)
	if i < 0 || !s.records[i].CheckedIn() {
		return models.AttendanceRecord{}, false, models.ErrNotCheckedIn
	}

	if s.records[i].CheckedOut() {
		return models.AttendanceRecord{}, false, models.ErrAlreadyCheckedOut
	}

	previous := s.records[i]
	s.records[i].CheckOutTime = &now

	if err := s.persist(); err != nil {
		s.records[i] = previous
		return models.AttendanceRecord{}, false, err
	}

	return s.records[i], now.Before(cutoff(now, EndOfDay)), nil
}

// SweepAbsences creates an absent record for today when the check-in cutoff
// has passed and no record exists yet. It is idempotent and never touches
// existing records. The return value reports whether a record was created.
func (s *AttendanceStore) SweepAbsences() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	today := types.DateOf(now)

	if !now.After(cutoff(now, CheckInCutoff)) {
		return false, nil
	}

	if s.todayIndex(today) >= 0 {
		return false, nil
	}

	s.records = append(s.records, models.AttendanceRecord{
		Date:   today,
		Status: models.AttendanceStatusAbsent,
	})

	if err := s.persist(); err != nil {
		s.records = s.records[:len(s.records)-1]
		return false, err
	}

	return true, nil
}

// All returns a copy of all records in insertion order.
func (s *AttendanceStore) All() []models.AttendanceRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.records)
}

// LateCount counts the late records in the month that day falls into.
func (s *AttendanceStore) LateCount(day types.Date) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, r := range s.records {
		if r.Status == models.AttendanceStatusLate && r.Date.SameMonth(day) {
			count++
		}
	}

	return count
}

// Today returns the current date according to the store's clock.
func (s *AttendanceStore) Today() types.Date {
	return types.DateOf(s.now())
}
