package models

import (
	"time"

	"github.com/james997788/monyfun/internal/types"
)

// AttendanceStatus is the daily attendance state.
type AttendanceStatus string

const (
	AttendanceStatusOnTime AttendanceStatus = "on-time"
	AttendanceStatusLate   AttendanceStatus = "late"
	AttendanceStatusAbsent AttendanceStatus = "absent"
)

// AttendanceRecord is the attendance state for one calendar date.
// There is at most one record per date.
//
// A record is created by the first check-in of the day or by the absence
// sweep. Check-out only fills CheckOutTime, it never changes the status.
type AttendanceRecord struct {
	Date         types.Date       `json:"date"`
	CheckInTime  *time.Time       `json:"checkInTime"`
	CheckOutTime *time.Time       `json:"checkOutTime"`
	Status       AttendanceStatus `json:"status"`
}

// CheckedIn reports whether the record holds a check-in time.
func (r AttendanceRecord) CheckedIn() bool {
	return r.CheckInTime != nil
}

// CheckedOut reports whether the record holds a check-out time.
func (r AttendanceRecord) CheckedOut() bool {
	return r.CheckOutTime != nil
}
