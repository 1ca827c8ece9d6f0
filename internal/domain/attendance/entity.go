package attendance

import (
	"time"
)

type Attendance struct {
	ID                 string
	EmployeeID         string
	Date               time.Time
	FirstCheckIn       *time.Time
	LastCheckOut       *time.Time
	TotalDurationHours *float64
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Only StatusPresent counts toward working days. The match is exact and
// case-sensitive: the ledger's own labels are authoritative and synonyms or
// case variants are not promoted.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// DurationHours returns the ledger's precomputed duration for the day, with a
// missing value clamped to zero. Aggregation trusts this figure and does not
// rederive it from the check-in/out timestamps.
func (a Attendance) DurationHours() float64 {
	if a.TotalDurationHours == nil {
		return 0
	}
	return *a.TotalDurationHours
}
