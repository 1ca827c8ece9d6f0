// Package timeutil holds the display-time helpers shared by the attendance
// listing and report surfaces. These are formatting concerns only and play no
// part in the aggregation math.
package timeutil

import (
	"strconv"
	"time"

	"github.com/staffsync/attendance-backend-go/internal/pkg/validator"
)

// ClockTimeUnavailable is returned when a clock reading is absent or
// unparsable.
const ClockTimeUnavailable = "N/A"

// FormatClockTime renders a clock reading as a 12-hour display string, e.g.
// "09:30 AM".
func FormatClockTime(t *time.Time) string {
	if t == nil {
		return ClockTimeUnavailable
	}
	return t.Format("03:04 PM")
}

// FormatClockTimeString parses an ISO8601 timestamp and renders it as a
// 12-hour display string. Absent or unparsable input yields "N/A".
func FormatClockTimeString(value string) string {
	t, ok := validator.IsValidDateTime(value)
	if !ok {
		return ClockTimeUnavailable
	}
	return FormatClockTime(&t)
}

// ComputeDurationHours derives the elapsed hours between a check-in and a
// check-out, formatted to exactly two decimal places. A missing timestamp or
// a check-out before the check-in clamps to "0.00": the inconsistency is an
// upstream data problem and must not fail a display aggregation.
func ComputeDurationHours(checkIn, checkOut *time.Time) string {
	if checkIn == nil || checkOut == nil {
		return "0.00"
	}

	millis := checkOut.Sub(*checkIn).Milliseconds()
	if millis < 0 {
		return "0.00"
	}

	hours := float64(millis) / 3600000.0
	return strconv.FormatFloat(hours, 'f', 2, 64)
}

// ParseTimestamp converts an optional ISO8601 string into a *time.Time,
// mapping absent or unparsable values to nil.
func ParseTimestamp(value *string) *time.Time {
	if value == nil {
		return nil
	}
	t, ok := validator.IsValidDateTime(*value)
	if !ok {
		return nil
	}
	return &t
}
