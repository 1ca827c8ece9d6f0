package timeutil

import (
	"testing"
	"time"
)

func TestFormatClockTime(t *testing.T) {
	morning := time.Date(2025, 5, 1, 9, 30, 0, 0, time.UTC)
	evening := time.Date(2025, 5, 1, 17, 5, 0, 0, time.UTC)
	midnight := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name  string
		input *time.Time
		want  string
	}{
		{"morning", &morning, "09:30 AM"},
		{"evening", &evening, "05:05 PM"},
		{"midnight", &midnight, "12:00 AM"},
		{"absent", nil, "N/A"},
	}
	for _, c := range cases {
		if got := FormatClockTime(c.input); got != c.want {
			t.Errorf("FormatClockTime(%s) = %q, want %q", c.name, got, c.want)
		}
	}
}

func TestFormatClockTimeString(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"2025-05-01T09:30:00Z", "09:30 AM"},
		{"2025-05-01T21:45:00", "09:45 PM"},
		{"not-a-timestamp", "N/A"},
		{"", "N/A"},
	}
	for _, c := range cases {
		if got := FormatClockTimeString(c.input); got != c.want {
			t.Errorf("FormatClockTimeString(%q) = %q, want %q", c.input, got, c.want)
		}
	}
}

func TestComputeDurationHours(t *testing.T) {
	in := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	out := time.Date(2025, 5, 1, 17, 30, 0, 0, time.UTC)
	quarter := time.Date(2025, 5, 1, 9, 15, 0, 0, time.UTC)

	cases := []struct {
		name     string
		checkIn  *time.Time
		checkOut *time.Time
		want     string
	}{
		{"full day", &in, &out, "8.50"},
		{"fifteen minutes", &in, &quarter, "0.25"},
		{"zero", &in, &in, "0.00"},
		{"missing check-in", nil, &out, "0.00"},
		{"missing check-out", &in, nil, "0.00"},
		{"both missing", nil, nil, "0.00"},
	}
	for _, c := range cases {
		if got := ComputeDurationHours(c.checkIn, c.checkOut); got != c.want {
			t.Errorf("ComputeDurationHours(%s) = %q, want %q", c.name, got, c.want)
		}
	}
}

// Check-out before check-in is a ledger inconsistency and clamps to "0.00"
// rather than producing a negative duration.
func TestComputeDurationHoursClampsNegative(t *testing.T) {
	checkIn := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)

	if got := ComputeDurationHours(&checkIn, &checkOut); got != "0.00" {
		t.Errorf("ComputeDurationHours(inverted) = %q, want %q", got, "0.00")
	}
}

func TestParseTimestamp(t *testing.T) {
	valid := "2025-05-01T10:00:00Z"
	garbage := "soon"

	if got := ParseTimestamp(nil); got != nil {
		t.Errorf("ParseTimestamp(nil) = %v, want nil", got)
	}
	if got := ParseTimestamp(&garbage); got != nil {
		t.Errorf("ParseTimestamp(%q) = %v, want nil", garbage, got)
	}
	got := ParseTimestamp(&valid)
	if got == nil || !got.Equal(time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("ParseTimestamp(%q) = %v", valid, got)
	}
}
