package attendance

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/staffsync/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

// FlexID decodes a JSON identifier that upstream ledger systems serialize
// inconsistently as either a number or a string. Both forms normalize to the
// same string so a record with employee_id 2 matches the directory entry "2".
type FlexID string

func (f *FlexID) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		*f = FlexID(strings.TrimSpace(str))
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("employee id must be a string or number: %w", err)
	}
	*f = FlexID(num.String())
	return nil
}

func (f FlexID) String() string {
	return string(f)
}

type ListAttendanceRequest struct {
	EmployeeID string
	Month      int
	Year       int
}

func (r *ListAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 1000 || r.Year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a 4-digit calendar year",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	Date               string  `json:"date"`
	FirstCheckIn       *string `json:"first_check_in,omitempty"`
	LastCheckOut       *string `json:"last_check_out,omitempty"`
	ClockInDisplay     string  `json:"clock_in_display"`
	ClockOutDisplay    string  `json:"clock_out_display"`
	TotalDurationHours float64 `json:"total_duration_hours"`
	Status             string  `json:"status"`
}

type ListAttendanceResponse struct {
	Records []AttendanceResponse `json:"records"`
	Total   int                  `json:"total"`
}

// ========================================
// LEDGER IMPORT DTOs
// ========================================

type ImportRecordRequest struct {
	EmployeeID         FlexID   `json:"employee_id"`
	Date               string   `json:"date"`
	FirstCheckIn       *string  `json:"first_check_in,omitempty"`
	LastCheckOut       *string  `json:"last_check_out,omitempty"`
	TotalDurationHours *float64 `json:"total_duration_hours,omitempty"`
	Status             string   `json:"status"`
}

type ImportRequest struct {
	Records []ImportRecordRequest `json:"records"`
}

func (r *ImportRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "records",
			Message: "records must not be empty",
		})
		return errs
	}

	for i, rec := range r.Records {
		if validator.IsEmpty(rec.EmployeeID.String()) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("records[%d].employee_id", i),
				Message: "employee_id is required",
			})
		}

		if _, ok := validator.IsValidDate(rec.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("records[%d].date", i),
				Message: "date must be in YYYY-MM-DD format",
			})
		}

		if validator.IsEmpty(rec.Status) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("records[%d].status", i),
				Message: "status is required",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ImportResponse struct {
	Imported int `json:"imported"`
	Skipped  int `json:"skipped"`
}
