package report

import (
	"github.com/staffsync/attendance-backend-go/internal/pkg/validator"
)

// ========================================
// EMPLOYEE MONTHLY REPORT
// ========================================

type MonthlyReportRequest struct {
	EmployeeID string `json:"employee_id"`
	Month      int    `json:"month"`
	Year       int    `json:"year"`
}

func (r *MonthlyReportRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	errs = append(errs, validatePeriod(r.Month, r.Year)...)

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type ReportEmployee struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	HourlyRate  string  `json:"hourly_rate"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

type DailyRecord struct {
	Date               string  `json:"date"`
	DayOfWeek          string  `json:"day_of_week"`
	FirstCheckIn       *string `json:"first_check_in"`
	LastCheckOut       *string `json:"last_check_out"`
	ClockInDisplay     string  `json:"clock_in_display"`
	ClockOutDisplay    string  `json:"clock_out_display"`
	TotalDurationHours float64 `json:"total_duration_hours"`
	Status             string  `json:"status"`
}

type EmployeeMonthlyReport struct {
	Employee    ReportEmployee `json:"employee"`
	PeriodMonth int            `json:"period_month"`
	PeriodYear  int            `json:"period_year"`
	PeriodStart string         `json:"period_start"`
	PeriodEnd   string         `json:"period_end"`
	GeneratedAt string         `json:"generated_at,omitempty"`

	// Records is sorted ascending by calendar date.
	Records []DailyRecord `json:"records"`

	TotalHours        float64 `json:"total_hours"`
	WorkingDays       int     `json:"working_days"`
	AverageDailyHours float64 `json:"average_daily_hours"`
	MonthlySalary     string  `json:"monthly_salary"`
}

// ========================================
// PAYROLL OVERVIEW
// ========================================

type PayrollOverviewRequest struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func (r *PayrollOverviewRequest) Validate() error {
	errs := validatePeriod(r.Month, r.Year)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PayrollOverviewRow struct {
	EmployeeID  string  `json:"employee_id"`
	DisplayName string  `json:"display_name"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	HourlyRate  string  `json:"hourly_rate"`

	TotalMonthlyHours float64 `json:"total_monthly_hours"`
	MonthlySalary     string  `json:"monthly_salary"`
}

type PayrollOverview struct {
	PeriodMonth    int    `json:"period_month"`
	PeriodYear     int    `json:"period_year"`
	GeneratedAt    string `json:"generated_at,omitempty"`
	TotalEmployees int    `json:"total_employees"`

	// HasData is false when every row accumulated zero hours, the
	// "no salary data for this period" state callers special-case.
	HasData bool `json:"has_data"`

	Rows []PayrollOverviewRow `json:"rows"`
}

func validatePeriod(month, year int) validator.ValidationErrors {
	var errs validator.ValidationErrors

	if month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if year < 1000 || year > 9999 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a 4-digit calendar year",
		})
	}

	return errs
}
