package report

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/staffsync/attendance-backend-go/internal/domain/attendance"
	"github.com/staffsync/attendance-backend-go/internal/domain/employee"
	"github.com/staffsync/attendance-backend-go/internal/domain/report"
	"github.com/staffsync/attendance-backend-go/internal/pkg/timeutil"
)

// The builders in this file are pure: no I/O, no clock reads, no mutation of
// their inputs. Callers stamp GeneratedAt afterwards so equal inputs always
// produce equal values.

// normalizeID canonicalizes an employee identifier before comparison. The
// directory and the ledger evolve independently and upstream sources have
// serialized the same identifier as both a number and a string.
func normalizeID(id string) string {
	return strings.TrimSpace(id)
}

// inPeriod reports whether a record's calendar date falls in the given month.
func inPeriod(date time.Time, month, year int) bool {
	return int(date.Month()) == month && date.Year() == year
}

// monthlySalary renders hours times the hourly rate to two decimal places.
func monthlySalary(hours float64, rate decimal.Decimal) string {
	return decimal.NewFromFloat(hours).Mul(rate).StringFixed(2)
}

// BuildMonthlyReport computes one employee's attendance report for a month:
// the matching ledger records sorted ascending by date, total hours, working
// days (status exactly "Present"), zero-safe average daily hours and the
// derived salary. An employee with no matching records yields a valid report
// with zero metrics and an empty record list.
func BuildMonthlyReport(emp employee.Employee, ledger []attendance.Attendance, month, year int) report.EmployeeMonthlyReport {
	empID := normalizeID(emp.ID)

	var matched []attendance.Attendance
	for _, rec := range ledger {
		if normalizeID(rec.EmployeeID) != empID {
			continue
		}
		if !inPeriod(rec.Date, month, year) {
			continue
		}
		matched = append(matched, rec)
	}

	// Sort key is the calendar date, not insertion order. Records sharing a
	// date keep their relative order and are all counted: de-duplication is
	// the record producer's responsibility.
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Date.Before(matched[j].Date)
	})

	var totalHours float64
	workingDays := 0
	records := make([]report.DailyRecord, 0, len(matched))
	for _, rec := range matched {
		totalHours += rec.DurationHours()
		if rec.Status == attendance.StatusPresent {
			workingDays++
		}
		records = append(records, toDailyRecord(rec))
	}

	averageDailyHours := 0.0
	if workingDays > 0 {
		averageDailyHours = totalHours / float64(workingDays)
	}

	periodStart := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, -1)

	return report.EmployeeMonthlyReport{
		Employee:          toReportEmployee(emp),
		PeriodMonth:       month,
		PeriodYear:        year,
		PeriodStart:       periodStart.Format("2006-01-02"),
		PeriodEnd:         periodEnd.Format("2006-01-02"),
		Records:           records,
		TotalHours:        totalHours,
		WorkingDays:       workingDays,
		AverageDailyHours: averageDailyHours,
		MonthlySalary:     monthlySalary(totalHours, emp.Rate()),
	}
}

// BuildPayrollOverview computes the all-employee aggregation in a single pass
// over the ledger. Every directory employee gets exactly one row, zero-valued
// when no records match; ledger rows referencing unknown employees are
// skipped. The second return value is false when every row accumulated zero
// hours, the "no salary data for this period" state.
func BuildPayrollOverview(employees []employee.Employee, ledger []attendance.Attendance, month, year int) ([]report.PayrollOverviewRow, bool) {
	type accumulator struct {
		emp        employee.Employee
		totalHours float64
	}

	order := make([]string, 0, len(employees))
	accs := make(map[string]*accumulator, len(employees))
	for _, emp := range employees {
		key := normalizeID(emp.ID)
		accs[key] = &accumulator{emp: emp}
		order = append(order, key)
	}

	for _, rec := range ledger {
		if !inPeriod(rec.Date, month, year) {
			continue
		}
		acc, ok := accs[normalizeID(rec.EmployeeID)]
		if !ok {
			// Expected staleness: the ledger may still reference archived
			// employees.
			continue
		}
		acc.totalHours += rec.DurationHours()
	}

	rows := make([]report.PayrollOverviewRow, 0, len(order))
	hasData := false
	for _, key := range order {
		acc := accs[key]
		hours := math.Round(acc.totalHours*100) / 100
		if hours != 0 {
			hasData = true
		}
		rows = append(rows, report.PayrollOverviewRow{
			EmployeeID:        acc.emp.ID,
			DisplayName:       acc.emp.DisplayName,
			AvatarURL:         acc.emp.AvatarURL,
			HourlyRate:        acc.emp.Rate().StringFixed(2),
			TotalMonthlyHours: hours,
			MonthlySalary:     monthlySalary(hours, acc.emp.Rate()),
		})
	}

	return rows, hasData
}

func toReportEmployee(emp employee.Employee) report.ReportEmployee {
	return report.ReportEmployee{
		ID:          emp.ID,
		DisplayName: emp.DisplayName,
		HourlyRate:  emp.Rate().StringFixed(2),
		AvatarURL:   emp.AvatarURL,
	}
}

func toDailyRecord(rec attendance.Attendance) report.DailyRecord {
	var checkIn, checkOut *string
	if rec.FirstCheckIn != nil {
		s := rec.FirstCheckIn.Format(time.RFC3339)
		checkIn = &s
	}
	if rec.LastCheckOut != nil {
		s := rec.LastCheckOut.Format(time.RFC3339)
		checkOut = &s
	}

	return report.DailyRecord{
		Date:               rec.Date.Format("2006-01-02"),
		DayOfWeek:          rec.Date.Weekday().String(),
		FirstCheckIn:       checkIn,
		LastCheckOut:       checkOut,
		ClockInDisplay:     timeutil.FormatClockTime(rec.FirstCheckIn),
		ClockOutDisplay:    timeutil.FormatClockTime(rec.LastCheckOut),
		TotalDurationHours: rec.DurationHours(),
		Status:             rec.Status,
	}
}
