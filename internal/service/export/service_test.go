package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffsync/attendance-backend-go/internal/domain/report"
)

func TestMonthlyReportPDF(t *testing.T) {
	svc := NewExportService()

	rep := report.EmployeeMonthlyReport{
		Employee: report.ReportEmployee{
			ID:          "1",
			DisplayName: "Ada Lovelace",
			HourlyRate:  "10.00",
		},
		PeriodMonth: 5,
		PeriodYear:  2025,
		PeriodStart: "2025-05-01",
		PeriodEnd:   "2025-05-31",
		Records: []report.DailyRecord{
			{
				Date:               "2025-05-01",
				DayOfWeek:          "Thursday",
				ClockInDisplay:     "09:00 AM",
				ClockOutDisplay:    "05:00 PM",
				TotalDurationHours: 8,
				Status:             "Present",
			},
		},
		TotalHours:        8,
		WorkingDays:       1,
		AverageDailyHours: 8,
		MonthlySalary:     "80.00",
	}

	data, filename, err := svc.MonthlyReportPDF(rep)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
	assert.Equal(t, "attendance-report-ada-lovelace-2025-05.pdf", filename)
}

func TestPayrollOverviewPDF(t *testing.T) {
	svc := NewExportService()

	overview := report.PayrollOverview{
		PeriodMonth:    5,
		PeriodYear:     2025,
		TotalEmployees: 1,
		HasData:        false,
		Rows: []report.PayrollOverviewRow{
			{
				EmployeeID:        "1",
				DisplayName:       "Ada Lovelace",
				HourlyRate:        "10.00",
				TotalMonthlyHours: 0,
				MonthlySalary:     "0.00",
			},
		},
	}

	data, filename, err := svc.PayrollOverviewPDF(overview)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
	assert.Equal(t, "payroll-overview-2025-05.pdf", filename)
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Ada Lovelace", "ada-lovelace"},
		{"  O'Brien, Pat  ", "o-brien-pat"},
		{"X", "x"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, slugify(c.input))
	}
}
