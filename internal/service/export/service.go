package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/staffsync/attendance-backend-go/internal/domain/report"
)

// ExportService renders computed report models into documents. It consumes
// the display-ready values as-is; all rounding happened in the aggregation.
type ExportService interface {
	MonthlyReportPDF(rep report.EmployeeMonthlyReport) ([]byte, string, error)
	PayrollOverviewPDF(overview report.PayrollOverview) ([]byte, string, error)
}

type exportServiceImpl struct{}

func NewExportService() ExportService {
	return &exportServiceImpl{}
}

// MonthlyReportPDF renders one employee's monthly report. The second return
// value is a suggested filename derived from the display name and period.
func (s *exportServiceImpl) MonthlyReportPDF(rep report.EmployeeMonthlyReport) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Monthly Attendance Report")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", rep.Employee.DisplayName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s", rep.PeriodStart, rep.PeriodEnd))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	headers := []struct {
		label string
		width float64
	}{
		{"Date", 28},
		{"Day", 30},
		{"Clock In", 28},
		{"Clock Out", 28},
		{"Hours", 22},
		{"Status", 40},
	}
	for _, h := range headers {
		pdf.CellFormat(h.width, 7, h.label, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, rec := range rep.Records {
		pdf.CellFormat(28, 7, rec.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, rec.DayOfWeek, "1", 0, "L", false, 0, "")
		pdf.CellFormat(28, 7, rec.ClockInDisplay, "1", 0, "L", false, 0, "")
		pdf.CellFormat(28, 7, rec.ClockOutDisplay, "1", 0, "L", false, 0, "")
		pdf.CellFormat(22, 7, fmt.Sprintf("%.2f", rec.TotalDurationHours), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, rec.Status, "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}
	pdf.Ln(5)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Total Hours: %.2f", rep.TotalHours))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Working Days: %d", rep.WorkingDays))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Average Daily Hours: %.2f", rep.AverageDailyHours))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Monthly Salary: %s", rep.MonthlySalary))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render report PDF: %w", err)
	}

	filename := fmt.Sprintf("attendance-report-%s-%04d-%02d.pdf",
		slugify(rep.Employee.DisplayName), rep.PeriodYear, rep.PeriodMonth)
	return buf.Bytes(), filename, nil
}

// PayrollOverviewPDF renders the all-employee payroll table.
func (s *exportServiceImpl) PayrollOverviewPDF(overview report.PayrollOverview) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payroll Overview")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Period: %04d-%02d", overview.PeriodYear, overview.PeriodMonth))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employees: %d", overview.TotalEmployees))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(70, 7, "Employee", "1", 0, "L", false, 0, "")
	pdf.CellFormat(30, 7, "Rate", "1", 0, "R", false, 0, "")
	pdf.CellFormat(35, 7, "Total Hours", "1", 0, "R", false, 0, "")
	pdf.CellFormat(40, 7, "Salary", "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range overview.Rows {
		pdf.CellFormat(70, 7, row.DisplayName, "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 7, row.HourlyRate, "1", 0, "R", false, 0, "")
		pdf.CellFormat(35, 7, fmt.Sprintf("%.2f", row.TotalMonthlyHours), "1", 0, "R", false, 0, "")
		pdf.CellFormat(40, 7, row.MonthlySalary, "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	if !overview.HasData {
		pdf.Ln(5)
		pdf.SetFont("Helvetica", "I", 10)
		pdf.Cell(0, 8, "No salary data recorded for this period.")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("failed to render overview PDF: %w", err)
	}

	filename := fmt.Sprintf("payroll-overview-%04d-%02d.pdf", overview.PeriodYear, overview.PeriodMonth)
	return buf.Bytes(), filename, nil
}

func slugify(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	var b strings.Builder
	lastDash := false
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash && b.Len() > 0 {
				b.WriteRune('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
