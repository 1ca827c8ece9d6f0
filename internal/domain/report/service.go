package report

import "context"

// ReportService defines the interface for report generation
type ReportService interface {
	// Generate one employee's monthly attendance report
	GenerateMonthlyReport(ctx context.Context, req MonthlyReportRequest) (EmployeeMonthlyReport, error)

	// Generate the all-employee payroll overview for a month
	GeneratePayrollOverview(ctx context.Context, req PayrollOverviewRequest) (PayrollOverview, error)
}
