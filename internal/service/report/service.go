package report

import (
	"context"
	"fmt"
	"time"

	"github.com/staffsync/attendance-backend-go/internal/domain/attendance"
	"github.com/staffsync/attendance-backend-go/internal/domain/employee"
	"github.com/staffsync/attendance-backend-go/internal/domain/report"
)

type ReportServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewReportService(
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
) report.ReportService {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
	}
}

// GenerateMonthlyReport generates one employee's monthly attendance report
func (s *ReportServiceImpl) GenerateMonthlyReport(ctx context.Context, req report.MonthlyReportRequest) (report.EmployeeMonthlyReport, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return report.EmployeeMonthlyReport{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return report.EmployeeMonthlyReport{}, err
	}

	records, err := s.attendanceRepo.GetByEmployeeAndPeriod(ctx, emp.ID, req.Month, req.Year)
	if err != nil {
		return report.EmployeeMonthlyReport{}, fmt.Errorf("failed to get attendance data: %w", err)
	}

	result := BuildMonthlyReport(emp, records, req.Month, req.Year)
	result.GeneratedAt = time.Now().Format(time.RFC3339)
	return result, nil
}

// GeneratePayrollOverview generates the all-employee payroll overview
func (s *ReportServiceImpl) GeneratePayrollOverview(ctx context.Context, req report.PayrollOverviewRequest) (report.PayrollOverview, error) {
	// Validate request
	if err := req.Validate(); err != nil {
		return report.PayrollOverview{}, err
	}

	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return report.PayrollOverview{}, fmt.Errorf("failed to get employee directory: %w", err)
	}

	records, err := s.attendanceRepo.GetByPeriod(ctx, req.Month, req.Year)
	if err != nil {
		return report.PayrollOverview{}, fmt.Errorf("failed to get attendance data: %w", err)
	}

	rows, hasData := BuildPayrollOverview(employees, records, req.Month, req.Year)

	return report.PayrollOverview{
		PeriodMonth:    req.Month,
		PeriodYear:     req.Year,
		GeneratedAt:    time.Now().Format(time.RFC3339),
		TotalEmployees: len(rows),
		HasData:        hasData,
		Rows:           rows,
	}, nil
}
