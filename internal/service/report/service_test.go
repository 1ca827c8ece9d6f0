package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staffsync/attendance-backend-go/internal/domain/attendance"
	"github.com/staffsync/attendance-backend-go/internal/domain/employee"
	"github.com/staffsync/attendance-backend-go/internal/domain/report"
	"github.com/staffsync/attendance-backend-go/internal/pkg/validator"
)

type fakeEmployeeRepo struct {
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetAll(_ context.Context) ([]employee.Employee, error) {
	return f.employees, nil
}

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) List(_ context.Context, filter attendance.ListAttendanceRequest) ([]attendance.Attendance, error) {
	return f.records, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndPeriod(_ context.Context, employeeID string, month, year int) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID && inPeriod(rec.Date, month, year) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) GetByPeriod(_ context.Context, month, year int) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if inPeriod(rec.Date, month, year) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) CreateBatch(_ context.Context, records []attendance.Attendance) (int, error) {
	f.records = append(f.records, records...)
	return len(records), nil
}

func TestReportService_GenerateMonthlyReport(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewReportService(
		&fakeEmployeeRepo{employees: []employee.Employee{testEmployee("1", 10)}},
		&fakeAttendanceRepo{records: []attendance.Attendance{
			testRecord("1", "2025-05-01", 8, attendance.StatusPresent),
			testRecord("1", "2025-05-02", 4, attendance.StatusAbsent),
		}},
	)

	result, err := svc.GenerateMonthlyReport(ctx, report.MonthlyReportRequest{
		EmployeeID: "1",
		Month:      5,
		Year:       2025,
	})

	require.NoError(t, err)
	assert.Equal(t, 12.0, result.TotalHours)
	assert.Equal(t, 1, result.WorkingDays)
	assert.Equal(t, "120.00", result.MonthlySalary)
	assert.NotEmpty(t, result.GeneratedAt)
}

func TestReportService_GenerateMonthlyReport_UnknownEmployee(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewReportService(&fakeEmployeeRepo{}, &fakeAttendanceRepo{})

	_, err := svc.GenerateMonthlyReport(ctx, report.MonthlyReportRequest{
		EmployeeID: "missing",
		Month:      5,
		Year:       2025,
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestReportService_GenerateMonthlyReport_InvalidRequest(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewReportService(&fakeEmployeeRepo{}, &fakeAttendanceRepo{})

	_, err := svc.GenerateMonthlyReport(ctx, report.MonthlyReportRequest{
		EmployeeID: "1",
		Month:      13,
		Year:       2025,
	})

	require.Error(t, err)
	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "month")
}

func TestReportService_GeneratePayrollOverview(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewReportService(
		&fakeEmployeeRepo{employees: []employee.Employee{
			testEmployee("1", 10),
			testEmployee("2", 20),
		}},
		&fakeAttendanceRepo{records: []attendance.Attendance{
			testRecord("1", "2025-05-01", 8, attendance.StatusPresent),
		}},
	)

	result, err := svc.GeneratePayrollOverview(ctx, report.PayrollOverviewRequest{
		Month: 5,
		Year:  2025,
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.TotalEmployees)
	assert.True(t, result.HasData)
	assert.Len(t, result.Rows, 2)
	assert.NotEmpty(t, result.GeneratedAt)
}

func TestReportService_GeneratePayrollOverview_NoData(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	svc := NewReportService(
		&fakeEmployeeRepo{employees: []employee.Employee{testEmployee("1", 10)}},
		&fakeAttendanceRepo{},
	)

	result, err := svc.GeneratePayrollOverview(ctx, report.PayrollOverviewRequest{
		Month: 5,
		Year:  2025,
	})

	require.NoError(t, err)
	assert.False(t, result.HasData)
	require.Len(t, result.Rows, 1)
	assert.Zero(t, result.Rows[0].TotalMonthlyHours)
}
