package attendance

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/staffsync/attendance-backend-go/internal/domain/attendance"
	"github.com/staffsync/attendance-backend-go/internal/domain/employee"
	"github.com/staffsync/attendance-backend-go/internal/pkg/timeutil"
	"github.com/staffsync/attendance-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

// List returns ledger records for a period with display-formatted clock
// times alongside the raw timestamps.
func (s *AttendanceServiceImpl) List(ctx context.Context, req attendance.ListAttendanceRequest) (attendance.ListAttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ListAttendanceResponse{}, err
	}

	records, err := s.attendanceRepo.List(ctx, req)
	if err != nil {
		return attendance.ListAttendanceResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}

	return attendance.ListAttendanceResponse{
		Records: responses,
		Total:   len(responses),
	}, nil
}

// Import ingests a ledger dump from the upstream record producer. Records
// referencing unknown employees are skipped, not rejected: the directory and
// the ledger evolve independently. When a row carries no precomputed duration
// but has both timestamps, the duration is derived live.
func (s *AttendanceServiceImpl) Import(ctx context.Context, req attendance.ImportRequest) (attendance.ImportResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ImportResponse{}, err
	}

	employees, err := s.employeeRepo.GetAll(ctx)
	if err != nil {
		return attendance.ImportResponse{}, fmt.Errorf("failed to get employee directory: %w", err)
	}

	known := make(map[string]string, len(employees))
	for _, emp := range employees {
		known[strings.TrimSpace(emp.ID)] = emp.ID
	}

	now := time.Now().UTC()
	records := make([]attendance.Attendance, 0, len(req.Records))
	skipped := 0
	for _, in := range req.Records {
		employeeID, ok := known[in.EmployeeID.String()]
		if !ok {
			skipped++
			continue
		}

		date, _ := validator.IsValidDate(in.Date)
		checkIn := timeutil.ParseTimestamp(in.FirstCheckIn)
		checkOut := timeutil.ParseTimestamp(in.LastCheckOut)

		duration := in.TotalDurationHours
		if duration == nil && checkIn != nil && checkOut != nil {
			derived, err := strconv.ParseFloat(timeutil.ComputeDurationHours(checkIn, checkOut), 64)
			if err == nil {
				duration = &derived
			}
		}

		records = append(records, attendance.Attendance{
			ID:                 uuid.NewString(),
			EmployeeID:         employeeID,
			Date:               date,
			FirstCheckIn:       checkIn,
			LastCheckOut:       checkOut,
			TotalDurationHours: duration,
			Status:             in.Status,
			CreatedAt:          now,
			UpdatedAt:          now,
		})
	}

	imported := 0
	if len(records) > 0 {
		imported, err = s.attendanceRepo.CreateBatch(ctx, records)
		if err != nil {
			return attendance.ImportResponse{}, fmt.Errorf("failed to import attendance records: %w", err)
		}
	}

	return attendance.ImportResponse{
		Imported: imported,
		Skipped:  skipped,
	}, nil
}

func toResponse(rec attendance.Attendance) attendance.AttendanceResponse {
	var checkIn, checkOut *string
	if rec.FirstCheckIn != nil {
		s := rec.FirstCheckIn.Format(time.RFC3339)
		checkIn = &s
	}
	if rec.LastCheckOut != nil {
		s := rec.LastCheckOut.Format(time.RFC3339)
		checkOut = &s
	}

	return attendance.AttendanceResponse{
		ID:                 rec.ID,
		EmployeeID:         rec.EmployeeID,
		Date:               rec.Date.Format("2006-01-02"),
		FirstCheckIn:       checkIn,
		LastCheckOut:       checkOut,
		ClockInDisplay:     timeutil.FormatClockTime(rec.FirstCheckIn),
		ClockOutDisplay:    timeutil.FormatClockTime(rec.LastCheckOut),
		TotalDurationHours: rec.DurationHours(),
		Status:             rec.Status,
	}
}
