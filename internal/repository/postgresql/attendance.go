package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/staffsync/attendance-backend-go/internal/domain/attendance"
	"github.com/staffsync/attendance-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// periodBounds returns the half-open [start, end) date range for a month.
func periodBounds(month, year int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

const attendanceColumns = `
	id, employee_id, date, first_check_in, last_check_out,
	total_duration_hours, status, created_at, updated_at
`

func scanAttendanceRows(rows pgx.Rows) ([]attendance.Attendance, error) {
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var rec attendance.Attendance
		err := rows.Scan(
			&rec.ID, &rec.EmployeeID, &rec.Date, &rec.FirstCheckIn, &rec.LastCheckOut,
			&rec.TotalDurationHours, &rec.Status, &rec.CreatedAt, &rec.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// List implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.ListAttendanceRequest) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	start, end := periodBounds(filter.Month, filter.Year)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE date >= $1 AND date < $2
	`
	args := []interface{}{start, end}

	if filter.EmployeeID != "" {
		query += ` AND employee_id = $3`
		args = append(args, filter.EmployeeID)
	}
	query += ` ORDER BY date ASC, employee_id ASC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}

	return scanAttendanceRows(rows)
}

// GetByEmployeeAndPeriod implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	start, end := periodBounds(month, year)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND date >= $2 AND date < $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance for employee %s: %w", employeeID, err)
	}

	return scanAttendanceRows(rows)
}

// GetByPeriod implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByPeriod(ctx context.Context, month, year int) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	start, end := periodBounds(month, year)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE date >= $1 AND date < $2
		ORDER BY employee_id ASC, date ASC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance for period %d-%d: %w", year, month, err)
	}

	return scanAttendanceRows(rows)
}

// CreateBatch implements attendance.AttendanceRepository. The whole dump goes
// in one transaction: a partial import would double-count on retry.
func (a *attendanceRepositoryImpl) CreateBatch(ctx context.Context, records []attendance.Attendance) (int, error) {
	batch := &pgx.Batch{}
	insert := `
		INSERT INTO attendances (
			id, employee_id, date, first_check_in, last_check_out,
			total_duration_hours, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	for _, rec := range records {
		batch.Queue(insert,
			rec.ID, rec.EmployeeID, rec.Date, rec.FirstCheckIn, rec.LastCheckOut,
			rec.TotalDurationHours, rec.Status, rec.CreatedAt, rec.UpdatedAt,
		)
	}

	inserted := 0
	err := WithTransaction(ctx, a.db, func(tx pgx.Tx) error {
		results := tx.SendBatch(ctx, batch)
		for range records {
			tag, err := results.Exec()
			if err != nil {
				results.Close()
				return fmt.Errorf("failed to insert attendance record: %w", err)
			}
			inserted += int(tag.RowsAffected())
		}
		return results.Close()
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}
