package attendance

import (
	"context"
)

// AttendanceRepository reads the attendance ledger and accepts bulk imports
// from the upstream record-producing system. Aggregation never writes back.
type AttendanceRepository interface {
	// List retrieves ledger records filtered by employee and period.
	List(ctx context.Context, filter ListAttendanceRequest) ([]Attendance, error)

	// GetByEmployeeAndPeriod retrieves one employee's records for a month.
	GetByEmployeeAndPeriod(ctx context.Context, employeeID string, month, year int) ([]Attendance, error)

	// GetByPeriod retrieves every employee's records for a month.
	GetByPeriod(ctx context.Context, month, year int) ([]Attendance, error)

	// CreateBatch inserts imported ledger records in one round trip.
	CreateBatch(ctx context.Context, records []Attendance) (int, error)
}
