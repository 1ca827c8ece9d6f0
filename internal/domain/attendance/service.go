package attendance

import "context"

type AttendanceService interface {
	List(ctx context.Context, req ListAttendanceRequest) (ListAttendanceResponse, error)
	Import(ctx context.Context, req ImportRequest) (ImportResponse, error)
}
