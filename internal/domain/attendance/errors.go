package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrEmptyImport        = errors.New("import payload contains no records")
)
