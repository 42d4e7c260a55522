package attendance

import "errors"

// Attendance domain errors
var (
	ErrRecordNotFound   = errors.New("attendance record not found")
	ErrEmployeeNotFound = errors.New("employee not found for attendance record")
	ErrEmptyPunchBatch  = errors.New("device punch batch is empty")
)
