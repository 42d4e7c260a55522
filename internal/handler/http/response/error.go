package response

import (
	"errors"
	"net/http"

	"github.com/sathish136/mo-sub000/internal/domain/attendance"
	"github.com/sathish136/mo-sub000/internal/domain/employee"
	"github.com/sathish136/mo-sub000/internal/domain/holiday"
	"github.com/sathish136/mo-sub000/internal/domain/leave"
	"github.com/sathish136/mo-sub000/internal/domain/overtime"
	"github.com/sathish136/mo-sub000/internal/domain/policy"
	"github.com/sathish136/mo-sub000/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrEmptyPunchBatch):
		BadRequest(w, "Punch batch is empty", nil)

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Overtime domain errors
	case errors.Is(err, overtime.ErrRequestNotFound):
		NotFound(w, "Overtime request not found")
	case errors.Is(err, overtime.ErrRequestExists):
		Conflict(w, "Overtime request already exists for this employee and date")
	case errors.Is(err, overtime.ErrRequestAlreadyProcessed):
		Conflict(w, "Overtime request already processed")

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")
	case errors.Is(err, holiday.ErrHolidayExists):
		Conflict(w, "Holiday already exists for this date")

	// Policy domain errors
	case errors.Is(err, policy.ErrGroupNotFound):
		NotFound(w, "Employee group not found")
	case errors.Is(err, policy.ErrStoreUnavailable):
		InternalServerError(w, "Working hours configuration is unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
