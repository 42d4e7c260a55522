package overtime

import (
	"github.com/sathish136/mo-sub000/internal/pkg/validator"
)

type CreateOvertimeRequest struct {
	EmployeeID string  `json:"employeeId"`
	Date       string  `json:"date"` // YYYY-MM-DD
	Hours      float64 `json:"hours"`
	// Status lets an admin record an already-decided claim; empty means pending.
	Status *string `json:"status,omitempty"`
}

func (r *CreateOvertimeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if r.Hours <= 0 || r.Hours > 24 {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be between 0 and 24",
		})
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, []string{"pending", "approved", "rejected"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Filter struct {
	EmployeeID *string
	Status     *string
	StartDate  *string
	EndDate    *string
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Status != nil && !validator.IsInSlice(*f.Status, []string{"pending", "approved", "rejected"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: pending, approved, rejected",
		})
	}

	if f.StartDate != nil && *f.StartDate != "" {
		if _, ok := validator.IsValidDate(*f.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "startDate",
				Message: "startDate must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, ok := validator.IsValidDate(*f.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "endDate",
				Message: "endDate must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type OvertimeResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employeeId"`
	FullName   string  `json:"fullName,omitempty"`
	Date       string  `json:"date"`
	Hours      float64 `json:"hours"`
	Status     string  `json:"status"`
}

func ToResponse(req Request) OvertimeResponse {
	resp := OvertimeResponse{
		ID:         req.ID,
		EmployeeID: req.EmployeeID,
		Date:       req.Date.Format("2006-01-02"),
		Hours:      req.Hours,
		Status:     string(req.Status),
	}
	if req.EmployeeName != nil {
		resp.FullName = *req.EmployeeName
	}
	return resp
}

// EligibleRow is one employee-day that worked past the overtime threshold but
// has no explicit request yet.
type EligibleRow struct {
	EmployeeID    string  `json:"employeeId"`
	FullName      string  `json:"fullName"`
	EmployeeGroup string  `json:"employeeGroup"`
	Date          string  `json:"date"`
	ActualHours   float64 `json:"actualHours"`
	RequiredHours float64 `json:"requiredHours"`
	OTHours       float64 `json:"otHours"`
}
