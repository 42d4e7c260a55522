package leave

import (
	"github.com/sathish136/mo-sub000/internal/pkg/validator"
)

var validLeaveTypes = []string{"annual", "casual", "medical", "unpaid"}

type CreateLeaveRequest struct {
	EmployeeID string  `json:"employeeId"`
	StartDate  string  `json:"startDate"` // YYYY-MM-DD
	EndDate    string  `json:"endDate"`   // YYYY-MM-DD
	LeaveType  string  `json:"leaveType"`
	Reason     *string `json:"reason,omitempty"`
}

func (r *CreateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "startDate must be in YYYY-MM-DD format",
		})
	}

	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must be in YYYY-MM-DD format",
		})
	}

	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "endDate",
			Message: "endDate must not be before startDate",
		})
	}

	if !validator.IsInSlice(r.LeaveType, validLeaveTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "leaveType",
			Message: "leaveType must be one of: annual, casual, medical, unpaid",
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

	if f.Status != nil {
		validStatuses := []string{"pending", "approved", "rejected"}
		if !validator.IsInSlice(*f.Status, validStatuses) {
			errs = append(errs, validator.ValidationError{
				Field:   "status",
				Message: "status must be one of: pending, approved, rejected",
			})
		}
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

type LeaveResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employeeId"`
	FullName     string  `json:"fullName,omitempty"`
	StartDate    string  `json:"startDate"`
	EndDate      string  `json:"endDate"`
	LeaveType    string  `json:"leaveType"`
	Reason       *string `json:"reason,omitempty"`
	Status       string  `json:"status"`
	SubmittedAt  string  `json:"submittedAt"`
}

func ToResponse(req Request) LeaveResponse {
	resp := LeaveResponse{
		ID:          req.ID,
		EmployeeID:  req.EmployeeID,
		StartDate:   req.StartDate.Format("2006-01-02"),
		EndDate:     req.EndDate.Format("2006-01-02"),
		LeaveType:   req.LeaveType,
		Reason:      req.Reason,
		Status:      string(req.Status),
		SubmittedAt: req.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if req.EmployeeName != nil {
		resp.FullName = *req.EmployeeName
	}
	return resp
}
