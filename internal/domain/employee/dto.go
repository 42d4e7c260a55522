package employee

import (
	"github.com/sathish136/mo-sub000/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	Code     string `json:"code"`
	FullName string `json:"fullName"`
	Group    string `json:"employeeGroup"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeCode(r.Code) {
		errs = append(errs, validator.ValidationError{
			Field:   "code",
			Message: "code must be 3-20 uppercase letters, digits or dashes",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "fullName",
			Message: "fullName is required",
		})
	}

	if !validator.IsInSlice(r.Group, []string{"group_a", "group_b"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeGroup",
			Message: "employeeGroup must be one of: group_a, group_b",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateEmployeeRequest struct {
	ID       string  `json:"-"`
	FullName *string `json:"fullName,omitempty"`
	Group    *string `json:"employeeGroup,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil && validator.IsEmpty(*r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "fullName",
			Message: "fullName must not be empty",
		})
	}

	if r.Group != nil && !validator.IsInSlice(*r.Group, []string{"group_a", "group_b"}) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeGroup",
			Message: "employeeGroup must be one of: group_a, group_b",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type Filter struct {
	EmployeeID *string
	Group      *string
	// IncludeInactive keeps deactivated employees in listings.
	IncludeInactive bool
}

type EmployeeResponse struct {
	ID       string `json:"id"`
	Code     string `json:"code"`
	FullName string `json:"fullName"`
	Group    string `json:"employeeGroup"`
	Active   bool   `json:"active"`
}

func ToResponse(emp Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:       emp.ID,
		Code:     emp.Code,
		FullName: emp.FullName,
		Group:    emp.Group,
		Active:   emp.Active,
	}
}
