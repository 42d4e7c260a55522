package overtime

import (
	"github.com/sathish136/mo-sub000/internal/domain/overtime"
	"github.com/sathish136/mo-sub000/internal/domain/policy"
)

// Calculate derives overtime for one employee-day:
//
//	otHours = max(0, actualHours - requiredHours)
//
// requiredHours comes from the group policy's minHoursForOT; a nil policy (group
// lookup failed) falls back to the documented 8-hour default. An existing
// request for the pair is attached as an override and its status surfaces as the
// approval status; with no request, a positive otHours means the employee is
// eligible but unsubmitted, which reads as pending.
func Calculate(actualHours float64, pol *policy.GroupPolicy, existing *overtime.Request) overtime.Result {
	required := policy.DefaultRequiredHours
	if pol != nil {
		required = pol.RequiredHours()
	}

	ot := actualHours - required
	if ot < 0 {
		ot = 0
	}

	result := overtime.Result{
		ActualHours:   actualHours,
		RequiredHours: required,
		OTHours:       ot,
	}

	if existing != nil {
		result.ApprovalStatus = existing.Status
		result.Override = &overtime.Override{
			Hours:  existing.Hours,
			Status: existing.Status,
		}
	} else if ot > 0 {
		result.ApprovalStatus = overtime.RequestStatusPending
	}

	return result
}
