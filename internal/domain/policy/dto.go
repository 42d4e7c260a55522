package policy

import (
	"github.com/sathish136/mo-sub000/internal/pkg/validator"
)

// UpdateWorkingHoursRequest is a partial update for one group's policy. Nil
// fields keep their current value.
type UpdateWorkingHoursRequest struct {
	Group         string             `json:"group"`
	StartTime     *string            `json:"startTime,omitempty"`
	EndTime       *string            `json:"endTime,omitempty"`
	MinHoursForOT *float64           `json:"minHoursForOT,omitempty"`
	LateArrival   *LateArrivalUpdate `json:"lateArrivalPolicy,omitempty"`
	ShortLeave    *ShortLeaveUpdate  `json:"shortLeavePolicy,omitempty"`
}

type LateArrivalUpdate struct {
	GracePeriodUntil *string `json:"gracePeriodUntil,omitempty"`
	HalfDayAfter     *string `json:"halfDayAfter,omitempty"`
	HalfDayBefore    *string `json:"halfDayBefore,omitempty"`
}

type ShortLeaveUpdate struct {
	MorningStart        *string `json:"morningStart,omitempty"`
	MorningEnd          *string `json:"morningEnd,omitempty"`
	EveningStart        *string `json:"eveningStart,omitempty"`
	EveningEnd          *string `json:"eveningEnd,omitempty"`
	MaxPerMonth         *int    `json:"maxPerMonth,omitempty"`
	PreApprovalRequired *bool   `json:"preApprovalRequired,omitempty"`
}

func (r *UpdateWorkingHoursRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Group, ValidGroups()) {
		errs = append(errs, validator.ValidationError{
			Field:   "group",
			Message: "group must be one of: group_a, group_b",
		})
	}

	checkClock := func(field string, v *string) {
		if v != nil && !validator.IsValidClock(*v) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM 24-hour format",
			})
		}
	}

	checkClock("startTime", r.StartTime)
	checkClock("endTime", r.EndTime)

	if r.MinHoursForOT != nil && (*r.MinHoursForOT <= 0 || *r.MinHoursForOT > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "minHoursForOT",
			Message: "minHoursForOT must be between 0 and 24",
		})
	}

	if r.LateArrival != nil {
		checkClock("lateArrivalPolicy.gracePeriodUntil", r.LateArrival.GracePeriodUntil)
		checkClock("lateArrivalPolicy.halfDayAfter", r.LateArrival.HalfDayAfter)
		checkClock("lateArrivalPolicy.halfDayBefore", r.LateArrival.HalfDayBefore)
	}

	if r.ShortLeave != nil {
		checkClock("shortLeavePolicy.morningStart", r.ShortLeave.MorningStart)
		checkClock("shortLeavePolicy.morningEnd", r.ShortLeave.MorningEnd)
		checkClock("shortLeavePolicy.eveningStart", r.ShortLeave.EveningStart)
		checkClock("shortLeavePolicy.eveningEnd", r.ShortLeave.EveningEnd)

		if r.ShortLeave.MaxPerMonth != nil && *r.ShortLeave.MaxPerMonth < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "shortLeavePolicy.maxPerMonth",
				Message: "maxPerMonth must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ApplyTo merges the partial update into a copy of current and returns it.
func (r *UpdateWorkingHoursRequest) ApplyTo(current GroupPolicy) GroupPolicy {
	merged := current

	if r.StartTime != nil {
		merged.StartTime = *r.StartTime
	}
	if r.EndTime != nil {
		merged.EndTime = *r.EndTime
	}
	if r.MinHoursForOT != nil {
		merged.MinHoursForOT = *r.MinHoursForOT
	}

	if r.LateArrival != nil {
		if r.LateArrival.GracePeriodUntil != nil {
			merged.LateArrival.GracePeriodUntil = *r.LateArrival.GracePeriodUntil
		}
		if r.LateArrival.HalfDayAfter != nil {
			merged.LateArrival.HalfDayAfter = *r.LateArrival.HalfDayAfter
		}
		if r.LateArrival.HalfDayBefore != nil {
			merged.LateArrival.HalfDayBefore = *r.LateArrival.HalfDayBefore
		}
	}

	if r.ShortLeave != nil {
		if r.ShortLeave.MorningStart != nil {
			merged.ShortLeave.MorningStart = *r.ShortLeave.MorningStart
		}
		if r.ShortLeave.MorningEnd != nil {
			merged.ShortLeave.MorningEnd = *r.ShortLeave.MorningEnd
		}
		if r.ShortLeave.EveningStart != nil {
			merged.ShortLeave.EveningStart = *r.ShortLeave.EveningStart
		}
		if r.ShortLeave.EveningEnd != nil {
			merged.ShortLeave.EveningEnd = *r.ShortLeave.EveningEnd
		}
		if r.ShortLeave.MaxPerMonth != nil {
			merged.ShortLeave.MaxPerMonth = *r.ShortLeave.MaxPerMonth
		}
		if r.ShortLeave.PreApprovalRequired != nil {
			merged.ShortLeave.PreApprovalRequired = *r.ShortLeave.PreApprovalRequired
		}
	}

	return merged
}
