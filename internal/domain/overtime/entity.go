package overtime

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Request is an explicit overtime claim for one employee-day. Its hours override
// the calculated figure for display and approval only; the underlying
// worked-hours computation is untouched.
type Request struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Hours      float64
	Status     RequestStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for responses
	EmployeeName *string
}

// Override carries an explicit request's value alongside the calculated one so
// both stay auditable.
type Override struct {
	Hours  float64
	Status RequestStatus
}

// Result is the calculator's verdict for one employee-day.
type Result struct {
	ActualHours    float64
	RequiredHours  float64
	OTHours        float64
	ApprovalStatus RequestStatus
	Override       *Override
}

// EffectiveHours is the value totals should use: an approved override wins over
// the calculated figure, everything else keeps the calculation.
func (r Result) EffectiveHours() float64 {
	if r.Override != nil && r.Override.Status == RequestStatusApproved {
		return r.Override.Hours
	}
	return r.OTHours
}
