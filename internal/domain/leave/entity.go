package leave

import "time"

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

// Request is one employee's leave application over an inclusive date range.
// Only approved requests suppress attendance classification for covered days.
type Request struct {
	ID         string
	EmployeeID string
	StartDate  time.Time
	EndDate    time.Time
	LeaveType  string
	Reason     *string
	Status     RequestStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined for responses
	EmployeeName *string
}

// Covers reports whether the request's range contains the given calendar day.
func (r Request) Covers(date time.Time) bool {
	d := date.Format("2006-01-02")
	return r.StartDate.Format("2006-01-02") <= d && d <= r.EndDate.Format("2006-01-02")
}
