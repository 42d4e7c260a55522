package leave

import (
	"context"
	"time"
)

// Service defines business logic for leave requests.
type Service interface {
	CreateRequest(ctx context.Context, req CreateLeaveRequest) (LeaveResponse, error)
	ListRequests(ctx context.Context, filter Filter) ([]LeaveResponse, error)
	Approve(ctx context.Context, id string) (LeaveResponse, error)
	Reject(ctx context.Context, id string) (LeaveResponse, error)

	// ApprovedCoverage returns, per employee, the set of dates in [start, end]
	// covered by an approved request. Reports consult it before classifying.
	ApprovedCoverage(ctx context.Context, start, end time.Time, employeeID *string) (map[string]map[string]bool, error)
}
