package overtime

import (
	"context"
)

// Service defines business logic for overtime computation and approval.
type Service interface {
	// ListEligible returns the approval queue for a date: employee-days whose
	// worked hours exceed the group threshold and that have no request yet.
	ListEligible(ctx context.Context, date string) ([]EligibleRow, error)

	// CreateRequest records an explicit overtime claim for an employee-day; the
	// write and the queue re-read are atomic so an approved employee-day can
	// never be double-listed.
	CreateRequest(ctx context.Context, req CreateOvertimeRequest) (OvertimeResponse, error)

	ListRequests(ctx context.Context, filter Filter) ([]OvertimeResponse, error)
	Approve(ctx context.Context, id string) (OvertimeResponse, error)
	Reject(ctx context.Context, id string) (OvertimeResponse, error)
}
