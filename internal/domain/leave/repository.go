package leave

import (
	"context"
	"time"
)

// Repository defines data access for leave requests.
type Repository interface {
	Create(ctx context.Context, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	// List returns requests matching the filter, newest first.
	List(ctx context.Context, filter Filter) ([]Request, error)
	// ListApprovedInRange returns approved requests whose range overlaps
	// [start, end]; reports use it to decide OnLeave days.
	ListApprovedInRange(ctx context.Context, start, end time.Time, employeeID *string) ([]Request, error)
	UpdateStatus(ctx context.Context, id string, status RequestStatus) error
}
