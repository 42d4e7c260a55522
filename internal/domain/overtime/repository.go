package overtime

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
)

// Repository defines data access for overtime requests.
type Repository interface {
	// Create inserts a new request; ErrRequestExists when the employee-day
	// already has one.
	Create(ctx context.Context, req Request) (Request, error)
	// CreateTx is Create inside an existing transaction; the approval flow needs
	// the insert and the eligibility re-read to be atomic.
	CreateTx(ctx context.Context, tx pgx.Tx, req Request) (Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	// GetByEmployeeAndDate returns nil when no request exists for the pair.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Request, error)
	// ListInRange returns all requests with dates in [start, end].
	ListInRange(ctx context.Context, start, end time.Time, employeeID *string) ([]Request, error)
	List(ctx context.Context, filter Filter) ([]Request, error)
	UpdateStatus(ctx context.Context, id string, status RequestStatus) error
}
