package attendance

import (
	"context"
	"time"
)

// Repository defines data access for raw attendance records.
type Repository interface {
	// Upsert inserts or replaces the record for its employee-day pair.
	Upsert(ctx context.Context, record Record) (Record, error)

	// GetByEmployeeAndDate returns nil when the employee has no record that day.
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Record, error)

	// ListRange returns all records in [start, end] joined with employee data,
	// optionally narrowed to one employee or one group, ordered by employee then date.
	ListRange(ctx context.Context, start, end time.Time, employeeID, group *string) ([]Record, error)

	// Delete removes a record by ID.
	Delete(ctx context.Context, id string) error
}
