package holiday

import (
	"context"
	"time"
)

// Repository defines data access for holiday calendar entries.
type Repository interface {
	Create(ctx context.Context, h Holiday) (Holiday, error)
	// ListInRange returns holidays with dates in [start, end], ordered by date.
	ListInRange(ctx context.Context, start, end time.Time) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}
