package holiday

import (
	"context"
	"time"
)

// Service defines holiday calendar logic plus the single non-working-day
// predicate the classifier consumes. A date is non-working when it has a
// calendar entry or falls on the default weekly off day (Sunday); the two
// sources are deliberately consolidated so callers never consult both.
type Service interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	List(ctx context.Context, startDate, endDate string) ([]HolidayResponse, error)
	Delete(ctx context.Context, id string) error

	// IsNonWorkingDay reports whether date is a holiday or the weekly off day.
	IsNonWorkingDay(ctx context.Context, date time.Time) (bool, error)

	// NonWorkingDays returns the set of non-working dates (YYYY-MM-DD keys) in
	// [start, end]; reports prefetch this instead of probing day by day.
	NonWorkingDays(ctx context.Context, start, end time.Time) (map[string]bool, error)
}
