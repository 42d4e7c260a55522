package report

import "context"

// Service builds report payloads from per-day classification and overtime
// results. Every method reads a fresh snapshot of policy and rows; nothing is
// cached between requests.
type Service interface {
	// DailySheet is one row per employee for a single date.
	DailySheet(ctx context.Context, req DailyReportRequest) ([]DailyRow, error)

	// MonthlySheet is one row per employee covering every calendar day in range.
	MonthlySheet(ctx context.Context, req RangeReportRequest) ([]MonthlyRow, error)

	// LateArrivals filters the daily stream down to late days.
	LateArrivals(ctx context.Context, req RangeReportRequest) (FilteredReport, error)

	// HalfDays filters the daily stream down to half days.
	HalfDays(ctx context.Context, req RangeReportRequest) (FilteredReport, error)

	// ShortLeaveUsage counts short-leave days per employee per month against the
	// policy quota.
	ShortLeaveUsage(ctx context.Context, req RangeReportRequest) (ShortLeaveUsageReport, error)
}
