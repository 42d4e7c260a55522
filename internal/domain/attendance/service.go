package attendance

import (
	"context"
)

// Service defines business logic for raw attendance records. Classification of
// these records into daily statuses lives in the report pipeline; this service
// only maintains the raw check-in/check-out data the classifier consumes.
type Service interface {
	// SyncDevicePunches folds a batch of biometric punches into per-employee-day
	// records: first punch of a day is the check-in, the last distinct punch is
	// the check-out.
	SyncDevicePunches(ctx context.Context, req SyncRequest) (SyncResponse, error)

	// UpsertManualEntry creates or corrects one employee-day record.
	UpsertManualEntry(ctx context.Context, req ManualEntryRequest) (RecordResponse, error)

	// ListRecords returns raw records matching the filter.
	ListRecords(ctx context.Context, filter RecordFilter) ([]RecordResponse, error)

	// DeleteRecord removes a record by ID.
	DeleteRecord(ctx context.Context, id string) error
}
