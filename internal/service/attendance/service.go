package attendance

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sathish136/mo-sub000/internal/domain/attendance"
	"github.com/sathish136/mo-sub000/internal/domain/employee"
	"github.com/sathish136/mo-sub000/internal/pkg/database"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.Repository
	employeeRepo employee.Repository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.Repository,
	employeeRepo employee.Repository,
) attendance.Service {
	return &AttendanceServiceImpl{
		db:           db,
		Repository:   attendanceRepo,
		employeeRepo: employeeRepo,
	}
}

// timePtrToString safely converts a *time.Time to an RFC3339 string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(time.RFC3339)
	return &format
}

// SyncDevicePunches implements attendance.Service.
func (a *AttendanceServiceImpl) SyncDevicePunches(ctx context.Context, req attendance.SyncRequest) (attendance.SyncResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SyncResponse{}, err
	}

	// Bucket punches per employee-day; the earliest punch is the check-in, the
	// latest distinct punch is the check-out.
	type dayKey struct {
		employeeID string
		date       string
	}
	buckets := make(map[dayKey][]time.Time)
	for _, p := range req.Punches {
		ts, _ := time.Parse(time.RFC3339, p.Timestamp)
		key := dayKey{employeeID: p.EmployeeID, date: ts.Format("2006-01-02")}
		buckets[key] = append(buckets[key], ts)
	}

	keys := make([]dayKey, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].employeeID != keys[j].employeeID {
			return keys[i].employeeID < keys[j].employeeID
		}
		return keys[i].date < keys[j].date
	})

	resp := attendance.SyncResponse{}
	for _, key := range keys {
		punches := buckets[key]
		sort.Slice(punches, func(i, j int) bool { return punches[i].Before(punches[j]) })

		date, _ := time.Parse("2006-01-02", key.date)
		checkIn := punches[0]
		record := attendance.Record{
			EmployeeID: key.employeeID,
			Date:       date,
			CheckIn:    &checkIn,
			Source:     "device",
		}
		if last := punches[len(punches)-1]; last.After(checkIn) {
			checkOut := last
			record.CheckOut = &checkOut
		}

		// A later sync for the same day replaces the previous pair: devices
		// resend the full day's punch log.
		record = withDerivedHours(record)
		saved, err := a.Repository.Upsert(ctx, record)
		if err != nil {
			return attendance.SyncResponse{}, fmt.Errorf("failed to upsert synced record: %w", err)
		}

		resp.Processed++
		resp.Records = append(resp.Records, mapRecordToResponse(saved))
	}

	return resp, nil
}

// UpsertManualEntry implements attendance.Service.
func (a *AttendanceServiceImpl) UpsertManualEntry(ctx context.Context, req attendance.ManualEntryRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	if _, err := a.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return attendance.RecordResponse{}, attendance.ErrEmployeeNotFound
		}
		return attendance.RecordResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	record := attendance.Record{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Source:     "manual",
	}

	if req.CheckIn != nil {
		checkIn, _ := time.Parse(time.RFC3339, *req.CheckIn)
		record.CheckIn = &checkIn
	}
	if req.CheckOut != nil {
		checkOut, _ := time.Parse(time.RFC3339, *req.CheckOut)
		record.CheckOut = &checkOut
	}

	// Preserve the existing pair halves a correction does not touch.
	existing, err := a.Repository.GetByEmployeeAndDate(ctx, req.EmployeeID, date)
	if err != nil && !errors.Is(err, attendance.ErrRecordNotFound) {
		return attendance.RecordResponse{}, fmt.Errorf("failed to load existing record: %w", err)
	}
	if existing != nil {
		if record.CheckIn == nil {
			record.CheckIn = existing.CheckIn
		}
		if record.CheckOut == nil {
			record.CheckOut = existing.CheckOut
		}
	}

	record = withDerivedHours(record)
	saved, err := a.Repository.Upsert(ctx, record)
	if err != nil {
		return attendance.RecordResponse{}, fmt.Errorf("failed to upsert manual entry: %w", err)
	}

	return mapRecordToResponse(saved), nil
}

// ListRecords implements attendance.Service.
func (a *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.RecordFilter) ([]attendance.RecordResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, end := filter.Range()
	records, err := a.Repository.ListRange(ctx, start, end, filter.EmployeeID, filter.Group)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.RecordResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, mapRecordToResponse(record))
	}

	return responses, nil
}

// DeleteRecord implements attendance.Service.
func (a *AttendanceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	if err := a.Repository.Delete(ctx, id); err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.ErrRecordNotFound
		}
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	return nil
}

// withDerivedHours fills Record.WorkingHours from the in/out pair. Inverted or
// midnight-spanning pairs derive zero hours; classification flags them later.
func withDerivedHours(record attendance.Record) attendance.Record {
	record.WorkingHours = nil
	if record.CheckIn == nil || record.CheckOut == nil {
		return record
	}

	hours := record.CheckOut.Sub(*record.CheckIn).Hours()
	if hours < 0 || record.CheckIn.YearDay() != record.CheckOut.YearDay() {
		hours = 0
	}
	record.WorkingHours = &hours
	return record
}

// mapRecordToResponse converts a Record entity to RecordResponse.
func mapRecordToResponse(record attendance.Record) attendance.RecordResponse {
	resp := attendance.RecordResponse{
		ID:           record.ID,
		EmployeeID:   record.EmployeeID,
		Date:         record.Date.Format("2006-01-02"),
		CheckIn:      timePtrToString(record.CheckIn),
		CheckOut:     timePtrToString(record.CheckOut),
		WorkingHours: record.WorkingHours,
		Source:       record.Source,
	}
	if record.EmployeeName != nil {
		resp.FullName = *record.EmployeeName
	}
	if record.EmployeeGroup != nil {
		resp.Group = *record.EmployeeGroup
	}
	return resp
}
