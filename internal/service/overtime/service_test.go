package overtime

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sathish136/mo-sub000/internal/domain/attendance"
	"github.com/sathish136/mo-sub000/internal/domain/overtime"
	"github.com/sathish136/mo-sub000/internal/domain/policy"
	"github.com/sathish136/mo-sub000/internal/pkg/validator"
)

// stubOvertimeRepo keeps requests in memory with the same uniqueness rule the
// table enforces.
type stubOvertimeRepo struct {
	requests []overtime.Request
}

func (s *stubOvertimeRepo) Create(ctx context.Context, req overtime.Request) (overtime.Request, error) {
	for _, existing := range s.requests {
		if existing.EmployeeID == req.EmployeeID && existing.Date.Equal(req.Date) {
			return overtime.Request{}, overtime.ErrRequestExists
		}
	}
	req.ID = fmt.Sprintf("ot-%d", len(s.requests)+1)
	s.requests = append(s.requests, req)
	return req, nil
}

func (s *stubOvertimeRepo) CreateTx(ctx context.Context, tx pgx.Tx, req overtime.Request) (overtime.Request, error) {
	return s.Create(ctx, req)
}

func (s *stubOvertimeRepo) GetByID(ctx context.Context, id string) (overtime.Request, error) {
	for _, req := range s.requests {
		if req.ID == id {
			return req, nil
		}
	}
	return overtime.Request{}, overtime.ErrRequestNotFound
}

func (s *stubOvertimeRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*overtime.Request, error) {
	for _, req := range s.requests {
		if req.EmployeeID == employeeID && req.Date.Equal(date) {
			return &req, nil
		}
	}
	return nil, nil
}

func (s *stubOvertimeRepo) ListInRange(ctx context.Context, start, end time.Time, employeeID *string) ([]overtime.Request, error) {
	var out []overtime.Request
	for _, req := range s.requests {
		if req.Date.Before(start) || req.Date.After(end) {
			continue
		}
		if employeeID != nil && req.EmployeeID != *employeeID {
			continue
		}
		out = append(out, req)
	}
	return out, nil
}

func (s *stubOvertimeRepo) List(ctx context.Context, filter overtime.Filter) ([]overtime.Request, error) {
	return s.requests, nil
}

func (s *stubOvertimeRepo) UpdateStatus(ctx context.Context, id string, status overtime.RequestStatus) error {
	for i, req := range s.requests {
		if req.ID == id {
			s.requests[i].Status = status
			return nil
		}
	}
	return overtime.ErrRequestNotFound
}

// stubAttendanceRepo serves fixed records from memory.
type stubAttendanceRepo struct {
	records []attendance.Record
}

func (s *stubAttendanceRepo) Upsert(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	s.records = append(s.records, record)
	return record, nil
}

func (s *stubAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Record, error) {
	for _, rec := range s.records {
		if rec.EmployeeID == employeeID && rec.Date.Equal(date) {
			return &rec, nil
		}
	}
	return nil, nil
}

func (s *stubAttendanceRepo) ListRange(ctx context.Context, start, end time.Time, employeeID, group *string) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range s.records {
		if rec.Date.Before(start) || rec.Date.After(end) {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

func (s *stubAttendanceRepo) Delete(ctx context.Context, id string) error {
	return nil
}

// stubPolicyService always serves the built-in defaults.
type stubPolicyService struct{}

func (stubPolicyService) GetGroupWorkingHours(ctx context.Context) (map[string]policy.GroupPolicy, error) {
	return policy.Defaults(), nil
}

func (stubPolicyService) GetGroupPolicy(ctx context.Context, group string) (policy.GroupPolicy, error) {
	pol, ok := policy.Defaults()[group]
	if !ok {
		return policy.GroupPolicy{}, policy.ErrGroupNotFound
	}
	return pol, nil
}

func (stubPolicyService) UpdateGroupWorkingHours(ctx context.Context, req policy.UpdateWorkingHoursRequest) (map[string]policy.GroupPolicy, error) {
	return policy.Defaults(), nil
}

func workedRecord(employeeID, name, group string, d time.Time, hours float64) attendance.Record {
	return attendance.Record{
		ID:            employeeID + "-" + d.Format("2006-01-02"),
		EmployeeID:    employeeID,
		Date:          d,
		WorkingHours:  &hours,
		Source:        "device",
		EmployeeName:  &name,
		EmployeeGroup: &group,
	}
}

func TestListEligibleExcludesRequestedEmployees(t *testing.T) {
	t.Parallel()

	d := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	otRepo := &stubOvertimeRepo{}
	attRepo := &stubAttendanceRepo{records: []attendance.Record{
		workedRecord("emp-a", "Nimal Perera", policy.GroupA, d, 8.5), // 0.75 OT over 7.75
		workedRecord("emp-b", "Kamala Silva", policy.GroupB, d, 9.0), // 1.0 OT over 8.0
	}}
	svc := NewOvertimeService(nil, otRepo, attRepo, stubPolicyService{})

	rows, err := svc.ListEligible(context.Background(), "2025-03-10")
	require.NoError(t, err)
	require.Len(t, rows, 2)

	_, err = otRepo.Create(context.Background(), overtime.Request{
		EmployeeID: "emp-a",
		Date:       d,
		Hours:      0.75,
		Status:     overtime.RequestStatusPending,
	})
	require.NoError(t, err)

	// The employee-day drops out of the queue once a request exists for it.
	rows, err = svc.ListEligible(context.Background(), "2025-03-10")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "emp-b", rows[0].EmployeeID)
	assert.Equal(t, "Kamala Silva", rows[0].FullName)
	assert.InDelta(t, 1.0, rows[0].OTHours, 0.001)
}

func TestListEligibleSkipsBelowThresholdAndMissingHours(t *testing.T) {
	t.Parallel()

	d := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	noHours := workedRecord("emp-b", "Kamala Silva", policy.GroupB, d, 0)
	noHours.WorkingHours = nil
	attRepo := &stubAttendanceRepo{records: []attendance.Record{
		workedRecord("emp-a", "Nimal Perera", policy.GroupA, d, 7.5), // under the 7.75 threshold
		noHours,
	}}
	svc := NewOvertimeService(nil, &stubOvertimeRepo{}, attRepo, stubPolicyService{})

	rows, err := svc.ListEligible(context.Background(), "2025-03-10")
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestListEligibleUnknownGroupFallsBackToDefaultRequired(t *testing.T) {
	t.Parallel()

	d := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	attRepo := &stubAttendanceRepo{records: []attendance.Record{
		workedRecord("emp-c", "Sunil Fernando", "group_x", d, 9.0),
	}}
	svc := NewOvertimeService(nil, &stubOvertimeRepo{}, attRepo, stubPolicyService{})

	rows, err := svc.ListEligible(context.Background(), "2025-03-10")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.InDelta(t, policy.DefaultRequiredHours, rows[0].RequiredHours, 0.001)
	assert.InDelta(t, 1.0, rows[0].OTHours, 0.001)
}

func TestListEligibleRejectsMalformedDate(t *testing.T) {
	t.Parallel()

	svc := NewOvertimeService(nil, &stubOvertimeRepo{}, &stubAttendanceRepo{}, stubPolicyService{})

	_, err := svc.ListEligible(context.Background(), "10-03-2025")
	require.Error(t, err)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "date", verrs[0].Field)
}

func TestApproveRejectsAlreadyProcessedRequest(t *testing.T) {
	t.Parallel()

	d := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	otRepo := &stubOvertimeRepo{}
	created, err := otRepo.Create(context.Background(), overtime.Request{
		EmployeeID: "emp-a",
		Date:       d,
		Hours:      1.5,
		Status:     overtime.RequestStatusPending,
	})
	require.NoError(t, err)

	svc := NewOvertimeService(nil, otRepo, &stubAttendanceRepo{}, stubPolicyService{})

	resp, err := svc.Approve(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, string(overtime.RequestStatusApproved), resp.Status)

	_, err = svc.Reject(context.Background(), created.ID)
	assert.ErrorIs(t, err, overtime.ErrRequestAlreadyProcessed)
}
