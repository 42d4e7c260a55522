package overtime

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/sathish136/mo-sub000/internal/domain/attendance"
	"github.com/sathish136/mo-sub000/internal/domain/overtime"
	"github.com/sathish136/mo-sub000/internal/domain/policy"
	"github.com/sathish136/mo-sub000/internal/pkg/database"
	"github.com/sathish136/mo-sub000/internal/pkg/validator"
	"github.com/sathish136/mo-sub000/internal/repository/postgresql"
)

type OvertimeServiceImpl struct {
	db *database.DB
	overtime.Repository
	attendanceRepo attendance.Repository
	policyService  policy.Service
}

func NewOvertimeService(
	db *database.DB,
	overtimeRepo overtime.Repository,
	attendanceRepo attendance.Repository,
	policyService policy.Service,
) overtime.Service {
	return &OvertimeServiceImpl{
		db:             db,
		Repository:     overtimeRepo,
		attendanceRepo: attendanceRepo,
		policyService:  policyService,
	}
}

// ListEligible implements overtime.Service.
func (s *OvertimeServiceImpl) ListEligible(ctx context.Context, date string) ([]overtime.EligibleRow, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return nil, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	policies, err := s.policyService.GetGroupWorkingHours(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load working-hours config: %w", err)
	}

	records, err := s.attendanceRepo.ListRange(ctx, day, day, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for eligibility: %w", err)
	}

	requests, err := s.Repository.ListInRange(ctx, day, day, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}
	requested := make(map[string]bool, len(requests))
	for _, req := range requests {
		requested[req.EmployeeID] = true
	}

	rows := make([]overtime.EligibleRow, 0)
	for _, record := range records {
		if record.WorkingHours == nil || requested[record.EmployeeID] {
			continue
		}

		var pol *policy.GroupPolicy
		if record.EmployeeGroup != nil {
			if p, ok := policies[*record.EmployeeGroup]; ok {
				pol = &p
			}
		}

		result := Calculate(*record.WorkingHours, pol, nil)
		if result.OTHours <= 0 {
			continue
		}

		row := overtime.EligibleRow{
			EmployeeID:    record.EmployeeID,
			Date:          record.Date.Format("2006-01-02"),
			ActualHours:   result.ActualHours,
			RequiredHours: result.RequiredHours,
			OTHours:       result.OTHours,
		}
		if record.EmployeeName != nil {
			row.FullName = *record.EmployeeName
		}
		if record.EmployeeGroup != nil {
			row.EmployeeGroup = *record.EmployeeGroup
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// CreateRequest implements overtime.Service.
func (s *OvertimeServiceImpl) CreateRequest(ctx context.Context, req overtime.CreateOvertimeRequest) (overtime.OvertimeResponse, error) {
	if err := req.Validate(); err != nil {
		return overtime.OvertimeResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	status := overtime.RequestStatusPending
	if req.Status != nil {
		status = overtime.RequestStatus(*req.Status)
	}

	var created overtime.Request
	// The insert and the duplicate check run inside one transaction so an
	// eligibility re-query immediately after observes the new request.
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		var txErr error
		created, txErr = s.Repository.CreateTx(ctx, tx, overtime.Request{
			EmployeeID: req.EmployeeID,
			Date:       date,
			Hours:      req.Hours,
			Status:     status,
		})
		return txErr
	})
	if err != nil {
		if errors.Is(err, overtime.ErrRequestExists) {
			return overtime.OvertimeResponse{}, overtime.ErrRequestExists
		}
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to create overtime request: %w", err)
	}

	return overtime.ToResponse(created), nil
}

// ListRequests implements overtime.Service.
func (s *OvertimeServiceImpl) ListRequests(ctx context.Context, filter overtime.Filter) ([]overtime.OvertimeResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.Repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list overtime requests: %w", err)
	}

	responses := make([]overtime.OvertimeResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, overtime.ToResponse(req))
	}

	return responses, nil
}

// Approve implements overtime.Service.
func (s *OvertimeServiceImpl) Approve(ctx context.Context, id string) (overtime.OvertimeResponse, error) {
	return s.process(ctx, id, overtime.RequestStatusApproved)
}

// Reject implements overtime.Service.
func (s *OvertimeServiceImpl) Reject(ctx context.Context, id string) (overtime.OvertimeResponse, error) {
	return s.process(ctx, id, overtime.RequestStatusRejected)
}

func (s *OvertimeServiceImpl) process(ctx context.Context, id string, status overtime.RequestStatus) (overtime.OvertimeResponse, error) {
	req, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, overtime.ErrRequestNotFound) {
			return overtime.OvertimeResponse{}, overtime.ErrRequestNotFound
		}
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to get overtime request: %w", err)
	}

	if req.Status != overtime.RequestStatusPending {
		return overtime.OvertimeResponse{}, overtime.ErrRequestAlreadyProcessed
	}

	if err := s.Repository.UpdateStatus(ctx, id, status); err != nil {
		return overtime.OvertimeResponse{}, fmt.Errorf("failed to update overtime request status: %w", err)
	}

	req.Status = status
	return overtime.ToResponse(req), nil
}
