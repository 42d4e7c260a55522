package leave

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sathish136/mo-sub000/internal/domain/employee"
	"github.com/sathish136/mo-sub000/internal/domain/leave"
	"github.com/sathish136/mo-sub000/internal/pkg/database"
)

type LeaveServiceImpl struct {
	db *database.DB
	leave.Repository
	employeeRepo employee.Repository
}

func NewLeaveService(db *database.DB, leaveRepo leave.Repository, employeeRepo employee.Repository) leave.Service {
	return &LeaveServiceImpl{
		db:           db,
		Repository:   leaveRepo,
		employeeRepo: employeeRepo,
	}
}

// CreateRequest implements leave.Service.
func (s *LeaveServiceImpl) CreateRequest(ctx context.Context, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveResponse{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return leave.LeaveResponse{}, employee.ErrEmployeeNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to look up employee: %w", err)
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	created, err := s.Repository.Create(ctx, leave.Request{
		EmployeeID: req.EmployeeID,
		StartDate:  startDate,
		EndDate:    endDate,
		LeaveType:  req.LeaveType,
		Reason:     req.Reason,
		Status:     leave.RequestStatusPending,
	})
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return leave.ToResponse(created), nil
}

// ListRequests implements leave.Service.
func (s *LeaveServiceImpl) ListRequests(ctx context.Context, filter leave.Filter) ([]leave.LeaveResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	requests, err := s.Repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}

	responses := make([]leave.LeaveResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, leave.ToResponse(req))
	}

	return responses, nil
}

// Approve implements leave.Service.
func (s *LeaveServiceImpl) Approve(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.process(ctx, id, leave.RequestStatusApproved)
}

// Reject implements leave.Service.
func (s *LeaveServiceImpl) Reject(ctx context.Context, id string) (leave.LeaveResponse, error) {
	return s.process(ctx, id, leave.RequestStatusRejected)
}

func (s *LeaveServiceImpl) process(ctx context.Context, id string, status leave.RequestStatus) (leave.LeaveResponse, error) {
	req, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveRequestNotFound) {
			return leave.LeaveResponse{}, leave.ErrLeaveRequestNotFound
		}
		return leave.LeaveResponse{}, fmt.Errorf("failed to get leave request: %w", err)
	}

	if req.Status != leave.RequestStatusPending {
		return leave.LeaveResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	if err := s.Repository.UpdateStatus(ctx, id, status); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("failed to update leave request status: %w", err)
	}

	req.Status = status
	return leave.ToResponse(req), nil
}

// ApprovedCoverage implements leave.Service.
func (s *LeaveServiceImpl) ApprovedCoverage(ctx context.Context, start, end time.Time, employeeID *string) (map[string]map[string]bool, error) {
	requests, err := s.Repository.ListApprovedInRange(ctx, start, end, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list approved leaves: %w", err)
	}

	coverage := make(map[string]map[string]bool)
	for _, req := range requests {
		days, ok := coverage[req.EmployeeID]
		if !ok {
			days = make(map[string]bool)
			coverage[req.EmployeeID] = days
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if req.Covers(d) {
				days[d.Format("2006-01-02")] = true
			}
		}
	}

	return coverage, nil
}
