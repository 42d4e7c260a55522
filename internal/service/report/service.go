package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sathish136/mo-sub000/internal/domain/attendance"
	"github.com/sathish136/mo-sub000/internal/domain/employee"
	"github.com/sathish136/mo-sub000/internal/domain/holiday"
	"github.com/sathish136/mo-sub000/internal/domain/leave"
	"github.com/sathish136/mo-sub000/internal/domain/overtime"
	"github.com/sathish136/mo-sub000/internal/domain/policy"
	"github.com/sathish136/mo-sub000/internal/domain/report"
	"github.com/sathish136/mo-sub000/internal/pkg/validator"
)

// ReportServiceImpl assembles report payloads. Every method loads a fresh
// snapshot (policies, attendance, leave coverage, holidays, overtime requests)
// and hands it to pure fold functions in aggregate.go.
type ReportServiceImpl struct {
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	overtimeRepo   overtime.Repository
	leaveService   leave.Service
	holidayService holiday.Service
	policyService  policy.Service
}

func NewReportService(
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	overtimeRepo overtime.Repository,
	leaveService leave.Service,
	holidayService holiday.Service,
	policyService policy.Service,
) report.Service {
	return &ReportServiceImpl{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		overtimeRepo:   overtimeRepo,
		leaveService:   leaveService,
		holidayService: holidayService,
		policyService:  policyService,
	}
}

// loadSnapshot prefetches everything one report needs for [start, end]. The
// employee slice keeps repository order (by code) so rows come out stable.
func (s *ReportServiceImpl) loadSnapshot(ctx context.Context, start, end time.Time, employeeID, group *string) ([]employee.Employee, snapshot, error) {
	var snap snapshot

	if employeeID != nil {
		if _, err := s.employeeRepo.GetByID(ctx, *employeeID); err != nil {
			if errors.Is(err, employee.ErrEmployeeNotFound) {
				return nil, snap, validator.ValidationErrors{{
					Field:   "employeeId",
					Message: "employee not found",
				}}
			}
			return nil, snap, fmt.Errorf("failed to get employee: %w", err)
		}
	}

	employees, err := s.employeeRepo.List(ctx, employee.Filter{
		EmployeeID: employeeID,
		Group:      group,
	})
	if err != nil {
		return nil, snap, fmt.Errorf("failed to list employees: %w", err)
	}

	policies, err := s.policyService.GetGroupWorkingHours(ctx)
	if err != nil {
		return nil, snap, fmt.Errorf("failed to load working hours config: %w", err)
	}

	records, err := s.attendanceRepo.ListRange(ctx, start, end, employeeID, group)
	if err != nil {
		return nil, snap, fmt.Errorf("failed to list attendance records: %w", err)
	}

	onLeave, err := s.leaveService.ApprovedCoverage(ctx, start, end, employeeID)
	if err != nil {
		return nil, snap, fmt.Errorf("failed to load leave coverage: %w", err)
	}

	nonWorking, err := s.holidayService.NonWorkingDays(ctx, start, end)
	if err != nil {
		return nil, snap, fmt.Errorf("failed to load holidays: %w", err)
	}

	requests, err := s.overtimeRepo.ListInRange(ctx, start, end, employeeID)
	if err != nil {
		return nil, snap, fmt.Errorf("failed to list overtime requests: %w", err)
	}

	recordIndex := make(map[string]map[string]attendance.Record)
	for _, rec := range records {
		date := rec.Date.Format("2006-01-02")
		if recordIndex[rec.EmployeeID] == nil {
			recordIndex[rec.EmployeeID] = make(map[string]attendance.Record)
		}
		recordIndex[rec.EmployeeID][date] = rec
	}

	requestIndex := make(map[string]map[string]overtime.Request)
	for _, req := range requests {
		date := req.Date.Format("2006-01-02")
		if requestIndex[req.EmployeeID] == nil {
			requestIndex[req.EmployeeID] = make(map[string]overtime.Request)
		}
		requestIndex[req.EmployeeID][date] = req
	}

	snap = snapshot{
		policies:   policies,
		records:    recordIndex,
		onLeave:    onLeave,
		nonWorking: nonWorking,
		otRequests: requestIndex,
	}
	return employees, snap, nil
}

// DailySheet implements report.Service.
func (s *ReportServiceImpl) DailySheet(ctx context.Context, req report.DailyReportRequest) ([]report.DailyRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	day := req.Day()
	employees, snap, err := s.loadSnapshot(ctx, day, day, req.EmployeeID, req.Group)
	if err != nil {
		return nil, err
	}

	return snap.buildDailyRows(employees, day, day), nil
}

// MonthlySheet implements report.Service.
func (s *ReportServiceImpl) MonthlySheet(ctx context.Context, req report.RangeReportRequest) ([]report.MonthlyRow, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	start, end := req.Range()
	employees, snap, err := s.loadSnapshot(ctx, start, end, req.EmployeeID, req.Group)
	if err != nil {
		return nil, err
	}

	return snap.buildMonthlyRows(employees, start, end), nil
}

// LateArrivals implements report.Service.
func (s *ReportServiceImpl) LateArrivals(ctx context.Context, req report.RangeReportRequest) (report.FilteredReport, error) {
	return s.filteredSheet(ctx, req, func(row report.DailyRow) bool { return row.IsLate })
}

// HalfDays implements report.Service.
func (s *ReportServiceImpl) HalfDays(ctx context.Context, req report.RangeReportRequest) (report.FilteredReport, error) {
	return s.filteredSheet(ctx, req, func(row report.DailyRow) bool { return row.IsHalfDay })
}

func (s *ReportServiceImpl) filteredSheet(ctx context.Context, req report.RangeReportRequest, keep func(report.DailyRow) bool) (report.FilteredReport, error) {
	if err := req.Validate(); err != nil {
		return report.FilteredReport{}, err
	}

	start, end := req.Range()
	employees, snap, err := s.loadSnapshot(ctx, start, end, req.EmployeeID, req.Group)
	if err != nil {
		return report.FilteredReport{}, err
	}

	rows := make([]report.DailyRow, 0)
	for _, row := range snap.buildDailyRows(employees, start, end) {
		if keep(row) {
			rows = append(rows, row)
		}
	}

	return report.FilteredReport{
		Policy: report.PolicySnapshot(snap.policies),
		Rows:   rows,
	}, nil
}

// ShortLeaveUsage implements report.Service.
func (s *ReportServiceImpl) ShortLeaveUsage(ctx context.Context, req report.RangeReportRequest) (report.ShortLeaveUsageReport, error) {
	if err := req.Validate(); err != nil {
		return report.ShortLeaveUsageReport{}, err
	}

	start, end := req.Range()
	employees, snap, err := s.loadSnapshot(ctx, start, end, req.EmployeeID, req.Group)
	if err != nil {
		return report.ShortLeaveUsageReport{}, err
	}

	return report.ShortLeaveUsageReport{
		Policy: report.PolicySnapshot(snap.policies),
		Rows:   snap.buildShortLeaveUsage(employees, start, end),
	}, nil
}
