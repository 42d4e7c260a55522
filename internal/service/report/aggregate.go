package report

import (
	"math"
	"time"

	"github.com/sathish136/mo-sub000/internal/domain/attendance"
	"github.com/sathish136/mo-sub000/internal/domain/employee"
	"github.com/sathish136/mo-sub000/internal/domain/overtime"
	"github.com/sathish136/mo-sub000/internal/domain/policy"
	"github.com/sathish136/mo-sub000/internal/domain/report"
	attendanceService "github.com/sathish136/mo-sub000/internal/service/attendance"
	overtimeService "github.com/sathish136/mo-sub000/internal/service/overtime"
)

// snapshot is the closed set of inputs one report computation folds over. All
// maps are keyed by employee ID and/or YYYY-MM-DD date strings. Building a
// snapshot up front keeps the fold a pure function: identical snapshots yield
// byte-identical payloads.
type snapshot struct {
	policies   map[string]policy.GroupPolicy
	records    map[string]map[string]attendance.Record
	onLeave    map[string]map[string]bool
	nonWorking map[string]bool
	otRequests map[string]map[string]overtime.Request
}

// round2 rounds to 2 decimal places; applied only at presentation boundaries so
// accumulation never compounds rounding error.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round2Ptr(v *float64) *float64 {
	if v == nil {
		return nil
	}
	r := round2(*v)
	return &r
}

func clockString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("15:04")
	return &s
}

// policyFor resolves a group's policy with graceful degradation: a group absent
// from the loaded config falls back to its built-in default, and an unknown
// group yields a zero policy whose accessors degrade to the documented numeric
// defaults (8 required hours, no grace).
func (s snapshot) policyFor(group string) (policy.GroupPolicy, *policy.GroupPolicy) {
	if pol, ok := s.policies[group]; ok {
		return pol, &pol
	}
	if pol, ok := policy.Defaults()[group]; ok {
		return pol, &pol
	}
	return policy.GroupPolicy{}, nil
}

// dayDetail carries the unrounded figures behind one daily row so monthly
// totals accumulate from the exact computation the row presents.
type dayDetail struct {
	workedHours *float64
	effectiveOT float64
}

// buildDailyRow derives one employee-day: classification first, then overtime.
func (s snapshot) buildDailyRow(emp employee.Employee, day time.Time) report.DailyRow {
	row, _ := s.buildDay(emp, day)
	return row
}

func (s snapshot) buildDay(emp employee.Employee, day time.Time) (report.DailyRow, dayDetail) {
	date := day.Format("2006-01-02")
	pol, polPtr := s.policyFor(emp.Group)

	input := attendance.DayInput{
		OnApprovedLeave: s.onLeave[emp.ID][date],
		IsHoliday:       s.nonWorking[date],
	}

	var record *attendance.Record
	if rec, ok := s.records[emp.ID][date]; ok {
		record = &rec
		input.CheckIn = rec.CheckIn
		input.CheckOut = rec.CheckOut
	}

	result := attendanceService.ClassifyDay(input, pol)

	var actualHours float64
	if result.WorkedHours != nil {
		actualHours = *result.WorkedHours
	}

	var existing *overtime.Request
	if req, ok := s.otRequests[emp.ID][date]; ok {
		existing = &req
	}
	otResult := overtimeService.Calculate(actualHours, polPtr, existing)

	row := report.DailyRow{
		EmployeeID:       emp.ID,
		FullName:         emp.FullName,
		EmployeeGroup:    emp.Group,
		Date:             date,
		TotalHours:       round2Ptr(result.WorkedHours),
		IsLate:           result.IsLate,
		IsHalfDay:        result.IsHalfDay,
		OnShortLeave:     result.OnShortLeave,
		Status:           string(result.Status),
		ActualHours:      round2(otResult.ActualHours),
		RequiredHours:    round2(otResult.RequiredHours),
		OTHours:          round2(otResult.OTHours),
		OTApprovalStatus: string(otResult.ApprovalStatus),
		Anomaly:          result.Anomaly,
	}

	if record != nil {
		row.InTime = clockString(record.CheckIn)
		row.OutTime = clockString(record.CheckOut)
	}
	if otResult.Override != nil {
		hours := round2(otResult.Override.Hours)
		row.OTOverrideHours = &hours
	}

	detail := dayDetail{
		workedHours: result.WorkedHours,
		effectiveOT: otResult.EffectiveHours(),
	}

	return row, detail
}

// buildDailyRows folds every employee over every day in [start, end], ordered
// by the employees slice (repository order: employee code) then date.
func (s snapshot) buildDailyRows(employees []employee.Employee, start, end time.Time) []report.DailyRow {
	rows := make([]report.DailyRow, 0, len(employees))
	for _, emp := range employees {
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			rows = append(rows, s.buildDailyRow(emp, day))
		}
	}
	return rows
}

// buildMonthlyRow folds one employee across the range. Totals accumulate the
// unrounded figures behind each daily row and are rounded once at the end, so
// the monthly total can never drift from what the rows present. The overtime
// total prefers an approved explicit request over the calculated figure.
func (s snapshot) buildMonthlyRow(emp employee.Employee, start, end time.Time) report.MonthlyRow {
	row := report.MonthlyRow{
		EmployeeID:    emp.ID,
		FullName:      emp.FullName,
		EmployeeGroup: emp.Group,
		DailyData:     make(map[string]report.DayCell),
	}

	var workedTotal, overtimeTotal float64
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := day.Format("2006-01-02")
		daily, detail := s.buildDay(emp, day)

		cell := report.DayCell{
			InTime:      daily.InTime,
			OutTime:     daily.OutTime,
			WorkedHours: daily.TotalHours,
			Status:      attendance.Status(daily.Status).SheetCode(),
		}

		if detail.workedHours != nil {
			workedTotal += *detail.workedHours
			overtimeTotal += detail.effectiveOT
			cell.Overtime = round2(detail.effectiveOT)
		}

		if daily.Status == string(attendance.StatusPresent) {
			row.TotalPresentDays++
		}

		row.DailyData[date] = cell
	}

	row.TotalWorkedHours = round2(workedTotal)
	row.TotalOvertimeHours = round2(overtimeTotal)
	return row
}

func (s snapshot) buildMonthlyRows(employees []employee.Employee, start, end time.Time) []report.MonthlyRow {
	rows := make([]report.MonthlyRow, 0, len(employees))
	for _, emp := range employees {
		rows = append(rows, s.buildMonthlyRow(emp, start, end))
	}
	return rows
}

// buildShortLeaveUsage counts short-leave days per employee per calendar month.
func (s snapshot) buildShortLeaveUsage(employees []employee.Employee, start, end time.Time) []report.ShortLeaveUsageRow {
	rows := make([]report.ShortLeaveUsageRow, 0)
	for _, emp := range employees {
		pol, _ := s.policyFor(emp.Group)

		counts := make(map[string]int)
		var months []string
		for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
			daily := s.buildDailyRow(emp, day)
			if !daily.OnShortLeave {
				continue
			}
			month := day.Format("2006-01")
			if _, seen := counts[month]; !seen {
				months = append(months, month)
			}
			counts[month]++
		}

		for _, month := range months {
			rows = append(rows, report.ShortLeaveUsageRow{
				EmployeeID:    emp.ID,
				FullName:      emp.FullName,
				EmployeeGroup: emp.Group,
				Month:         month,
				Count:         counts[month],
				MaxPerMonth:   pol.ShortLeave.MaxPerMonth,
				OverQuota:     counts[month] > pol.ShortLeave.MaxPerMonth,
			})
		}
	}
	return rows
}
