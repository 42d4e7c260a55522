package report

import (
	"testing"
	"time"

	"github.com/sathish136/mo-sub000/internal/domain/attendance"
	"github.com/sathish136/mo-sub000/internal/domain/employee"
	"github.com/sathish136/mo-sub000/internal/domain/overtime"
	"github.com/sathish136/mo-sub000/internal/domain/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testEmpA = employee.Employee{ID: "emp-a", Code: "EMP-001", FullName: "Nimal Perera", Group: policy.GroupA, Active: true}
	testEmpB = employee.Employee{ID: "emp-b", Code: "EMP-002", FullName: "Kamala Silva", Group: policy.GroupB, Active: true}
)

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 0, 0, 0, 0, time.Local)
}

func punch(d time.Time, hour, min int) *time.Time {
	t := time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, time.Local)
	return &t
}

func record(emp employee.Employee, d time.Time, inH, inM, outH, outM int) attendance.Record {
	return attendance.Record{
		ID:         emp.ID + "-" + d.Format("2006-01-02"),
		EmployeeID: emp.ID,
		Date:       d,
		CheckIn:    punch(d, inH, inM),
		CheckOut:   punch(d, outH, outM),
		Source:     "device",
	}
}

func newSnapshot() snapshot {
	return snapshot{
		policies:   policy.Defaults(),
		records:    make(map[string]map[string]attendance.Record),
		onLeave:    make(map[string]map[string]bool),
		nonWorking: make(map[string]bool),
		otRequests: make(map[string]map[string]overtime.Request),
	}
}

func (s snapshot) withRecord(rec attendance.Record) snapshot {
	date := rec.Date.Format("2006-01-02")
	if s.records[rec.EmployeeID] == nil {
		s.records[rec.EmployeeID] = make(map[string]attendance.Record)
	}
	s.records[rec.EmployeeID][date] = rec
	return s
}

func TestBuildDailyRowPresentWithOvertime(t *testing.T) {
	t.Parallel()

	d := day(2025, time.March, 10) // a Monday
	snap := newSnapshot().withRecord(record(testEmpA, d, 8, 30, 17, 0))

	row := snap.buildDailyRow(testEmpA, d)

	assert.Equal(t, "emp-a", row.EmployeeID)
	assert.Equal(t, "Nimal Perera", row.FullName)
	assert.Equal(t, policy.GroupA, row.EmployeeGroup)
	assert.Equal(t, "2025-03-10", row.Date)
	assert.Equal(t, string(attendance.StatusPresent), row.Status)
	require.NotNil(t, row.TotalHours)
	assert.InDelta(t, 8.5, *row.TotalHours, 0.001)
	assert.InDelta(t, 8.5, row.ActualHours, 0.001)
	assert.InDelta(t, 7.75, row.RequiredHours, 0.001)
	assert.InDelta(t, 0.75, row.OTHours, 0.001)
	assert.Equal(t, string(overtime.RequestStatusPending), row.OTApprovalStatus)
	require.NotNil(t, row.InTime)
	assert.Equal(t, "08:30", *row.InTime)
	require.NotNil(t, row.OutTime)
	assert.Equal(t, "17:00", *row.OutTime)
}

func TestBuildDailyRowAbsentWithoutRecord(t *testing.T) {
	t.Parallel()

	d := day(2025, time.March, 10)
	snap := newSnapshot()

	row := snap.buildDailyRow(testEmpA, d)

	assert.Equal(t, string(attendance.StatusAbsent), row.Status)
	assert.Nil(t, row.TotalHours)
	assert.Nil(t, row.InTime)
	assert.Zero(t, row.ActualHours)
	assert.Zero(t, row.OTHours)
	assert.Empty(t, row.OTApprovalStatus)
}

func TestBuildDailyRowHolidayBeatsRecord(t *testing.T) {
	t.Parallel()

	d := day(2025, time.March, 10)
	snap := newSnapshot().withRecord(record(testEmpA, d, 8, 30, 17, 0))
	snap.nonWorking[d.Format("2006-01-02")] = true

	row := snap.buildDailyRow(testEmpA, d)

	assert.Equal(t, string(attendance.StatusHoliday), row.Status)
	assert.Nil(t, row.TotalHours)
	assert.Zero(t, row.OTHours)
}

func TestBuildDailyRowLeaveBeatsRecord(t *testing.T) {
	t.Parallel()

	d := day(2025, time.March, 10)
	snap := newSnapshot().withRecord(record(testEmpA, d, 9, 45, 17, 0))
	snap.onLeave[testEmpA.ID] = map[string]bool{d.Format("2006-01-02"): true}

	row := snap.buildDailyRow(testEmpA, d)

	assert.Equal(t, string(attendance.StatusOnLeave), row.Status)
	assert.False(t, row.IsLate)
}

func TestBuildDailyRowCarriesOverride(t *testing.T) {
	t.Parallel()

	d := day(2025, time.March, 10)
	snap := newSnapshot().withRecord(record(testEmpA, d, 8, 30, 18, 0))
	snap.otRequests[testEmpA.ID] = map[string]overtime.Request{
		d.Format("2006-01-02"): {Hours: 1.25, Status: overtime.RequestStatusApproved},
	}

	row := snap.buildDailyRow(testEmpA, d)

	assert.Equal(t, string(overtime.RequestStatusApproved), row.OTApprovalStatus)
	require.NotNil(t, row.OTOverrideHours)
	assert.InDelta(t, 1.25, *row.OTOverrideHours, 0.001)
	// The calculated figure stays visible alongside the override.
	assert.InDelta(t, 1.75, row.OTHours, 0.001)
}

func TestBuildDailyRowsOrderedByEmployeeThenDate(t *testing.T) {
	t.Parallel()

	start := day(2025, time.March, 10)
	end := day(2025, time.March, 11)
	snap := newSnapshot().
		withRecord(record(testEmpA, start, 8, 30, 17, 0)).
		withRecord(record(testEmpB, end, 8, 45, 17, 15))

	rows := snap.buildDailyRows([]employee.Employee{testEmpA, testEmpB}, start, end)

	require.Len(t, rows, 4)
	assert.Equal(t, []string{"emp-a", "emp-a", "emp-b", "emp-b"},
		[]string{rows[0].EmployeeID, rows[1].EmployeeID, rows[2].EmployeeID, rows[3].EmployeeID})
	assert.Equal(t, "2025-03-10", rows[0].Date)
	assert.Equal(t, "2025-03-11", rows[1].Date)
	assert.Equal(t, string(attendance.StatusAbsent), rows[1].Status)
}

func TestBuildMonthlyRowTotals(t *testing.T) {
	t.Parallel()

	start := day(2025, time.March, 10)
	end := day(2025, time.March, 12)
	snap := newSnapshot().
		withRecord(record(testEmpA, start, 8, 30, 17, 0)).                   // 8.5h, 0.75 OT
		withRecord(record(testEmpA, day(2025, time.March, 11), 8, 30, 18, 0)) // 9.5h, 1.75 OT

	row := snap.buildMonthlyRow(testEmpA, start, end)

	assert.Equal(t, "emp-a", row.EmployeeID)
	require.Len(t, row.DailyData, 3)
	assert.InDelta(t, 18.0, row.TotalWorkedHours, 0.001)
	assert.InDelta(t, 2.5, row.TotalOvertimeHours, 0.001)
	assert.Equal(t, 2, row.TotalPresentDays)

	assert.Equal(t, "P", row.DailyData["2025-03-10"].Status)
	assert.Equal(t, "AB", row.DailyData["2025-03-12"].Status)
	assert.Nil(t, row.DailyData["2025-03-12"].WorkedHours)
}

func TestBuildMonthlyRowTotalsAccumulateUnrounded(t *testing.T) {
	t.Parallel()

	// 08:30-17:20 is 8h50m = 8.8333h, which rounds to 8.83 per row. Two such
	// days must total 17.67 (from 17.6667), not the 17.66 a sum of rounded
	// row values would give. Same for overtime: 2x 1.0833 -> 2.17, not 2.16.
	start := day(2025, time.March, 10)
	end := day(2025, time.March, 11)
	snap := newSnapshot().
		withRecord(record(testEmpA, start, 8, 30, 17, 20)).
		withRecord(record(testEmpA, end, 8, 30, 17, 20))

	row := snap.buildMonthlyRow(testEmpA, start, end)

	assert.InDelta(t, 17.67, row.TotalWorkedHours, 0.0001)
	assert.InDelta(t, 2.17, row.TotalOvertimeHours, 0.0001)
	assert.InDelta(t, 8.83, *row.DailyData["2025-03-10"].WorkedHours, 0.0001)
	assert.InDelta(t, 1.08, row.DailyData["2025-03-10"].Overtime, 0.0001)
}

func TestBuildMonthlyRowPrefersApprovedOverride(t *testing.T) {
	t.Parallel()

	d := day(2025, time.March, 10)
	snap := newSnapshot().withRecord(record(testEmpA, d, 8, 30, 17, 0)) // calculated 0.75 OT
	snap.otRequests[testEmpA.ID] = map[string]overtime.Request{
		d.Format("2006-01-02"): {Hours: 2.0, Status: overtime.RequestStatusApproved},
	}

	row := snap.buildMonthlyRow(testEmpA, d, d)

	assert.InDelta(t, 2.0, row.TotalOvertimeHours, 0.001)
	assert.InDelta(t, 2.0, row.DailyData["2025-03-10"].Overtime, 0.001)
}

func TestBuildMonthlyRowZeroDaysEmployee(t *testing.T) {
	t.Parallel()

	start := day(2025, time.March, 10)
	end := day(2025, time.March, 12)
	snap := newSnapshot()

	row := snap.buildMonthlyRow(testEmpB, start, end)

	assert.Zero(t, row.TotalWorkedHours)
	assert.Zero(t, row.TotalOvertimeHours)
	assert.Zero(t, row.TotalPresentDays)
	require.Len(t, row.DailyData, 3)
	for _, cell := range row.DailyData {
		assert.Equal(t, "AB", cell.Status)
	}
}

func TestBuildMonthlyRowLateAndHalfDayCodes(t *testing.T) {
	t.Parallel()

	start := day(2025, time.March, 10)
	end := day(2025, time.March, 11)
	snap := newSnapshot().
		withRecord(record(testEmpA, start, 9, 15, 17, 0)).                    // late
		withRecord(record(testEmpA, day(2025, time.March, 11), 10, 30, 17, 0)) // half day

	row := snap.buildMonthlyRow(testEmpA, start, end)

	assert.Equal(t, "LT", row.DailyData["2025-03-10"].Status)
	assert.Equal(t, "HD", row.DailyData["2025-03-11"].Status)
	assert.Zero(t, row.TotalPresentDays)
}

func TestBuildShortLeaveUsage(t *testing.T) {
	t.Parallel()

	// Three short-leave days in one month against a quota of two.
	snap := newSnapshot()
	days := []time.Time{
		day(2025, time.March, 10),
		day(2025, time.March, 17),
		day(2025, time.March, 24),
	}
	for _, d := range days {
		snap = snap.withRecord(record(testEmpA, d, 8, 30, 15, 30)) // 7h of an 8.5h day
	}

	rows := snap.buildShortLeaveUsage(
		[]employee.Employee{testEmpA, testEmpB},
		day(2025, time.March, 1), day(2025, time.March, 31),
	)

	require.Len(t, rows, 1)
	assert.Equal(t, "emp-a", rows[0].EmployeeID)
	assert.Equal(t, "2025-03", rows[0].Month)
	assert.Equal(t, 3, rows[0].Count)
	assert.Equal(t, 2, rows[0].MaxPerMonth)
	assert.True(t, rows[0].OverQuota)
}

func TestRound2(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 8.33, round2(8.3333333))
	assert.Equal(t, 0.75, round2(0.75))
	assert.Equal(t, 0.13, round2(0.125))
}
