package attendance

import (
	"testing"
	"time"

	"github.com/sathish136/mo-sub000/internal/domain/attendance"
	"github.com/sathish136/mo-sub000/internal/domain/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groupAPolicy() policy.GroupPolicy {
	return policy.Defaults()[policy.GroupA]
}

func at(hour, min int) *time.Time {
	t := time.Date(2025, 3, 10, hour, min, 0, 0, time.Local)
	return &t
}

func TestClassifyDayHolidayWins(t *testing.T) {
	t.Parallel()

	// A holiday beats leave and any device rows.
	result := ClassifyDay(attendance.DayInput{
		CheckIn:         at(8, 45),
		CheckOut:        at(17, 0),
		OnApprovedLeave: true,
		IsHoliday:       true,
	}, groupAPolicy())

	assert.Equal(t, attendance.StatusHoliday, result.Status)
	assert.Nil(t, result.WorkedHours)
}

func TestClassifyDayLeaveBeatsStrayPunches(t *testing.T) {
	t.Parallel()

	result := ClassifyDay(attendance.DayInput{
		CheckIn:         at(8, 45),
		CheckOut:        at(17, 0),
		OnApprovedLeave: true,
	}, groupAPolicy())

	assert.Equal(t, attendance.StatusOnLeave, result.Status)
	assert.False(t, result.IsLate)
	assert.Nil(t, result.WorkedHours)
}

func TestClassifyDayNoCheckInIsAbsent(t *testing.T) {
	t.Parallel()

	result := ClassifyDay(attendance.DayInput{}, groupAPolicy())

	assert.Equal(t, attendance.StatusAbsent, result.Status)
}

func TestClassifyDayOnTime(t *testing.T) {
	t.Parallel()

	result := ClassifyDay(attendance.DayInput{
		CheckIn:  at(8, 45),
		CheckOut: at(17, 15),
	}, groupAPolicy())

	assert.Equal(t, attendance.StatusPresent, result.Status)
	assert.False(t, result.IsLate)
	assert.False(t, result.IsHalfDay)
	require.NotNil(t, result.WorkedHours)
	assert.InDelta(t, 8.5, *result.WorkedHours, 0.001)
}

func TestClassifyDayGraceBoundaryIsOnTime(t *testing.T) {
	t.Parallel()

	// Arrival exactly at the grace boundary is not late.
	result := ClassifyDay(attendance.DayInput{
		CheckIn:  at(9, 0),
		CheckOut: at(17, 30),
	}, groupAPolicy())

	assert.Equal(t, attendance.StatusPresent, result.Status)
	assert.Zero(t, result.LateMinutes)
}

func TestClassifyDayLate(t *testing.T) {
	t.Parallel()

	result := ClassifyDay(attendance.DayInput{
		CheckIn:  at(9, 15),
		CheckOut: at(17, 0),
	}, groupAPolicy())

	assert.Equal(t, attendance.StatusLate, result.Status)
	assert.True(t, result.IsLate)
	assert.Equal(t, 15, result.LateMinutes)
}

func TestClassifyDayLateWithoutCheckOut(t *testing.T) {
	t.Parallel()

	result := ClassifyDay(attendance.DayInput{
		CheckIn: at(9, 1),
	}, groupAPolicy())

	assert.Equal(t, attendance.StatusLate, result.Status)
	assert.Equal(t, 1, result.LateMinutes)
	assert.Nil(t, result.WorkedHours)
}

func TestClassifyDayHalfDayWindow(t *testing.T) {
	t.Parallel()

	result := ClassifyDay(attendance.DayInput{
		CheckIn:  at(10, 30),
		CheckOut: at(17, 0),
	}, groupAPolicy())

	assert.Equal(t, attendance.StatusHalfDay, result.Status)
	assert.True(t, result.IsHalfDay)
	assert.False(t, result.IsLate)
}

func TestClassifyDayHalfDayWindowIsOpen(t *testing.T) {
	t.Parallel()

	// Arrivals exactly on either window bound fall back to late.
	for _, checkIn := range []*time.Time{at(10, 0), at(14, 45)} {
		result := ClassifyDay(attendance.DayInput{
			CheckIn:  checkIn,
			CheckOut: at(17, 0),
		}, groupAPolicy())

		assert.Equal(t, attendance.StatusLate, result.Status, "check-in %v", checkIn)
		assert.False(t, result.IsHalfDay)
	}
}

func TestClassifyDayShortLeave(t *testing.T) {
	t.Parallel()

	// On time, worked 7h against a nominal 8.5h day.
	result := ClassifyDay(attendance.DayInput{
		CheckIn:  at(8, 30),
		CheckOut: at(15, 30),
	}, groupAPolicy())

	assert.Equal(t, attendance.StatusShortLeave, result.Status)
	assert.True(t, result.OnShortLeave)
	require.NotNil(t, result.WorkedHours)
	assert.InDelta(t, 7.0, *result.WorkedHours, 0.001)
}

func TestClassifyDayShortLeaveNeedsMoreThanHalfDay(t *testing.T) {
	t.Parallel()

	// 4h worked is at most half of the nominal 8.5h day, so no short leave.
	result := ClassifyDay(attendance.DayInput{
		CheckIn:  at(8, 30),
		CheckOut: at(12, 30),
	}, groupAPolicy())

	assert.Equal(t, attendance.StatusPresent, result.Status)
	assert.False(t, result.OnShortLeave)
}

func TestClassifyDayLateExcludesShortLeave(t *testing.T) {
	t.Parallel()

	// Late arrival with short hours stays late.
	result := ClassifyDay(attendance.DayInput{
		CheckIn:  at(9, 30),
		CheckOut: at(16, 0),
	}, groupAPolicy())

	assert.Equal(t, attendance.StatusLate, result.Status)
	assert.False(t, result.OnShortLeave)
}

func TestClassifyDayFullNominalDayIsPresent(t *testing.T) {
	t.Parallel()

	result := ClassifyDay(attendance.DayInput{
		CheckIn:  at(8, 30),
		CheckOut: at(17, 0),
	}, groupAPolicy())

	assert.Equal(t, attendance.StatusPresent, result.Status)
	require.NotNil(t, result.WorkedHours)
	assert.InDelta(t, 8.5, *result.WorkedHours, 0.001)
}

func TestClassifyDayInvertedPairIsAnomaly(t *testing.T) {
	t.Parallel()

	result := ClassifyDay(attendance.DayInput{
		CheckIn:  at(8, 45),
		CheckOut: at(8, 0),
	}, groupAPolicy())

	assert.True(t, result.Anomaly)
	require.NotNil(t, result.WorkedHours)
	assert.Zero(t, *result.WorkedHours)
	assert.Equal(t, attendance.StatusPresent, result.Status)
}

func TestClassifyDayMidnightSpanIsAnomaly(t *testing.T) {
	t.Parallel()

	out := at(2, 0).AddDate(0, 0, 1)
	result := ClassifyDay(attendance.DayInput{
		CheckIn:  at(22, 0),
		CheckOut: &out,
	}, groupAPolicy())

	assert.True(t, result.Anomaly)
	require.NotNil(t, result.WorkedHours)
	assert.Zero(t, *result.WorkedHours)
}

func TestClassifyDayGroupBThresholds(t *testing.T) {
	t.Parallel()

	pol := policy.Defaults()[policy.GroupB]

	// 09:15 is group B's grace boundary, still on time there.
	result := ClassifyDay(attendance.DayInput{CheckIn: at(9, 15), CheckOut: at(17, 45)}, pol)
	assert.Equal(t, attendance.StatusPresent, result.Status)

	// One minute past grace is late.
	result = ClassifyDay(attendance.DayInput{CheckIn: at(9, 16), CheckOut: at(17, 15)}, pol)
	assert.Equal(t, attendance.StatusLate, result.Status)

	// Inside group B's half-day window.
	result = ClassifyDay(attendance.DayInput{CheckIn: at(11, 0), CheckOut: at(17, 15)}, pol)
	assert.Equal(t, attendance.StatusHalfDay, result.Status)
}
