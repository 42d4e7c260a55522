package overtime

import (
	"testing"
	"time"

	"github.com/sathish136/mo-sub000/internal/domain/overtime"
	"github.com/sathish136/mo-sub000/internal/domain/policy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateAboveThreshold(t *testing.T) {
	t.Parallel()

	// Group A: 08:30-17:00 worked with minHoursForOT 7.75 yields 0.75h OT.
	pol := policy.Defaults()[policy.GroupA]
	result := Calculate(8.5, &pol, nil)

	assert.InDelta(t, 8.5, result.ActualHours, 0.001)
	assert.InDelta(t, 7.75, result.RequiredHours, 0.001)
	assert.InDelta(t, 0.75, result.OTHours, 0.001)
	assert.Equal(t, overtime.RequestStatusPending, result.ApprovalStatus)
	assert.Nil(t, result.Override)
}

func TestCalculateBelowThresholdClampsToZero(t *testing.T) {
	t.Parallel()

	pol := policy.Defaults()[policy.GroupB]
	result := Calculate(6.0, &pol, nil)

	assert.Zero(t, result.OTHours)
	assert.Empty(t, result.ApprovalStatus)
}

func TestCalculateNilPolicyDefaultsToEightHours(t *testing.T) {
	t.Parallel()

	result := Calculate(9.0, nil, nil)

	assert.InDelta(t, 8.0, result.RequiredHours, 0.001)
	assert.InDelta(t, 1.0, result.OTHours, 0.001)
}

func TestCalculateZeroThresholdDefaultsToEightHours(t *testing.T) {
	t.Parallel()

	pol := policy.GroupPolicy{MinHoursForOT: 0}
	result := Calculate(10.0, &pol, nil)

	assert.InDelta(t, 8.0, result.RequiredHours, 0.001)
	assert.InDelta(t, 2.0, result.OTHours, 0.001)
}

func TestCalculateAttachesExistingRequest(t *testing.T) {
	t.Parallel()

	pol := policy.Defaults()[policy.GroupA]
	existing := &overtime.Request{
		ID:         "req-1",
		EmployeeID: "emp-1",
		Date:       time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		Hours:      2.0,
		Status:     overtime.RequestStatusApproved,
	}

	result := Calculate(8.5, &pol, existing)

	assert.Equal(t, overtime.RequestStatusApproved, result.ApprovalStatus)
	require.NotNil(t, result.Override)
	assert.InDelta(t, 2.0, result.Override.Hours, 0.001)

	// An approved override wins over the calculated figure.
	assert.InDelta(t, 2.0, result.EffectiveHours(), 0.001)
}

func TestCalculateRejectedOverrideKeepsCalculatedHours(t *testing.T) {
	t.Parallel()

	pol := policy.Defaults()[policy.GroupA]
	existing := &overtime.Request{
		Hours:  3.0,
		Status: overtime.RequestStatusRejected,
	}

	result := Calculate(8.5, &pol, existing)

	assert.Equal(t, overtime.RequestStatusRejected, result.ApprovalStatus)
	assert.InDelta(t, 0.75, result.EffectiveHours(), 0.001)
}

func TestCalculateRequestWithoutOvertimeStillSurfaces(t *testing.T) {
	t.Parallel()

	// An explicit pending request on a day with no calculated OT keeps its status.
	pol := policy.Defaults()[policy.GroupA]
	existing := &overtime.Request{
		Hours:  1.0,
		Status: overtime.RequestStatusPending,
	}

	result := Calculate(6.0, &pol, existing)

	assert.Zero(t, result.OTHours)
	assert.Equal(t, overtime.RequestStatusPending, result.ApprovalStatus)
	require.NotNil(t, result.Override)
}
