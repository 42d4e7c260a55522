package policy

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sathish136/mo-sub000/internal/domain/policy"
	"github.com/sathish136/mo-sub000/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (policy.Service, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "working_hours.json")
	return NewPolicyService(path), path
}

func TestGetGroupWorkingHoursMissingFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	svc, _ := newTestStore(t)

	all, err := svc.GetGroupWorkingHours(context.Background())
	require.NoError(t, err)

	assert.Equal(t, policy.Defaults(), all)
}

func TestGetGroupWorkingHoursMalformedFileYieldsDefaults(t *testing.T) {
	t.Parallel()

	svc, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	all, err := svc.GetGroupWorkingHours(context.Background())
	require.NoError(t, err)

	assert.Equal(t, policy.Defaults(), all)
}

func TestGetGroupWorkingHoursFillsMissingGroups(t *testing.T) {
	t.Parallel()

	svc, path := newTestStore(t)

	stored := map[string]policy.GroupPolicy{
		policy.GroupA: {
			StartTime:     "09:00",
			EndTime:       "18:00",
			MinHoursForOT: 8.0,
		},
	}
	raw, err := json.Marshal(stored)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	all, err := svc.GetGroupWorkingHours(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "09:00", all[policy.GroupA].StartTime)
	// Group B was absent from the file, defaults fill it in.
	assert.Equal(t, policy.Defaults()[policy.GroupB], all[policy.GroupB])
}

func TestGetGroupPolicyUnknownGroup(t *testing.T) {
	t.Parallel()

	svc, _ := newTestStore(t)

	_, err := svc.GetGroupPolicy(context.Background(), "group_c")
	assert.ErrorIs(t, err, policy.ErrGroupNotFound)
}

func TestUpdateGroupWorkingHoursMergesAndPersists(t *testing.T) {
	t.Parallel()

	svc, path := newTestStore(t)

	grace := "09:30"
	minOT := 8.25
	all, err := svc.UpdateGroupWorkingHours(context.Background(), policy.UpdateWorkingHoursRequest{
		Group:         policy.GroupA,
		MinHoursForOT: &minOT,
		LateArrival:   &policy.LateArrivalUpdate{GracePeriodUntil: &grace},
	})
	require.NoError(t, err)

	// Updated fields changed, untouched fields kept their defaults.
	assert.InDelta(t, 8.25, all[policy.GroupA].MinHoursForOT, 0.001)
	assert.Equal(t, "09:30", all[policy.GroupA].LateArrival.GracePeriodUntil)
	assert.Equal(t, "08:30", all[policy.GroupA].StartTime)
	assert.Equal(t, "10:00", all[policy.GroupA].LateArrival.HalfDayAfter)

	// The file was written and a fresh read observes the update.
	_, statErr := os.Stat(path)
	require.NoError(t, statErr)

	reloaded, err := svc.GetGroupPolicy(context.Background(), policy.GroupA)
	require.NoError(t, err)
	assert.InDelta(t, 8.25, reloaded.MinHoursForOT, 0.001)
	assert.Equal(t, "09:30", reloaded.LateArrival.GracePeriodUntil)
}

func TestUpdateGroupWorkingHoursLeavesOtherGroupAlone(t *testing.T) {
	t.Parallel()

	svc, _ := newTestStore(t)

	start := "08:00"
	_, err := svc.UpdateGroupWorkingHours(context.Background(), policy.UpdateWorkingHoursRequest{
		Group:     policy.GroupA,
		StartTime: &start,
	})
	require.NoError(t, err)

	other, err := svc.GetGroupPolicy(context.Background(), policy.GroupB)
	require.NoError(t, err)
	assert.Equal(t, policy.Defaults()[policy.GroupB], other)
}

func TestUpdateGroupWorkingHoursRejectsBadInput(t *testing.T) {
	t.Parallel()

	svc, _ := newTestStore(t)

	bad := "25:99"
	_, err := svc.UpdateGroupWorkingHours(context.Background(), policy.UpdateWorkingHoursRequest{
		Group:     policy.GroupA,
		StartTime: &bad,
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	assert.Contains(t, validationErrs.ToMap(), "startTime")
}

func TestUpdateGroupWorkingHoursUnknownGroup(t *testing.T) {
	t.Parallel()

	svc, _ := newTestStore(t)

	_, err := svc.UpdateGroupWorkingHours(context.Background(), policy.UpdateWorkingHoursRequest{
		Group: "group_c",
	})

	// Unknown group fails validation before touching the store.
	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}
