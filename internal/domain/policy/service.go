package policy

import "context"

// Service exposes the per-group working-hours configuration.
//
// Implementations must reload from the backing store on every read: the config is
// process-wide mutable state and report computations need a fresh snapshot rather
// than an indefinitely cached one.
type Service interface {
	// GetGroupWorkingHours returns the policy for every group, applying built-in
	// defaults when the backing store is absent or a group entry is missing.
	GetGroupWorkingHours(ctx context.Context) (map[string]GroupPolicy, error)

	// GetGroupPolicy returns a single group's policy.
	GetGroupPolicy(ctx context.Context, group string) (GroupPolicy, error)

	// UpdateGroupWorkingHours merges a partial update into one group's policy and
	// persists the full config atomically.
	UpdateGroupWorkingHours(ctx context.Context, req UpdateWorkingHoursRequest) (map[string]GroupPolicy, error)
}
