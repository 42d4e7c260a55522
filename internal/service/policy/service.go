package policy

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/sathish136/mo-sub000/internal/domain/policy"
)

// fileStore is the JSON-file-backed implementation of policy.Service.
//
// Reads always hit the file so concurrent updates from another request are
// observed at the start of the next computation. Writes are serialized by the
// mutex and land via temp-file rename so a reader never sees a torn file.
type fileStore struct {
	path string
	mu   sync.RWMutex
}

func NewPolicyService(path string) policy.Service {
	return &fileStore{path: path}
}

// GetGroupWorkingHours implements policy.Service.
func (s *fileStore) GetGroupWorkingHours(ctx context.Context) (map[string]policy.GroupPolicy, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.loadLocked()
}

// GetGroupPolicy implements policy.Service.
func (s *fileStore) GetGroupPolicy(ctx context.Context, group string) (policy.GroupPolicy, error) {
	all, err := s.GetGroupWorkingHours(ctx)
	if err != nil {
		return policy.GroupPolicy{}, err
	}

	p, ok := all[group]
	if !ok {
		return policy.GroupPolicy{}, policy.ErrGroupNotFound
	}

	return p, nil
}

// UpdateGroupWorkingHours implements policy.Service.
func (s *fileStore) UpdateGroupWorkingHours(ctx context.Context, req policy.UpdateWorkingHoursRequest) (map[string]policy.GroupPolicy, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.loadLocked()
	if err != nil {
		return nil, err
	}

	current, ok := all[req.Group]
	if !ok {
		return nil, policy.ErrGroupNotFound
	}

	all[req.Group] = req.ApplyTo(current)

	if err := s.writeLocked(all); err != nil {
		return nil, err
	}

	return all, nil
}

// loadLocked reads the config file; a missing file yields the built-in defaults
// and a malformed file degrades to defaults with a logged warning, because a
// reporting feature must not fail on broken config.
func (s *fileStore) loadLocked() (map[string]policy.GroupPolicy, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return policy.Defaults(), nil
		}
		return nil, fmt.Errorf("%w: %v", policy.ErrStoreUnavailable, err)
	}

	var stored map[string]policy.GroupPolicy
	if err := json.Unmarshal(raw, &stored); err != nil {
		slog.Warn("working-hours config file is malformed, using defaults", "path", s.path, "error", err)
		return policy.Defaults(), nil
	}

	// Missing group entries fall back to their defaults.
	all := policy.Defaults()
	for group, p := range stored {
		all[group] = p
	}

	return all, nil
}

func (s *fileStore) writeLocked(all map[string]policy.GroupPolicy) error {
	raw, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal working-hours config: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".working_hours_*.json")
	if err != nil {
		return fmt.Errorf("%w: %v", policy.ErrStoreUnavailable, err)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write working-hours config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close working-hours config: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace working-hours config: %w", err)
	}

	return nil
}
