// Package fileprefs persists preferences in a JSON file, guarded by an
// advisory file lock so concurrent CLI invocations do not clobber each
// other.
package fileprefs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/atelier-tools/sift/pkg/domain"
	"github.com/atelier-tools/sift/pkg/ports"
)

// lockRetry is how often a blocked lock attempt is retried.
const lockRetry = 25 * time.Millisecond

type preferences struct {
	Scope domain.Scope `json:"scope,omitempty"`
}

// Store implements ports.PreferenceStore on a JSON file.
type Store struct {
	path string
	lock *flock.Flock
}

// New creates a store at path. The file is created on first save.
func New(path string) *Store {
	return &Store{path: path, lock: flock.New(path + ".lock")}
}

func (s *Store) LoadScope(ctx context.Context) (domain.Scope, error) {
	locked, err := s.lock.TryRLockContext(ctx, lockRetry)
	if err != nil {
		return "", fmt.Errorf("fileprefs: lock %s: %w", s.path, err)
	}
	if !locked {
		return "", fmt.Errorf("fileprefs: lock %s: not acquired", s.path)
	}
	defer s.lock.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", domain.ErrPreferenceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("fileprefs: read %s: %w", s.path, err)
	}
	var prefs preferences
	if err := json.Unmarshal(data, &prefs); err != nil {
		return "", fmt.Errorf("fileprefs: parse %s: %w", s.path, err)
	}
	if prefs.Scope == "" {
		return "", domain.ErrPreferenceNotFound
	}
	return prefs.Scope, nil
}

func (s *Store) SaveScope(ctx context.Context, scope domain.Scope) error {
	locked, err := s.lock.TryLockContext(ctx, lockRetry)
	if err != nil {
		return fmt.Errorf("fileprefs: lock %s: %w", s.path, err)
	}
	if !locked {
		return fmt.Errorf("fileprefs: lock %s: not acquired", s.path)
	}
	defer s.lock.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("fileprefs: create dir: %w", err)
	}
	data, err := json.MarshalIndent(preferences{Scope: scope}, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("fileprefs: write %s: %w", s.path, err)
	}
	return nil
}

var _ ports.PreferenceStore = (*Store)(nil)
