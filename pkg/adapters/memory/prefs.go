package memory

import (
	"context"
	"sync"

	"github.com/atelier-tools/sift/pkg/domain"
	"github.com/atelier-tools/sift/pkg/ports"
)

// PreferenceStore keeps preferences in process memory. Nothing survives
// a restart; useful for tests and embedded runs.
type PreferenceStore struct {
	mu    sync.RWMutex
	scope *domain.Scope
}

// NewPreferenceStore returns an empty store.
func NewPreferenceStore() *PreferenceStore {
	return &PreferenceStore{}
}

func (s *PreferenceStore) LoadScope(ctx context.Context) (domain.Scope, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.scope == nil {
		return "", domain.ErrPreferenceNotFound
	}
	return *s.scope, nil
}

func (s *PreferenceStore) SaveScope(ctx context.Context, scope domain.Scope) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scope = &scope
	return nil
}

var _ ports.PreferenceStore = (*PreferenceStore)(nil)
