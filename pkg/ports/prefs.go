package ports

import (
	"context"

	"github.com/atelier-tools/sift/pkg/domain"
)

// PreferenceStore persists the user's scope setting across runs. The
// engine loads it at startup and saves on change and at shutdown.
type PreferenceStore interface {
	// LoadScope returns the persisted scope, or
	// domain.ErrPreferenceNotFound when nothing was saved yet.
	LoadScope(ctx context.Context) (domain.Scope, error)

	// SaveScope persists the scope.
	SaveScope(ctx context.Context, scope domain.Scope) error
}
