// Package tests provides reusable contract suites for ports
// implementations. Adapters call these from their own test files so every
// backend satisfies the same behavior.
package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-tools/sift/pkg/domain"
	"github.com/atelier-tools/sift/pkg/ports"
)

// RunPreferenceStoreContract verifies the PreferenceStore semantics:
// missing value reports ErrPreferenceNotFound, saves round-trip, and the
// latest save wins.
func RunPreferenceStoreContract(t *testing.T, store ports.PreferenceStore) {
	t.Helper()
	ctx := context.Background()

	_, err := store.LoadScope(ctx)
	assert.ErrorIs(t, err, domain.ErrPreferenceNotFound, "empty store should report not found")

	require.NoError(t, store.SaveScope(ctx, domain.ScopeAllPages))
	scope, err := store.LoadScope(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ScopeAllPages, scope)

	require.NoError(t, store.SaveScope(ctx, domain.ScopeCurrentSelection))
	scope, err = store.LoadScope(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ScopeCurrentSelection, scope, "latest save should win")
}
