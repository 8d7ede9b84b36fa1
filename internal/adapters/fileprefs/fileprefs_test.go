package fileprefs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-tools/sift/pkg/domain"
	"github.com/atelier-tools/sift/pkg/ports/tests"
)

func TestPreferenceStoreContract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	tests.RunPreferenceStoreContract(t, New(path))
}

func TestSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.json")
	store := New(path)

	require.NoError(t, store.SaveScope(context.Background(), domain.ScopeAllPages))
	_, err := os.Stat(path)
	require.NoError(t, err)
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := New(path).LoadScope(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrPreferenceNotFound)
}

func TestTwoStoresShareOneFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.json")
	ctx := context.Background()

	require.NoError(t, New(path).SaveScope(ctx, domain.ScopeCurrentSelection))
	scope, err := New(path).LoadScope(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ScopeCurrentSelection, scope)
}
