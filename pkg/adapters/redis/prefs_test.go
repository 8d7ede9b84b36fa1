package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atelier-tools/sift/pkg/domain"
	"github.com/atelier-tools/sift/pkg/ports/tests"
)

func newTestStore(t *testing.T, opts ...Option) (*PreferenceStore, *miniredis.Miniredis) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return New(client, opts...), srv
}

func TestPreferenceStoreContract(t *testing.T) {
	store, _ := newTestStore(t)
	tests.RunPreferenceStoreContract(t, store)
}

func TestCustomKeyIsolatesDocuments(t *testing.T) {
	ctx := context.Background()
	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })

	a := New(client, WithKey("sift:prefs:doc-a"))
	b := New(client, WithKey("sift:prefs:doc-b"))

	require.NoError(t, a.SaveScope(ctx, domain.ScopeAllPages))
	_, err := b.LoadScope(ctx)
	assert.ErrorIs(t, err, domain.ErrPreferenceNotFound)

	scope, err := a.LoadScope(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ScopeAllPages, scope)
}

func TestLoadAfterServerStopped(t *testing.T) {
	store, srv := newTestStore(t)
	srv.Close()

	_, err := store.LoadScope(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrPreferenceNotFound)
}
