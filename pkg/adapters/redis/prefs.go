// Package redis persists preferences in a Redis instance, for server
// deployments where several engine processes share one scope setting.
package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/atelier-tools/sift/pkg/domain"
	"github.com/atelier-tools/sift/pkg/ports"
)

const defaultKey = "sift:prefs:scope"

// PreferenceStore implements ports.PreferenceStore on a Redis client.
type PreferenceStore struct {
	client *redis.Client
	key    string
}

// Option configures a PreferenceStore.
type Option func(*PreferenceStore)

// WithKey overrides the Redis key, so multiple documents can keep
// separate preferences on one instance.
func WithKey(key string) Option {
	return func(s *PreferenceStore) { s.key = key }
}

// New wraps an existing Redis client.
func New(client *redis.Client, opts ...Option) *PreferenceStore {
	s := &PreferenceStore{client: client, key: defaultKey}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *PreferenceStore) LoadScope(ctx context.Context) (domain.Scope, error) {
	val, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", domain.ErrPreferenceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("redis: load scope: %w", err)
	}
	return domain.Scope(val), nil
}

func (s *PreferenceStore) SaveScope(ctx context.Context, scope domain.Scope) error {
	if err := s.client.Set(ctx, s.key, string(scope), 0).Err(); err != nil {
		return fmt.Errorf("redis: save scope: %w", err)
	}
	return nil
}

var _ ports.PreferenceStore = (*PreferenceStore)(nil)
