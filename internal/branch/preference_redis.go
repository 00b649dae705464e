package branch

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

const selectionKeyPrefix = "kono:selected-branch:"

// RedisPreferenceStore keeps selections without expiry, the same lifetime
// the site used to get from localStorage.
type RedisPreferenceStore struct {
	client *redis.Client
}

func NewRedisPreferenceStore(client *redis.Client) *RedisPreferenceStore {
	return &RedisPreferenceStore{client: client}
}

func (s *RedisPreferenceStore) SaveSelection(ctx context.Context, visitorID string, branchID int) error {
	if err := s.client.Set(ctx, selectionKey(visitorID), branchID, 0).Err(); err != nil {
		return fmt.Errorf("save branch selection: %w", err)
	}
	return nil
}

func (s *RedisPreferenceStore) LoadSelection(ctx context.Context, visitorID string) (int, error) {
	raw, err := s.client.Get(ctx, selectionKey(visitorID)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrNoSelection
	}
	if err != nil {
		return 0, fmt.Errorf("load branch selection: %w", err)
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("corrupt branch selection %q: %w", raw, err)
	}
	return id, nil
}

func selectionKey(visitorID string) string {
	return selectionKeyPrefix + visitorID
}
