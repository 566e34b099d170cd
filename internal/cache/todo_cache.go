package cache

import (
	"context"
	"encoding/json"
	"time"

	dom "github.com/kosukesaigusa/poker-hand-history/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyListPrefix = "todo:list:"

// TodoCache caches each user's todo list in Redis. Keys are scoped by user
// id, matching the ownership boundary of the queries they mirror.
type TodoCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTodoCache returns a new TodoCache.
func NewTodoCache(rdb *redis.Client, ttl time.Duration) *TodoCache {
	return &TodoCache{rdb: rdb, ttl: ttl}
}

// GetList returns the cached list for the user or nil if miss.
func (c *TodoCache) GetList(ctx context.Context, userID string) ([]dom.Todo, error) {
	b, err := c.rdb.Get(ctx, keyListPrefix+userID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return decodeList(b)
}

// SetList stores the user's list in cache. A nil list is stored as an empty
// one, so an empty account is still a cache hit on the next read.
func (c *TodoCache) SetList(ctx context.Context, userID string, list []dom.Todo) error {
	b, err := encodeList(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, keyListPrefix+userID, b, c.ttl).Err()
}

func encodeList(list []dom.Todo) ([]byte, error) {
	if list == nil {
		list = []dom.Todo{}
	}
	return json.Marshal(list)
}

func decodeList(b []byte) ([]dom.Todo, error) {
	list := []dom.Todo{}
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// Invalidate drops the user's cached list (cache invalidation on write).
func (c *TodoCache) Invalidate(ctx context.Context, userID string) error {
	return c.rdb.Del(ctx, keyListPrefix+userID).Err()
}
