package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "github.com/Ianrury/api-tash-manajement/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "tasks:list:"

// TaskCache caches per-user task listings in Redis. Keys carry the owner id
// plus the filter/sort variant, so one user's writes never evict another's
// entries.
type TaskCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewTaskCache returns a new TaskCache.
func NewTaskCache(rdb *redis.Client, ttl time.Duration) *TaskCache {
	return &TaskCache{rdb: rdb, ttl: ttl}
}

func listKey(userID int64, filter dom.TaskFilter) string {
	status := "all"
	if filter.Status != nil {
		status = string(*filter.Status)
	}
	sort := "default"
	if filter.Sort != dom.SortDefault {
		sort = string(filter.Sort)
	}
	return keyPrefix + strconv.FormatInt(userID, 10) + ":" + status + ":" + sort
}

// GetList returns the cached listing or nil on miss.
func (c *TaskCache) GetList(ctx context.Context, userID int64, filter dom.TaskFilter) ([]dom.Task, error) {
	b, err := c.rdb.Get(ctx, listKey(userID, filter)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var list []dom.Task
	if err := json.Unmarshal(b, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SetList stores the listing. A nil slice is stored as an empty one so an
// empty result still reads as a hit, not a miss.
func (c *TaskCache) SetList(ctx context.Context, userID int64, filter dom.TaskFilter, list []dom.Task) error {
	if list == nil {
		list = []dom.Task{}
	}
	b, err := json.Marshal(list)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listKey(userID, filter), b, c.ttl).Err()
}

// InvalidateUser drops every cached listing variant for one user.
func (c *TaskCache) InvalidateUser(ctx context.Context, userID int64) error {
	pattern := keyPrefix + strconv.FormatInt(userID, 10) + ":*"
	iter := c.rdb.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := c.rdb.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
