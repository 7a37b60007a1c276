package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/rueidis"

	model "taskflow.com/taskflow/internal/models"
)

type RedisTaskCache struct {
	client rueidis.Client
	prefix string
	ttl    time.Duration
}

func NewRedisTaskCache(client rueidis.Client, prefix string, ttl time.Duration) *RedisTaskCache {
	return &RedisTaskCache{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

func (c *RedisTaskCache) Get(ctx context.Context, id string) (*model.Task, bool) {
	cmd := c.client.B().Get().Key(c.key(id)).Build()
	payload, err := c.client.Do(ctx, cmd).AsBytes()
	if err != nil {
		if !rueidis.IsRedisNil(err) {
			log.Printf("cache: get %s failed: %v", id, err)
		}
		return nil, false
	}

	var task model.Task
	if err := json.Unmarshal(payload, &task); err != nil {
		log.Printf("cache: corrupt entry for %s: %v", id, err)
		c.Invalidate(ctx, id)
		return nil, false
	}
	return &task, true
}

func (c *RedisTaskCache) Set(ctx context.Context, task *model.Task) {
	payload, err := json.Marshal(task)
	if err != nil {
		log.Printf("cache: marshal %s failed: %v", task.ID, err)
		return
	}

	cmd := c.client.B().Set().Key(c.key(task.ID)).Value(string(payload)).
		Ex(c.ttl).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		log.Printf("cache: set %s failed: %v", task.ID, err)
	}
}

func (c *RedisTaskCache) Invalidate(ctx context.Context, id string) {
	cmd := c.client.B().Del().Key(c.key(id)).Build()
	if err := c.client.Do(ctx, cmd).Error(); err != nil {
		log.Printf("cache: invalidate %s failed: %v", id, err)
	}
}

func (c *RedisTaskCache) key(id string) string {
	return c.prefix + id
}
