package cache

import (
	"context"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"
)

// BiasCache holds bias-analysis text per paper so repeat bias-tab visits do
// not re-issue the generator call. Entries expire; the cache is never the
// source of truth for anything persisted.
type BiasCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewBiasCache(client *redisv9.Client, ttl time.Duration) *BiasCache {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &BiasCache{client: client, ttl: ttl}
}

func (c *BiasCache) Get(ctx context.Context, paperID uint) (string, bool, error) {
	raw, err := c.client.Get(ctx, c.key(paperID)).Result()
	if err == redisv9.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get bias analysis failed: %w", err)
	}
	return raw, true, nil
}

func (c *BiasCache) Set(ctx context.Context, paperID uint, analysis string) error {
	if err := c.client.Set(ctx, c.key(paperID), analysis, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set bias analysis failed: %w", err)
	}
	return nil
}

func (c *BiasCache) Delete(ctx context.Context, paperID uint) error {
	if err := c.client.Del(ctx, c.key(paperID)).Err(); err != nil {
		return fmt.Errorf("redis delete bias analysis failed: %w", err)
	}
	return nil
}

func (c *BiasCache) key(paperID uint) string {
	return fmt.Sprintf("paper:bias:%d", paperID)
}
