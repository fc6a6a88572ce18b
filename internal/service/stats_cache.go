package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// Dashboard snapshot keys
const (
	StatsKeySystem       = "dashboard:stats:system"
	StatsKeyBedOccupancy = "dashboard:stats:bed_occupancy"
	StatsKeyPatients     = "dashboard:stats:patients"
)

var statsKeys = []string{StatsKeySystem, StatsKeyBedOccupancy, StatsKeyPatients}

// StatsCache keeps short-lived dashboard snapshots. Writers call Invalidate
// after committing so the next read recomputes from the database.
type StatsCache interface {
	Get(ctx context.Context, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, key string, value interface{}) error
	Invalidate(ctx context.Context) error
}

type redisStatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisStatsCache(client *redis.Client, ttl time.Duration) StatsCache {
	return &redisStatsCache{client: client, ttl: ttl}
}

func (c *redisStatsCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *redisStatsCache) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, raw, c.ttl).Err()
}

func (c *redisStatsCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, statsKeys...).Err()
}

type memoryStatsCache struct {
	cache *gocache.Cache
	ttl   time.Duration
}

func NewMemoryStatsCache(cache *gocache.Cache, ttl time.Duration) StatsCache {
	return &memoryStatsCache{cache: cache, ttl: ttl}
}

func (c *memoryStatsCache) Get(_ context.Context, key string, dest interface{}) (bool, error) {
	v, found := c.cache.Get(key)
	if !found {
		return false, nil
	}
	raw, ok := v.([]byte)
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *memoryStatsCache) Set(_ context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.cache.Set(key, raw, c.ttl)
	return nil
}

func (c *memoryStatsCache) Invalidate(_ context.Context) error {
	for _, key := range statsKeys {
		c.cache.Delete(key)
	}
	return nil
}
