package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skyrelay/emptylegs/config"
	"github.com/skyrelay/emptylegs/internal/domain"
)

// RedisCache stores flight search results per filter key. Because keys
// vary by filter, invalidation bumps a generation counter that is
// folded into every key instead of scanning for keys to delete; stale
// generations simply age out with the TTL.
type RedisCache struct {
	client    *redis.Client
	searchTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, searchTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:    redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		searchTTL: searchTTL,
	}
}

func (c *RedisCache) GetFlights(ctx context.Context, filterKey string) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, searchKey(c.generation(ctx), filterKey)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var flights []domain.Flight
	if err := json.Unmarshal(data, &flights); err != nil {
		return nil, err
	}
	return flights, nil
}

func (c *RedisCache) SetFlights(ctx context.Context, filterKey string, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKey(c.generation(ctx), filterKey), payload, c.searchTTL).Err()
}

// Invalidate makes every cached search result unreachable.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, generationKey()).Err()
}

func (c *RedisCache) generation(ctx context.Context) int64 {
	gen, err := c.client.Get(ctx, generationKey()).Int64()
	if err != nil {
		return 0
	}
	return gen
}

func generationKey() string {
	return "cache:flights:gen"
}

func searchKey(generation int64, filterKey string) string {
	return fmt.Sprintf("cache:flights:%d:%s", generation, filterKey)
}
