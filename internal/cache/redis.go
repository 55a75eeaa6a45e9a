package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ostrikov/airbooking/config"
	"github.com/ostrikov/airbooking/internal/domain"
	"github.com/redis/go-redis/v9"
)

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

func (c *RedisCache) GetSearch(ctx context.Context, origin, destination string) ([]domain.Flight, error) {
	data, err := c.client.Get(ctx, searchKey(origin, destination)).Bytes()
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

func (c *RedisCache) SetSearch(ctx context.Context, origin, destination string, flights []domain.Flight) error {
	payload, err := json.Marshal(flights)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, searchKey(origin, destination), payload, c.searchTTL).Err()
}

// InvalidateSearch drops the cached listing for a route pair after a
// route upsert changes it.
func (c *RedisCache) InvalidateSearch(ctx context.Context, origin, destination string) error {
	return c.client.Del(ctx, searchKey(origin, destination)).Err()
}

// AcquireHold takes a short-lived advisory lock on (flight, departure,
// passport) so a double-submitted booking request fails fast before ever
// reaching the database. The schema constraints remain the authority.
func (c *RedisCache) AcquireHold(ctx context.Context, flightNum string, departure time.Time, passport string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, holdKey(flightNum, departure, passport), "held", ttl).Result()
}

func (c *RedisCache) ReleaseHold(ctx context.Context, flightNum string, departure time.Time, passport string) error {
	return c.client.Del(ctx, holdKey(flightNum, departure, passport)).Err()
}

func searchKey(origin, destination string) string {
	return fmt.Sprintf("cache:flights:%s:%s", origin, destination)
}

func holdKey(flightNum string, departure time.Time, passport string) string {
	return fmt.Sprintf("hold:flight:%s:%s:%s", flightNum, departure.Format("2006-01-02"), passport)
}
