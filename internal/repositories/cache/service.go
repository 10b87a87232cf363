package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ArivunidhiA/Transaction-Data-Integrity-Monitoring-System/internal/models"

	"github.com/redis/go-redis/v9"
)

// CacheService is a JSON cache over redis used to materialize per-day
// metrics for dates that can no longer change.
type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{
		client: client,
		ttl:    defaultTTL,
	}
}

// Base operations
func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

func dailyMetricsKey(date string) string {
	return fmt.Sprintf("metrics:day:%s", date)
}

// CacheDailyMetrics stores one day's rollup under its date key.
func (s *CacheService) CacheDailyMetrics(ctx context.Context, m models.DailyMetrics) error {
	return s.Set(ctx, dailyMetricsKey(m.Date), m)
}

// GetDailyMetrics returns the cached rollup for a date, or nil on a miss.
func (s *CacheService) GetDailyMetrics(ctx context.Context, date string) (*models.DailyMetrics, error) {
	var m models.DailyMetrics
	found, err := s.Get(ctx, dailyMetricsKey(date), &m)
	if err != nil || !found {
		return nil, err
	}
	return &m, nil
}

// InvalidateDay drops the cached rollup for a date; called whenever a
// transaction lands on that date.
func (s *CacheService) InvalidateDay(ctx context.Context, date string) error {
	return s.Delete(ctx, dailyMetricsKey(date))
}

// FlushAll flushes all keys from the cache
func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

// HealthCheck pings the redis backend.
func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

// Close closes the Redis client connection
func (s *CacheService) Close() error {
	return s.client.Close()
}
