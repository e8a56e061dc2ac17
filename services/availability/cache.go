package availability

import (
	"context"
	"encoding/json"
	"time"

	"docportal/models"
	"docportal/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const cacheKeyPrefix = "availability:"

// Cache holds resolved availability per date so repeated catalog reads for
// the same date skip the store. Entries are short-lived and dropped on every
// booking write for that date.
type Cache interface {
	Get(ctx context.Context, date string) ([]models.AppointmentOption, bool)
	Set(ctx context.Context, date string, options []models.AppointmentOption)
	Invalidate(ctx context.Context, date string)
}

// RedisCache implements Cache on a dedicated Redis DB.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

// Get returns the cached availability for a date. Any cache failure is
// logged and treated as a miss.
func (c *RedisCache) Get(ctx context.Context, date string) ([]models.AppointmentOption, bool) {
	payload, err := c.client.Get(ctx, cacheKeyPrefix+date).Bytes()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("availability cache read failed",
				zap.String("date", date), zap.Error(err))
		}
		return nil, false
	}

	var options []models.AppointmentOption
	if err := json.Unmarshal(payload, &options); err != nil {
		utils.GetLogger().Warn("availability cache entry corrupt, dropping",
			zap.String("date", date), zap.Error(err))
		c.Invalidate(ctx, date)
		return nil, false
	}
	return options, true
}

// Set stores the resolved availability for a date.
func (c *RedisCache) Set(ctx context.Context, date string, options []models.AppointmentOption) {
	payload, err := json.Marshal(options)
	if err != nil {
		utils.GetLogger().Warn("availability cache encode failed",
			zap.String("date", date), zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, cacheKeyPrefix+date, payload, c.ttl).Err(); err != nil {
		utils.GetLogger().Warn("availability cache write failed",
			zap.String("date", date), zap.Error(err))
	}
}

// Invalidate drops the cached availability for a date.
func (c *RedisCache) Invalidate(ctx context.Context, date string) {
	if err := c.client.Del(ctx, cacheKeyPrefix+date).Err(); err != nil {
		utils.GetLogger().Warn("availability cache invalidation failed",
			zap.String("date", date), zap.Error(err))
	}
}
