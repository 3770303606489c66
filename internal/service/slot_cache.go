package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clinicbook/internal/domain/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const slotCacheKeyPrefix = "openslots:"

// SlotCache caches resolved open slots per (doctor_location_id, date).
// Stale entries are acceptable: the booking transaction re-checks conflicts
// under its own lock, so a stale "free" window is simply rejected at booking
// time. Every cache failure is non-fatal and degrades to a resolver query.
type SlotCache interface {
	Get(ctx context.Context, doctorLocationID int, date time.Time) ([]entity.TimeWindow, bool)
	Set(ctx context.Context, doctorLocationID int, date time.Time, slots []entity.TimeWindow)
	Invalidate(ctx context.Context, doctorLocationID int, date time.Time)
	// InvalidatePair drops every cached date for the pair; used when the
	// pair's availability templates change.
	InvalidatePair(ctx context.Context, doctorLocationID int)
}

type redisSlotCache struct {
	client *redis.Client
	log    *logrus.Logger
	ttl    time.Duration
}

// NewSlotCache returns nil when no Redis client is configured; callers
// treat a nil cache as disabled.
func NewSlotCache(client *redis.Client, log *logrus.Logger, ttl time.Duration) SlotCache {
	if client == nil {
		return nil
	}
	return &redisSlotCache{
		client: client,
		log:    log,
		ttl:    ttl,
	}
}

func slotCacheKey(doctorLocationID int, date time.Time) string {
	return fmt.Sprintf("%s%d:%s", slotCacheKeyPrefix, doctorLocationID, date.Format("2006-01-02"))
}

func (c *redisSlotCache) Get(ctx context.Context, doctorLocationID int, date time.Time) ([]entity.TimeWindow, bool) {
	payload, err := c.client.Get(ctx, slotCacheKey(doctorLocationID, date)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warnf("Slot cache read failed for doctor location %d (non-fatal): %+v", doctorLocationID, err)
		}
		return nil, false
	}

	var slots []entity.TimeWindow
	if err := json.Unmarshal(payload, &slots); err != nil {
		c.log.Warnf("Slot cache payload corrupt for doctor location %d, dropping: %+v", doctorLocationID, err)
		c.Invalidate(ctx, doctorLocationID, date)
		return nil, false
	}
	return slots, true
}

func (c *redisSlotCache) Set(ctx context.Context, doctorLocationID int, date time.Time, slots []entity.TimeWindow) {
	payload, err := json.Marshal(slots)
	if err != nil {
		c.log.Warnf("Slot cache encode failed for doctor location %d (non-fatal): %+v", doctorLocationID, err)
		return
	}
	if err := c.client.Set(ctx, slotCacheKey(doctorLocationID, date), payload, c.ttl).Err(); err != nil {
		c.log.Warnf("Slot cache write failed for doctor location %d (non-fatal): %+v", doctorLocationID, err)
	}
}

func (c *redisSlotCache) Invalidate(ctx context.Context, doctorLocationID int, date time.Time) {
	if err := c.client.Del(ctx, slotCacheKey(doctorLocationID, date)).Err(); err != nil {
		c.log.Warnf("Slot cache invalidation failed for doctor location %d (non-fatal): %+v", doctorLocationID, err)
	}
}

func (c *redisSlotCache) InvalidatePair(ctx context.Context, doctorLocationID int) {
	pattern := fmt.Sprintf("%s%d:*", slotCacheKeyPrefix, doctorLocationID)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Warnf("Slot cache invalidation failed for key %s (non-fatal): %+v", iter.Val(), err)
		}
	}
	if err := iter.Err(); err != nil {
		c.log.Warnf("Slot cache scan failed for doctor location %d (non-fatal): %+v", doctorLocationID, err)
	}
}
