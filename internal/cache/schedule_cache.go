package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"resto-backend/internal/metrics"
	"resto-backend/internal/model"
)

const weekPrefix = "schedule:week:"

// ScheduleCache is a read-through cache of computed schedule weeks, keyed by
// location and date range. Cache failures are logged and treated as misses.
type ScheduleCache struct {
	kv  KV
	ttl time.Duration
	log *zap.Logger
}

func NewScheduleCache(kv KV, ttl time.Duration, log *zap.Logger) *ScheduleCache {
	if kv == nil {
		kv = Noop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ScheduleCache{kv: kv, ttl: ttl, log: log}
}

func locationPrefix(locationID uint) string {
	return fmt.Sprintf("%s%d:", weekPrefix, locationID)
}

func weekKey(locationID uint, start, end string) string {
	return fmt.Sprintf("%s%s:%s", locationPrefix(locationID), start, end)
}

// GetWeek reports whether a cached week was found.
func (c *ScheduleCache) GetWeek(ctx context.Context, locationID uint, start, end string) (*model.ScheduleWeek, bool) {
	if c.ttl <= 0 {
		return nil, false
	}
	raw, err := c.kv.Get(ctx, weekKey(locationID, start, end))
	if err != nil {
		if !errors.Is(err, ErrMiss) {
			c.log.Warn("schedule cache read failed", zap.Error(err), zap.Uint("location_id", locationID))
		}
		metrics.IncWeekCache("miss")
		return nil, false
	}
	var week model.ScheduleWeek
	if err := json.Unmarshal([]byte(raw), &week); err != nil {
		c.log.Warn("schedule cache entry is corrupt", zap.Error(err), zap.Uint("location_id", locationID))
		metrics.IncWeekCache("miss")
		return nil, false
	}
	metrics.IncWeekCache("hit")
	return &week, true
}

func (c *ScheduleCache) PutWeek(ctx context.Context, week *model.ScheduleWeek) {
	if c.ttl <= 0 || week == nil {
		return
	}
	data, err := json.Marshal(week)
	if err != nil {
		c.log.Warn("schedule cache encode failed", zap.Error(err))
		return
	}
	if err := c.kv.Set(ctx, weekKey(week.LocationID, week.StartDate, week.EndDate), string(data), c.ttl); err != nil {
		c.log.Warn("schedule cache write failed", zap.Error(err), zap.Uint("location_id", week.LocationID))
	}
}

// InvalidateLocation drops every cached range of the location.
func (c *ScheduleCache) InvalidateLocation(ctx context.Context, locationID uint) {
	if err := c.kv.DeletePrefix(ctx, locationPrefix(locationID)); err != nil {
		c.log.Warn("schedule cache invalidation failed", zap.Error(err), zap.Uint("location_id", locationID))
	}
}

// InvalidateAll drops every cached week. Role and employee writes change
// completion and rosters across locations. A nil cache is a no-op.
func (c *ScheduleCache) InvalidateAll(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.kv.DeletePrefix(ctx, weekPrefix); err != nil {
		c.log.Warn("schedule cache invalidation failed", zap.Error(err))
	}
}
