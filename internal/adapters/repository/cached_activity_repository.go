package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-pulse/internal/core/domain"
	"github.com/comitanigiacomo/kanso-pulse/internal/platform/logger"
)

var _ domain.ActivityRepository = (*CachedActivityRepository)(nil)

const recentCacheTTL = 30 * time.Minute

// CachedActivityRepository caches ListRecent results, which the dashboard reads on every refresh.
type CachedActivityRepository struct {
	next  domain.ActivityRepository
	cache *redis.Client
	log   *logger.Logger
}

func NewCachedActivityRepository(next domain.ActivityRepository, cache *redis.Client, log *logger.Logger) *CachedActivityRepository {
	return &CachedActivityRepository{
		next:  next,
		cache: cache,
		log:   log.With("component", "activity_cache"),
	}
}

func (r *CachedActivityRepository) cacheKey(limit int) string {
	return fmt.Sprintf("activity:recent:%d", limit)
}

// invalidate drops every cached window, since any write can change all of them.
func (r *CachedActivityRepository) invalidate(ctx context.Context) {
	iter := r.cache.Scan(ctx, 0, "activity:recent:*", 100).Iterator()
	for iter.Next(ctx) {
		if err := r.cache.Del(ctx, iter.Val()).Err(); err != nil {
			r.log.Warn("failed to invalidate cache key", "key", iter.Val(), "error", err)
		}
	}
	if err := iter.Err(); err != nil {
		r.log.Warn("failed to scan cache keys", "error", err)
	}
}

func (r *CachedActivityRepository) ListRecent(ctx context.Context, limit int) ([]*domain.ActivityRecord, error) {
	key := r.cacheKey(limit)

	val, err := r.cache.Get(ctx, key).Bytes()
	if err == nil {
		var records []*domain.ActivityRecord
		if err := json.Unmarshal(val, &records); err == nil {
			return records, nil
		}

		r.log.Warn("corrupted cache entry, cleaning up", "key", key)
		r.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		r.log.Warn("redis read error", "error", err)
	}

	records, err := r.next.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(records); err == nil {
		if setErr := r.cache.Set(ctx, key, data, recentCacheTTL).Err(); setErr != nil {
			r.log.Warn("redis set error", "error", setErr)
		}
	}

	return records, nil
}

func (r *CachedActivityRepository) GetByDate(ctx context.Context, date time.Time) (*domain.ActivityRecord, error) {
	return r.next.GetByDate(ctx, date)
}

func (r *CachedActivityRepository) Create(ctx context.Context, record *domain.ActivityRecord) error {
	if err := r.next.Create(ctx, record); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}

func (r *CachedActivityRepository) Update(ctx context.Context, record *domain.ActivityRecord) error {
	if err := r.next.Update(ctx, record); err != nil {
		return err
	}
	r.invalidate(ctx)
	return nil
}
