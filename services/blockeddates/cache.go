// File: services/blockeddates/cache.go
package blockeddates

import (
	"context"
	"encoding/json"
	"time"

	"appointly/models"
	"appointly/utils"

	"go.uber.org/zap"
)

const (
	cacheKeyAll = "blocked_dates:all"
	cacheTTL    = 5 * time.Minute
)

// cachedAll reads the full list from cache. Cache misses and cache failures
// are equivalent: the caller falls through to the store.
func (s *DefaultBlockedDateService) cachedAll(ctx context.Context) ([]models.BlockedDate, bool) {
	if s.Cache == nil {
		return nil, false
	}
	raw, err := s.Cache.Get(ctx, cacheKeyAll).Result()
	if err != nil {
		return nil, false
	}
	var records []models.BlockedDate
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, false
	}
	return records, true
}

func (s *DefaultBlockedDateService) storeAll(ctx context.Context, records []models.BlockedDate) {
	if s.Cache == nil {
		return
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return
	}
	if err := s.Cache.Set(ctx, cacheKeyAll, raw, cacheTTL).Err(); err != nil {
		utils.GetLogger().Debug("Blocked dates cache write failed", zap.Error(err))
	}
}

// invalidate drops the cached list after any write path.
func (s *DefaultBlockedDateService) invalidate(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Del(ctx, cacheKeyAll).Err(); err != nil {
		utils.GetLogger().Debug("Blocked dates cache invalidation failed", zap.Error(err))
	}
}
