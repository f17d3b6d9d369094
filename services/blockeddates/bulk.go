// File: services/blockeddates/bulk.go
package blockeddates

import (
	"context"
	"fmt"
	"time"

	"appointly/models"
	"appointly/utils"

	"go.uber.org/zap"
)

// DefaultBulkReason is used when a bulk block arrives without a reason.
const DefaultBulkReason = "Day blocked off"

// BlockMany blocks a batch of dates in one logical operation. Validation is
// all-or-nothing: a single malformed date rejects the whole batch before any
// write. The insert stage is partial-failure tolerant: dates already blocked
// (or repeated within the batch) are skipped, never fatal.
func (s *DefaultBlockedDateService) BlockMany(ctx context.Context, dates []string, reason, pattern string) (*models.BulkBlockResult, error) {
	if len(dates) == 0 {
		return nil, utils.NewInvalidArgument("dates list is required")
	}
	for _, d := range dates {
		if !models.ValidDateFormat(d) {
			return nil, utils.NewInvalidArgument(fmt.Sprintf("invalid date format: %s, use YYYY-MM-DD", d))
		}
	}
	if reason == "" {
		reason = DefaultBulkReason
	}
	if pattern == "" {
		pattern = models.RecurNone
	}
	if !models.ValidRecurringPattern(pattern) {
		return nil, utils.NewInvalidArgument("invalid recurring pattern")
	}

	// One range query covering the batch finds the dates already blocked, so
	// skipped dates can be reported instead of silently dropped.
	lo, hi := dates[0], dates[0]
	for _, d := range dates[1:] {
		if d < lo {
			lo = d
		}
		if d > hi {
			hi = d
		}
	}
	existing, err := s.Repo.GetInRange(ctx, lo, hi)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to check existing blocks: %v", err))
	}
	blocked := make(map[string]bool, len(existing))
	for _, rec := range existing {
		blocked[rec.Date] = true
	}

	now := time.Now()
	var records []models.BlockedDate
	var skipped []string
	seen := make(map[string]bool, len(dates))
	for _, d := range dates {
		if blocked[d] || seen[d] {
			skipped = append(skipped, d)
			continue
		}
		seen[d] = true
		records = append(records, models.BlockedDate{
			Date:             d,
			Reason:           reason,
			RecurringPattern: pattern,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}

	inserted := 0
	if len(records) > 0 {
		// Unordered insert: a concurrent duplicate slipping past the
		// pre-check fails alone without aborting the rest of the batch.
		inserted, err = s.Repo.CreateMany(ctx, records)
		if err != nil {
			return nil, utils.NewUnavailable(fmt.Sprintf("failed to insert blocked dates: %v", err))
		}
		s.invalidate(ctx)
	}

	utils.GetLogger().Info("Bulk block completed",
		zap.Int("requested", len(dates)),
		zap.Int("inserted", inserted),
		zap.Int("skipped", len(skipped)))

	return &models.BulkBlockResult{InsertedCount: inserted, SkippedDates: skipped}, nil
}
