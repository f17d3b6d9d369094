// File: services/blockeddates/consistency.go
package blockeddates

import (
	"context"
	"fmt"
	"sort"
	"time"

	"appointly/models"
	"appointly/utils"

	"go.uber.org/zap"
)

// ValidateConsistency scans the whole collection and reports every date that
// appears on more than one record. Read-only; never mutates anything.
func (s *DefaultBlockedDateService) ValidateConsistency(ctx context.Context) (*models.ConsistencyReport, error) {
	records, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to fetch blocked dates: %v", err))
	}

	counts := make(map[string]int, len(records))
	for _, rec := range records {
		counts[rec.Date]++
	}
	var duplicates []string
	for date, n := range counts {
		if n > 1 {
			duplicates = append(duplicates, date)
		}
	}
	sort.Strings(duplicates)

	return &models.ConsistencyReport{
		IsValid:        len(duplicates) == 0,
		TotalCount:     len(records),
		DuplicateDates: duplicates,
		CheckedAt:      time.Now(),
	}, nil
}

// ForceSync repairs duplicate-date violations. Records are scanned in
// createdAt order (id as tiebreak) and the first record per date survives,
// so the oldest block always wins regardless of store enumeration order.
// Only the surplus duplicates are deleted, by id: the collection is never
// emptied mid-repair, and a crash can at worst leave some duplicates behind
// for the next run.
func (s *DefaultBlockedDateService) ForceSync(ctx context.Context) (*models.SyncResult, error) {
	records, err := s.Repo.GetAllSorted(ctx)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to fetch blocked dates: %v", err))
	}

	keep := make(map[string]bool, len(records))
	var surplus []string
	for _, rec := range records {
		if keep[rec.Date] {
			surplus = append(surplus, rec.ID)
			continue
		}
		keep[rec.Date] = true
	}

	var removed int64
	if len(surplus) > 0 {
		removed, err = s.Repo.DeleteByIDs(ctx, surplus)
		if err != nil {
			return nil, utils.NewUnavailable(fmt.Sprintf("failed to remove duplicate blocked dates: %v", err))
		}
		s.invalidate(ctx)
	}

	result := &models.SyncResult{
		OriginalCount: len(records),
		UniqueCount:   len(keep),
		RemovedCount:  int(removed),
		SyncedAt:      time.Now(),
	}
	utils.GetLogger().Info("Blocked dates force-sync completed",
		zap.Int("original", result.OriginalCount),
		zap.Int("unique", result.UniqueCount),
		zap.Int("removed", result.RemovedCount))
	return result, nil
}
