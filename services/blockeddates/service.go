// File: services/blockeddates/service.go
package blockeddates

import (
	"context"
	"fmt"
	"time"

	"appointly/models"
	"appointly/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

func (s *DefaultBlockedDateService) ListAll(ctx context.Context) ([]models.BlockedDate, error) {
	if cached, ok := s.cachedAll(ctx); ok {
		return cached, nil
	}
	records, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to fetch blocked dates: %v", err))
	}
	s.storeAll(ctx, records)
	return records, nil
}

func (s *DefaultBlockedDateService) ListInRange(ctx context.Context, start, end string) ([]models.BlockedDate, error) {
	if !models.ValidDateFormat(start) || !models.ValidDateFormat(end) {
		return nil, utils.NewInvalidArgument("invalid date format, use YYYY-MM-DD")
	}
	records, err := s.Repo.GetInRange(ctx, start, end)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to fetch blocked dates in range: %v", err))
	}
	return records, nil
}

func (s *DefaultBlockedDateService) ListByMonth(ctx context.Context, year, month int) ([]models.BlockedDate, error) {
	if month < 1 || month > 12 || year < 1 || year > 9999 {
		return nil, utils.NewInvalidArgument("invalid year or month")
	}
	start, end := MonthWindow(year, month)
	records, err := s.Repo.GetInRange(ctx, start, end)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to fetch blocked dates for month: %v", err))
	}
	return records, nil
}

// MonthWindow returns the inclusive first/last day of a month as YYYY-MM-DD.
func MonthWindow(year, month int) (string, string) {
	start := fmt.Sprintf("%04d-%02d-01", year, month)
	// Day zero of the next month is the last day of this one.
	last := time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
	return start, last.Format("2006-01-02")
}

func (s *DefaultBlockedDateService) CheckDate(ctx context.Context, date string) (*models.DateCheck, error) {
	if !models.ValidDateFormat(date) {
		return nil, utils.NewInvalidArgument("invalid date format, use YYYY-MM-DD")
	}
	rec, err := s.Repo.GetByDate(ctx, date)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to check date: %v", err))
	}
	check := &models.DateCheck{Date: date}
	if rec != nil {
		check.Blocked = true
		check.Reason = rec.Reason
	}
	return check, nil
}

func (s *DefaultBlockedDateService) Summary(ctx context.Context) (*models.BlockedDateSummary, error) {
	records, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	briefs := make([]models.BlockedDateBrief, len(records))
	for i, rec := range records {
		briefs[i] = models.BlockedDateBrief{Date: rec.Date, Reason: rec.Reason}
	}
	return &models.BlockedDateSummary{
		TotalBlockedDates: len(records),
		BlockedDates:      briefs,
		LastUpdated:       time.Now(),
	}, nil
}

func (s *DefaultBlockedDateService) Block(ctx context.Context, date, reason, pattern string) (*models.BlockedDate, error) {
	if !models.ValidDateFormat(date) {
		return nil, utils.NewInvalidArgument("invalid date format, use YYYY-MM-DD")
	}
	if reason == "" {
		return nil, utils.NewInvalidArgument("reason is required")
	}
	if pattern == "" {
		pattern = models.RecurNone
	}
	if !models.ValidRecurringPattern(pattern) {
		return nil, utils.NewInvalidArgument("invalid recurring pattern")
	}

	// Opportunistic pre-check; the unique index on date is the real guard
	// against the race between two concurrent blocks of the same date.
	existing, err := s.Repo.GetByDate(ctx, date)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to check existing block: %v", err))
	}
	if existing != nil {
		return nil, utils.NewConflict("date is already blocked")
	}

	now := time.Now()
	rec := &models.BlockedDate{
		Date:             date,
		Reason:           reason,
		RecurringPattern: pattern,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.NewConflict("date is already blocked")
		}
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to create blocked date: %v", err))
	}
	s.invalidate(ctx)
	return rec, nil
}

func (s *DefaultBlockedDateService) UpdateBlockedDate(ctx context.Context, id string, req models.UpdateBlockedDateRequest) error {
	fields := map[string]any{}
	if req.Date != "" {
		if !models.ValidDateFormat(req.Date) {
			return utils.NewInvalidArgument("invalid date format, use YYYY-MM-DD")
		}
		// A date change must not collide with a different record.
		existing, err := s.Repo.GetByDate(ctx, req.Date)
		if err != nil {
			return utils.NewUnavailable(fmt.Sprintf("failed to check existing block: %v", err))
		}
		if existing != nil && existing.ID != id {
			return utils.NewConflict("date is already blocked by another record")
		}
		fields["date"] = req.Date
	}
	if req.Reason != "" {
		fields["reason"] = req.Reason
	}
	if req.RecurringPattern != "" {
		if !models.ValidRecurringPattern(req.RecurringPattern) {
			return utils.NewInvalidArgument("invalid recurring pattern")
		}
		fields["recurringPattern"] = req.RecurringPattern
	}
	if len(fields) == 0 {
		return utils.NewInvalidArgument("no changes made to blocked date")
	}
	fields["updatedAt"] = time.Now()

	if err := s.Repo.Update(ctx, id, fields); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.NewNotFound("blocked date not found")
		}
		if mongo.IsDuplicateKeyError(err) {
			return utils.NewConflict("date is already blocked by another record")
		}
		return utils.NewUnavailable(fmt.Sprintf("failed to update blocked date: %v", err))
	}
	s.invalidate(ctx)
	return nil
}

func (s *DefaultBlockedDateService) Unblock(ctx context.Context, id string) error {
	if err := s.Repo.DeleteByID(ctx, id); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.NewNotFound("blocked date not found")
		}
		return utils.NewUnavailable(fmt.Sprintf("failed to delete blocked date: %v", err))
	}
	s.invalidate(ctx)
	return nil
}

func (s *DefaultBlockedDateService) UnblockDate(ctx context.Context, date string) error {
	if !models.ValidDateFormat(date) {
		return utils.NewInvalidArgument("invalid date format, use YYYY-MM-DD")
	}
	if err := s.Repo.DeleteByDate(ctx, date); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.NewNotFound("blocked date not found")
		}
		return utils.NewUnavailable(fmt.Sprintf("failed to delete blocked date: %v", err))
	}
	s.invalidate(ctx)
	return nil
}

// ClearAll removes every blocked date. Destructive and irreversible; every
// use is logged.
func (s *DefaultBlockedDateService) ClearAll(ctx context.Context) (int64, error) {
	removed, err := s.Repo.DeleteAll(ctx)
	if err != nil {
		return 0, utils.NewUnavailable(fmt.Sprintf("failed to clear blocked dates: %v", err))
	}
	utils.GetLogger().Warn("Cleared all blocked dates", zap.Int64("removed", removed))
	s.invalidate(ctx)
	return removed, nil
}
