// File: services/blockeddates/interface.go
package blockeddates

import (
	"context"

	blockeddateRepo "appointly/database/repository/blockeddate"
	"appointly/models"

	"github.com/go-redis/redis/v8"
)

// BlockedDateService is the calendar-exception registry: single and bulk
// blocking, point/range/month queries, and the consistency engine that
// detects and repairs duplicate-date violations.
type BlockedDateService interface {
	ListAll(ctx context.Context) ([]models.BlockedDate, error)
	ListInRange(ctx context.Context, start, end string) ([]models.BlockedDate, error)
	ListByMonth(ctx context.Context, year, month int) ([]models.BlockedDate, error)
	CheckDate(ctx context.Context, date string) (*models.DateCheck, error)
	Summary(ctx context.Context) (*models.BlockedDateSummary, error)

	Block(ctx context.Context, date, reason, pattern string) (*models.BlockedDate, error)
	BlockMany(ctx context.Context, dates []string, reason, pattern string) (*models.BulkBlockResult, error)
	UpdateBlockedDate(ctx context.Context, id string, req models.UpdateBlockedDateRequest) error
	Unblock(ctx context.Context, id string) error
	UnblockDate(ctx context.Context, date string) error
	ClearAll(ctx context.Context) (int64, error)

	ValidateConsistency(ctx context.Context) (*models.ConsistencyReport, error)
	ForceSync(ctx context.Context) (*models.SyncResult, error)
}

// DefaultBlockedDateService is the production implementation. Cache may be
// nil, in which case every read goes to the store.
type DefaultBlockedDateService struct {
	Repo  blockeddateRepo.BlockedDateRepository
	Cache *redis.Client
}
