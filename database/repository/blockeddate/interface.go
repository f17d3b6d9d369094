// File: database/repository/blockeddate/interface.go
package blockeddateRepo

import (
	"context"

	"appointly/database"
	"appointly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BlockedDateRepository is the persistence contract for blocked-date records.
// It speaks storage-level errors (mongo.ErrNoDocuments, duplicate-key); the
// service layer translates them into the caller-facing taxonomy.
type BlockedDateRepository interface {
	// GetAll returns every record; enumeration order is not guaranteed.
	GetAll(ctx context.Context) ([]models.BlockedDate, error)
	// GetAllSorted returns every record ordered by createdAt ascending with
	// id as a stable tiebreak. Reconciliation depends on this ordering.
	GetAllSorted(ctx context.Context) ([]models.BlockedDate, error)
	// GetByDate is a point lookup on the business key; (nil, nil) when absent.
	GetByDate(ctx context.Context, date string) (*models.BlockedDate, error)
	// GetInRange returns records with start <= date <= end, both inclusive,
	// compared lexically over the fixed-width YYYY-MM-DD form.
	GetInRange(ctx context.Context, start, end string) ([]models.BlockedDate, error)
	// Create inserts one record. A duplicate date surfaces as a storage-level
	// duplicate-key error when the unique index is in place.
	Create(ctx context.Context, bd *models.BlockedDate) error
	// CreateMany inserts records unordered: each document succeeds or fails
	// independently. Returns the number actually inserted; duplicate-key
	// failures inside the batch are not an error.
	CreateMany(ctx context.Context, records []models.BlockedDate) (int, error)
	// Update applies a partial document update by id.
	Update(ctx context.Context, id string, fields map[string]any) error
	DeleteByID(ctx context.Context, id string) error
	DeleteByDate(ctx context.Context, date string) error
	// DeleteByIDs removes the given records, returning how many matched.
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
	// DeleteAll wipes the collection and returns the removed count.
	DeleteAll(ctx context.Context) (int64, error)
	EnsureIndexes() error
}

type mongoBlockedDateRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockedDateRepo constructs a MongoDB-backed BlockedDateRepository.
func NewMongoBlockedDateRepo() BlockedDateRepository {
	return &mongoBlockedDateRepo{
		coll: database.DB().Collection("blocked_dates"),
	}
}
