// File: database/repository/blockeddate/queries.go
package blockeddateRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"appointly/models"
)

func (r *mongoBlockedDateRepo) GetAll(ctx context.Context) ([]models.BlockedDate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked dates: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.BlockedDate
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("error decoding blocked dates: %w", err)
	}
	return records, nil
}

func (r *mongoBlockedDateRepo) GetAllSorted(ctx context.Context) ([]models.BlockedDate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}, {Key: "id", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked dates: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.BlockedDate
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("error decoding blocked dates: %w", err)
	}
	return records, nil
}

func (r *mongoBlockedDateRepo) GetByDate(ctx context.Context, date string) (*models.BlockedDate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var rec models.BlockedDate
	err := r.coll.FindOne(ctx, bson.M{"date": date}).Decode(&rec)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("find error: %w", err)
	}
	return &rec, nil
}

func (r *mongoBlockedDateRepo) GetInRange(ctx context.Context, start, end string) ([]models.BlockedDate, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Lexical comparison over fixed-width YYYY-MM-DD strings matches
	// chronological ordering, so a string $gte/$lte is a date range.
	filter := bson.M{"date": bson.M{"$gte": start, "$lte": end}}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blocked dates in range: %w", err)
	}
	defer cursor.Close(ctx)

	var records []models.BlockedDate
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("error decoding blocked dates: %w", err)
	}
	return records, nil
}
