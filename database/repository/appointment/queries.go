// File: database/repository/appointment/queries.go
package appointmentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"appointly/models"
)

func (r *mongoAppointmentRepo) GetAllWithUserDetails(ctx context.Context) ([]models.AppointmentWithUser, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "userId",
			"foreignField": "id",
			"as":           "user",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$user",
			"preserveNullAndEmptyArrays": true,
		}}},
		{{Key: "$project", Value: bson.M{
			"user.passwordHash": 0,
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate appointments with users: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.AppointmentWithUser
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("error decoding joined appointments: %w", err)
	}
	return results, nil
}
