// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"

	"appointly/database"
	"appointly/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository defines methods for appointment data access.
type AppointmentRepository interface {
	// GetByID retrieves an appointment by ID; (nil, nil) when absent.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// GetAll retrieves all appointments.
	GetAll(ctx context.Context) ([]models.Appointment, error)
	// GetByUserID retrieves the appointments owned by a user.
	GetByUserID(ctx context.Context, userID string) ([]models.Appointment, error)
	// GetAllWithUserDetails joins each appointment with its owner's public fields.
	GetAllWithUserDetails(ctx context.Context) ([]models.AppointmentWithUser, error)
	// Create inserts a new appointment record.
	Create(ctx context.Context, appt *models.Appointment) error
	// Update applies a partial document update by id.
	Update(ctx context.Context, id string, fields map[string]any) error
	// Delete removes an appointment record by its ID.
	Delete(ctx context.Context, id string) error
	EnsureIndexes() error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a MongoDB-backed AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	return &mongoAppointmentRepo{
		coll: database.DB().Collection("appointments"),
	}
}
