// File: services/appointment/interface.go
package appointment

import (
	"context"

	appointmentRepo "appointly/database/repository/appointment"
	userRepo "appointly/database/repository/user"
	"appointly/models"
	"appointly/services/blockeddates"
	"appointly/services/email"
	"appointly/services/tasks"
)

// AppointmentService handles booking, rescheduling and cancellation.
type AppointmentService interface {
	Create(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error)
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	ListAll(ctx context.Context) ([]models.Appointment, error)
	ListByUser(ctx context.Context, userID string) ([]models.Appointment, error)
	ListWithUserDetails(ctx context.Context) ([]models.AppointmentWithUser, error)
	Update(ctx context.Context, id string, req models.UpdateAppointmentRequest) (*models.Appointment, error)
	Cancel(ctx context.Context, id, reason string) (*models.Appointment, error)
	Delete(ctx context.Context, id string) error
}

// DefaultAppointmentService is the production implementation. Email and
// Reminders may be nil; notifications are then skipped.
type DefaultAppointmentService struct {
	Repo         appointmentRepo.AppointmentRepository
	Users        userRepo.UserRepository
	BlockedDates blockeddates.BlockedDateService
	Email        email.EmailService
	Reminders    *tasks.ReminderScheduler
}
