// File: services/appointment/service.go
package appointment

import (
	"context"
	"fmt"
	"time"

	"appointly/models"
	"appointly/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

const reminderLead = 24 * time.Hour

func (s *DefaultAppointmentService) Create(ctx context.Context, req models.CreateAppointmentRequest) (*models.Appointment, error) {
	if req.Title == "" || req.Location == "" {
		return nil, utils.NewInvalidArgument("title and location are required")
	}
	if req.Date.IsZero() {
		return nil, utils.NewInvalidArgument("date is required")
	}

	userID, err := s.resolveUserID(ctx, req)
	if err != nil {
		return nil, err
	}

	// A blocked calendar day refuses new bookings.
	day := req.Date.Format("2006-01-02")
	if s.BlockedDates != nil {
		check, err := s.BlockedDates.CheckDate(ctx, day)
		if err != nil {
			return nil, err
		}
		if check.Blocked {
			return nil, utils.NewConflict(fmt.Sprintf("date %s is blocked: %s", day, check.Reason))
		}
	}

	now := time.Now()
	appt := &models.Appointment{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Location:    req.Location,
		Attendees:   req.Attendees,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Repo.Create(ctx, appt); err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to create appointment: %v", err))
	}

	s.notifyAttendees(appt, "confirmation")
	s.scheduleReminders(appt)
	return appt, nil
}

// resolveUserID falls back to looking up the first attendee's email when no
// owner was supplied, matching how walk-in bookings arrive from the frontend.
func (s *DefaultAppointmentService) resolveUserID(ctx context.Context, req models.CreateAppointmentRequest) (string, error) {
	if req.UserID != "" {
		return req.UserID, nil
	}
	if len(req.Attendees) == 0 {
		return "", utils.NewInvalidArgument("user ID is required")
	}
	u, err := s.Users.GetByEmail(ctx, req.Attendees[0].Email)
	if err != nil {
		return "", utils.NewUnavailable(fmt.Sprintf("failed to look up user: %v", err))
	}
	if u == nil {
		return "", utils.NewInvalidArgument("user not found, please ensure you are logged in")
	}
	return u.ID, nil
}

func (s *DefaultAppointmentService) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to fetch appointment: %v", err))
	}
	if appt == nil {
		return nil, utils.NewNotFound(fmt.Sprintf("appointment with id %s not found", id))
	}
	return appt, nil
}

func (s *DefaultAppointmentService) ListAll(ctx context.Context) ([]models.Appointment, error) {
	appts, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to fetch appointments: %v", err))
	}
	return appts, nil
}

func (s *DefaultAppointmentService) ListByUser(ctx context.Context, userID string) ([]models.Appointment, error) {
	if userID == "" {
		return nil, utils.NewInvalidArgument("user ID is required")
	}
	appts, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to fetch user appointments: %v", err))
	}
	return appts, nil
}

func (s *DefaultAppointmentService) ListWithUserDetails(ctx context.Context) ([]models.AppointmentWithUser, error) {
	appts, err := s.Repo.GetAllWithUserDetails(ctx)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to fetch appointments with user details: %v", err))
	}
	return appts, nil
}

func (s *DefaultAppointmentService) Update(ctx context.Context, id string, req models.UpdateAppointmentRequest) (*models.Appointment, error) {
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if req.Title != "" {
		fields["title"] = req.Title
	}
	if req.Description != "" {
		fields["description"] = req.Description
	}
	if req.Location != "" {
		fields["location"] = req.Location
	}
	if req.Attendees != nil {
		fields["attendees"] = req.Attendees
	}
	rescheduled := false
	if req.Date != nil && !req.Date.Equal(existing.Date) {
		day := req.Date.Format("2006-01-02")
		if s.BlockedDates != nil {
			check, err := s.BlockedDates.CheckDate(ctx, day)
			if err != nil {
				return nil, err
			}
			if check.Blocked {
				return nil, utils.NewConflict(fmt.Sprintf("date %s is blocked: %s", day, check.Reason))
			}
		}
		fields["date"] = *req.Date
		rescheduled = true
	}
	if len(fields) == 0 {
		return nil, utils.NewInvalidArgument("no updatable fields provided")
	}
	fields["updatedAt"] = time.Now()

	if err := s.Repo.Update(ctx, id, fields); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFound("appointment not found")
		}
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to update appointment: %v", err))
	}

	updated, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rescheduled {
		s.notifyAttendees(updated, "rescheduled")
		s.scheduleReminders(updated)
	}
	return updated, nil
}

func (s *DefaultAppointmentService) Cancel(ctx context.Context, id, reason string) (*models.Appointment, error) {
	if _, err := s.GetByID(ctx, id); err != nil {
		return nil, err
	}

	fields := map[string]any{
		"cancelled":          true,
		"cancellationReason": reason,
		"updatedAt":          time.Now(),
	}
	if err := s.Repo.Update(ctx, id, fields); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFound("appointment not found")
		}
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to cancel appointment: %v", err))
	}

	cancelled, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.notifyAttendees(cancelled, "cancelled")
	return cancelled, nil
}

func (s *DefaultAppointmentService) Delete(ctx context.Context, id string) error {
	if err := s.Repo.Delete(ctx, id); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.NewNotFound("appointment not found")
		}
		return utils.NewUnavailable(fmt.Sprintf("failed to delete appointment: %v", err))
	}
	return nil
}

// notifyAttendees fires the lifecycle email for every attendee with an
// address. Best-effort: failures are logged and never surface to the caller.
func (s *DefaultAppointmentService) notifyAttendees(appt *models.Appointment, event string) {
	if s.Email == nil {
		return
	}
	for _, att := range appt.Attendees {
		if att.Email == "" {
			continue
		}
		go func(att models.Attendee, appt models.Appointment) {
			ctx := context.Background()
			var err error
			switch event {
			case "confirmation":
				err = s.Email.SendAppointmentConfirmation(ctx, att.Email, att.Name, &appt)
			case "cancelled":
				err = s.Email.SendAppointmentCancelled(ctx, att.Email, att.Name, &appt)
			case "rescheduled":
				err = s.Email.SendAppointmentRescheduled(ctx, att.Email, att.Name, &appt)
			}
			if err != nil {
				utils.GetLogger().Warn("Appointment email failed",
					zap.String("event", event),
					zap.String("email", att.Email),
					zap.Error(err))
			}
		}(att, *appt)
	}
}

// scheduleReminders queues a reminder per attendee ahead of the appointment.
func (s *DefaultAppointmentService) scheduleReminders(appt *models.Appointment) {
	if s.Reminders == nil {
		return
	}
	fireAt := appt.Date.Add(-reminderLead)
	for _, att := range appt.Attendees {
		if att.Email == "" {
			continue
		}
		payload := models.ReminderPayload{
			AppointmentID: appt.ID,
			Email:         att.Email,
			Name:          att.Name,
			Title:         appt.Title,
			Date:          appt.Date,
			Location:      appt.Location,
		}
		if err := s.Reminders.Schedule(payload, fireAt); err != nil {
			utils.GetLogger().Warn("Failed to schedule reminder",
				zap.String("appointmentId", appt.ID),
				zap.Error(err))
		}
	}
}
