// File: services/email/interface.go
package email

import (
	"context"

	"appointly/config"
	"appointly/models"
)

// EmailService delivers lifecycle notifications. Every send is best-effort:
// callers log failures and never fail the triggering write because a mail
// could not go out.
type EmailService interface {
	SendWelcome(ctx context.Context, user *models.User) error
	SendAppointmentConfirmation(ctx context.Context, to, name string, appt *models.Appointment) error
	SendAppointmentCancelled(ctx context.Context, to, name string, appt *models.Appointment) error
	SendAppointmentRescheduled(ctx context.Context, to, name string, appt *models.Appointment) error
	SendAppointmentReminder(ctx context.Context, p models.ReminderPayload) error
	SendPasswordReset(ctx context.Context, to, name, token string) error
	SendLoginNotification(ctx context.Context, user *models.User) error
	SendAccountDeletion(ctx context.Context, to, name string) error
	SendProfileUpdated(ctx context.Context, user *models.User) error
	SendCustom(ctx context.Context, to, subject, htmlBody string) error
}

// DefaultEmailService sends over SMTP with the settings from config.
type DefaultEmailService struct {
	Host        string
	Port        string
	Username    string
	Password    string
	From        string
	ContactAddr string
	FrontendURL string
}

// NewSMTPEmailService builds the production mailer from AppConfig.
func NewSMTPEmailService() *DefaultEmailService {
	cfg := config.AppConfig
	return &DefaultEmailService{
		Host:        cfg.SMTPHost,
		Port:        cfg.SMTPPort,
		Username:    cfg.SMTPUser,
		Password:    cfg.SMTPPassword,
		From:        cfg.EmailFrom,
		ContactAddr: cfg.ContactEmail,
		FrontendURL: cfg.FrontendURL,
	}
}
