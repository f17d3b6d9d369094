// File: services/email/mailer.go
package email

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"

	"appointly/utils"

	"go.uber.org/zap"
)

// send delivers a single HTML message. The context deadline is honored only
// up to the blocking SMTP dial; the standard client offers no mid-session
// cancellation.
func (s *DefaultEmailService) send(ctx context.Context, to, subject, htmlBody string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	var msg strings.Builder
	msg.WriteString("From: " + s.From + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := s.Host + ":" + s.Port
	var auth smtp.Auth
	if s.Username != "" {
		auth = smtp.PlainAuth("", s.Username, s.Password, s.Host)
	}
	if err := smtp.SendMail(addr, auth, s.From, []string{to}, []byte(msg.String())); err != nil {
		utils.GetLogger().Warn("Email send failed",
			zap.String("to", to),
			zap.String("subject", subject),
			zap.Error(err))
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	utils.GetLogger().Debug("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

// SendCustom delivers an arbitrary message, used by the admin email endpoints.
func (s *DefaultEmailService) SendCustom(ctx context.Context, to, subject, htmlBody string) error {
	return s.send(ctx, to, subject, htmlBody)
}
