// File: services/email/templates.go
package email

import (
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"appointly/models"
)

// layoutTmpl is the shared pink-and-white shell every lifecycle email uses.
var layoutTmpl = template.Must(template.New("layout").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #ff69b4 0%, #ff1493 100%); padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
    <h1 style="color: white; margin: 0; font-size: 28px;">{{.Heading}}</h1>
  </div>
  <div style="background: #fff5f8; padding: 30px; border-radius: 0 0 10px 10px;">
    {{.Body}}
    <p style="font-size: 14px; color: #666; text-align: center; margin-top: 30px;">
      Questions? Contact us at <a href="mailto:{{.Contact}}" style="color: #ff69b4;">{{.Contact}}</a>
    </p>
  </div>
  <div style="text-align: center; margin-top: 20px; color: #999; font-size: 12px;">
    <p>This email was sent from Katie's Appointment Booking System</p>
  </div>
</div>`))

type layoutData struct {
	Heading string
	Body    template.HTML
	Contact string
}

func (s *DefaultEmailService) render(heading string, body template.HTML) (string, error) {
	var out strings.Builder
	err := layoutTmpl.Execute(&out, layoutData{Heading: heading, Body: body, Contact: s.ContactAddr})
	if err != nil {
		return "", fmt.Errorf("failed to render email template: %w", err)
	}
	return out.String(), nil
}

func detailCard(rows map[string]string, order []string) template.HTML {
	var b strings.Builder
	b.WriteString(`<div style="background: white; padding: 20px; border-radius: 8px; margin: 20px 0; border-left: 4px solid #ff69b4;">`)
	for _, key := range order {
		b.WriteString(fmt.Sprintf("<p><strong>%s:</strong> %s</p>",
			template.HTMLEscapeString(key), template.HTMLEscapeString(rows[key])))
	}
	b.WriteString("</div>")
	return template.HTML(b.String())
}

func para(text string) template.HTML {
	return template.HTML(fmt.Sprintf(
		`<p style="font-size: 16px; line-height: 1.6; color: #333;">%s</p>`,
		template.HTMLEscapeString(text)))
}

func (s *DefaultEmailService) SendWelcome(ctx context.Context, user *models.User) error {
	body := para("Thank you for signing up with Katie's Appointment Booking System! We're excited to have you on board.") +
		detailCard(map[string]string{
			"Name":  user.Name,
			"Email": user.Email,
			"Phone": user.PhoneNumber,
		}, []string{"Name", "Email", "Phone"}) +
		template.HTML(fmt.Sprintf(
			`<div style="text-align: center; margin: 30px 0;"><a href="%s/login" style="background: #ff69b4; color: white; padding: 12px 30px; text-decoration: none; border-radius: 25px; font-weight: bold; display: inline-block;">Login to Your Account</a></div>`,
			template.HTMLEscapeString(s.FrontendURL)))
	html, err := s.render("Welcome "+user.Name+"!", body)
	if err != nil {
		return err
	}
	return s.send(ctx, user.Email, "Welcome to Katie's Appointment Booking!", html)
}

func (s *DefaultEmailService) SendAppointmentConfirmation(ctx context.Context, to, name string, appt *models.Appointment) error {
	body := para("Hi "+name+", your appointment has been booked.") +
		detailCard(map[string]string{
			"Title":    appt.Title,
			"Date":     appt.Date.Format("Monday, 2 January 2006 at 15:04"),
			"Location": appt.Location,
		}, []string{"Title", "Date", "Location"})
	html, err := s.render("Appointment Confirmed", body)
	if err != nil {
		return err
	}
	return s.send(ctx, to, "Your appointment is confirmed", html)
}

func (s *DefaultEmailService) SendAppointmentCancelled(ctx context.Context, to, name string, appt *models.Appointment) error {
	rows := map[string]string{
		"Title": appt.Title,
		"Date":  appt.Date.Format("Monday, 2 January 2006 at 15:04"),
	}
	order := []string{"Title", "Date"}
	if appt.CancellationReason != "" {
		rows["Reason"] = appt.CancellationReason
		order = append(order, "Reason")
	}
	body := para("Hi "+name+", your appointment has been cancelled.") + detailCard(rows, order)
	html, err := s.render("Appointment Cancelled", body)
	if err != nil {
		return err
	}
	return s.send(ctx, to, "Your appointment was cancelled", html)
}

func (s *DefaultEmailService) SendAppointmentRescheduled(ctx context.Context, to, name string, appt *models.Appointment) error {
	body := para("Hi "+name+", your appointment has been rescheduled.") +
		detailCard(map[string]string{
			"Title":    appt.Title,
			"New date": appt.Date.Format("Monday, 2 January 2006 at 15:04"),
			"Location": appt.Location,
		}, []string{"Title", "New date", "Location"})
	html, err := s.render("Appointment Rescheduled", body)
	if err != nil {
		return err
	}
	return s.send(ctx, to, "Your appointment was rescheduled", html)
}

func (s *DefaultEmailService) SendAppointmentReminder(ctx context.Context, p models.ReminderPayload) error {
	body := para("Hi "+p.Name+", this is a reminder of your upcoming appointment.") +
		detailCard(map[string]string{
			"Title":    p.Title,
			"Date":     p.Date.Format("Monday, 2 January 2006 at 15:04"),
			"Location": p.Location,
		}, []string{"Title", "Date", "Location"})
	html, err := s.render("Appointment Reminder", body)
	if err != nil {
		return err
	}
	return s.send(ctx, p.Email, "Reminder: upcoming appointment", html)
}

func (s *DefaultEmailService) SendPasswordReset(ctx context.Context, to, name, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s", s.FrontendURL, token)
	body := para("Hi "+name+", we received a request to reset your password. The link below expires in one hour.") +
		template.HTML(fmt.Sprintf(
			`<div style="text-align: center; margin: 30px 0;"><a href="%s" style="background: #ff69b4; color: white; padding: 12px 30px; text-decoration: none; border-radius: 25px; font-weight: bold; display: inline-block;">Reset Password</a></div>`,
			template.HTMLEscapeString(link))) +
		para("If you did not request this, you can ignore this email.")
	html, err := s.render("Password Reset", body)
	if err != nil {
		return err
	}
	return s.send(ctx, to, "Reset your password", html)
}

func (s *DefaultEmailService) SendLoginNotification(ctx context.Context, user *models.User) error {
	body := para("Hi "+user.Name+", your account was just signed in to.") +
		detailCard(map[string]string{
			"Time": time.Now().Format("Monday, 2 January 2006 at 15:04"),
		}, []string{"Time"}) +
		para("If this wasn't you, please reset your password.")
	html, err := s.render("New Login", body)
	if err != nil {
		return err
	}
	return s.send(ctx, user.Email, "New login to your account", html)
}

func (s *DefaultEmailService) SendAccountDeletion(ctx context.Context, to, name string) error {
	body := para("Hi " + name + ", your account and its data have been deleted. We're sorry to see you go.")
	html, err := s.render("Account Deleted", body)
	if err != nil {
		return err
	}
	return s.send(ctx, to, "Your account has been deleted", html)
}

func (s *DefaultEmailService) SendProfileUpdated(ctx context.Context, user *models.User) error {
	body := para("Hi "+user.Name+", your profile details were updated.") +
		detailCard(map[string]string{
			"Name":  user.Name,
			"Phone": user.PhoneNumber,
		}, []string{"Name", "Phone"}) +
		para("If you did not make this change, please contact us.")
	html, err := s.render("Profile Updated", body)
	if err != nil {
		return err
	}
	return s.send(ctx, user.Email, "Your profile was updated", html)
}
