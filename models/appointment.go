package models

import "time"

// Attendee is a person expected at an appointment.
type Attendee struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
	Phone string `bson:"phone,omitempty" json:"phone,omitempty"`
	RSVP  string `bson:"rsvp" json:"rsvp"` // yes, no, maybe
}

// Appointment is a booked calendar entry. UserID may be empty for walk-ins
// whose owner could not be resolved from the attendee list.
type Appointment struct {
	ID                 string     `bson:"id" json:"id"`
	UserID             string     `bson:"userId,omitempty" json:"userId,omitempty"`
	Title              string     `bson:"title" json:"title"`
	Description        string     `bson:"description,omitempty" json:"description,omitempty"`
	Date               time.Time  `bson:"date" json:"date"`
	Location           string     `bson:"location" json:"location"`
	Attendees          []Attendee `bson:"attendees" json:"attendees"`
	Cancelled          bool       `bson:"cancelled,omitempty" json:"cancelled,omitempty"`
	CancellationReason string     `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
	CreatedAt          time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// AppointmentWithUser is an appointment joined with its owner's public fields.
type AppointmentWithUser struct {
	Appointment `bson:",inline"`
	User        *UserPublic `bson:"user,omitempty" json:"user,omitempty"`
}

// CreateAppointmentRequest is the booking payload.
type CreateAppointmentRequest struct {
	UserID      string     `json:"userId"`
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Date        time.Time  `json:"date" binding:"required"`
	Location    string     `json:"location" binding:"required"`
	Attendees   []Attendee `json:"attendees"`
}

// UpdateAppointmentRequest is a partial update; zero values are left untouched.
type UpdateAppointmentRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Date        *time.Time `json:"date"`
	Location    string     `json:"location"`
	Attendees   []Attendee `json:"attendees"`
}

// CancelAppointmentRequest carries the cancellation reason.
type CancelAppointmentRequest struct {
	Reason string `json:"reason"`
}

// ReminderPayload is the asynq task body for a scheduled appointment reminder.
type ReminderPayload struct {
	AppointmentID string    `json:"appointmentId"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Title         string    `json:"title"`
	Date          time.Time `json:"date"`
	Location      string    `json:"location"`
}
