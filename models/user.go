package models

import "time"

// User roles.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a registered client of the booking system.
type User struct {
	ID           string     `bson:"id" json:"id"`
	Name         string     `bson:"name" json:"name"`
	Email        string     `bson:"email" json:"email"`
	PhoneNumber  string     `bson:"phoneNumber" json:"phoneNumber"`
	PasswordHash string     `bson:"passwordHash" json:"-"`
	DOB          *time.Time `bson:"dob,omitempty" json:"dob,omitempty"`
	Role         string     `bson:"role" json:"role"`
	DateJoined   time.Time  `bson:"dateJoined" json:"dateJoined"`
	LastUpdated  time.Time  `bson:"lastUpdated" json:"lastUpdated"`
}

// UserPublic is the password-free projection returned to callers.
type UserPublic struct {
	ID          string     `bson:"id" json:"id"`
	Name        string     `bson:"name" json:"name"`
	Email       string     `bson:"email" json:"email"`
	PhoneNumber string     `bson:"phoneNumber" json:"phoneNumber"`
	DOB         *time.Time `bson:"dob,omitempty" json:"dob,omitempty"`
	Role        string     `bson:"role" json:"role"`
	DateJoined  time.Time  `bson:"dateJoined" json:"dateJoined"`
}

// Public strips the credential fields from a User.
func (u *User) Public() UserPublic {
	return UserPublic{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		DOB:         u.DOB,
		Role:        u.Role,
		DateJoined:  u.DateJoined,
	}
}

// RegisterUserRequest is the signup payload.
type RegisterUserRequest struct {
	Name        string     `json:"name" binding:"required"`
	Email       string     `json:"email" binding:"required,email"`
	Password    string     `json:"password" binding:"required,min=8"`
	PhoneNumber string     `json:"phonenumber" binding:"required"`
	DOB         *time.Time `json:"dob"`
	Role        string     `json:"role"`
}

// LoginRequest authenticates by email and password.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UpdateUserRequest is a partial profile update.
type UpdateUserRequest struct {
	Name        string     `json:"name"`
	PhoneNumber string     `json:"phonenumber"`
	DOB         *time.Time `json:"dob"`
}

// ForgotPasswordRequest starts a password reset.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest completes a password reset with the emailed token.
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
