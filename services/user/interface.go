// File: services/user/interface.go
package user

import (
	"context"

	userRepo "appointly/database/repository/user"
	"appointly/models"
	"appointly/services/email"
)

// UserService handles registration, login, profile management and the
// password-reset flow.
type UserService interface {
	Register(ctx context.Context, req models.RegisterUserRequest) (*models.UserPublic, error)
	Login(ctx context.Context, email, password string) (*models.UserPublic, error)
	GetByID(ctx context.Context, id string) (*models.UserPublic, error)
	GetByEmail(ctx context.Context, emailAddr string) (*models.UserPublic, error)
	GetAll(ctx context.Context) ([]models.UserPublic, error)
	Update(ctx context.Context, id string, req models.UpdateUserRequest) (*models.UserPublic, error)
	Delete(ctx context.Context, id string) error
	RequestPasswordReset(ctx context.Context, emailAddr string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// DefaultUserService is the production implementation. Email may be nil.
type DefaultUserService struct {
	Repo        userRepo.UserRepository
	Email       email.EmailService
	ResetSecret string
}
