// File: services/user/crud.go
package user

import (
	"context"
	"fmt"
	"time"

	"appointly/models"
	"appointly/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func (s *DefaultUserService) Register(ctx context.Context, req models.RegisterUserRequest) (*models.UserPublic, error) {
	role := req.Role
	if role == "" {
		role = models.RoleUser
	}
	if role != models.RoleUser && role != models.RoleAdmin {
		return nil, utils.NewInvalidArgument("invalid role")
	}
	if req.DOB != nil && req.DOB.After(time.Now()) {
		return nil, utils.NewInvalidArgument("date of birth cannot be in the future")
	}

	existing, err := s.Repo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to check existing user: %v", err))
	}
	if existing != nil {
		return nil, utils.NewConflict("a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to hash password: %v", err))
	}

	now := time.Now()
	u := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
		DOB:          req.DOB,
		Role:         role,
		DateJoined:   now,
		LastUpdated:  now,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, utils.NewConflict("a user with this email already exists")
		}
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to create user: %v", err))
	}

	if s.Email != nil {
		go func(u models.User) {
			if err := s.Email.SendWelcome(context.Background(), &u); err != nil {
				utils.GetLogger().Warn("Welcome email failed", zap.String("email", u.Email), zap.Error(err))
			}
		}(*u)
	}

	pub := u.Public()
	return &pub, nil
}

func (s *DefaultUserService) Login(ctx context.Context, emailAddr, password string) (*models.UserPublic, error) {
	if emailAddr == "" || password == "" {
		return nil, utils.NewInvalidArgument("email and password are required")
	}
	u, err := s.Repo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to look up user: %v", err))
	}
	if u == nil {
		return nil, utils.NewUnauthorized("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, utils.NewUnauthorized("invalid credentials")
	}

	if s.Email != nil {
		go func(u models.User) {
			if err := s.Email.SendLoginNotification(context.Background(), &u); err != nil {
				utils.GetLogger().Warn("Login notification email failed", zap.String("email", u.Email), zap.Error(err))
			}
		}(*u)
	}

	pub := u.Public()
	return &pub, nil
}

func (s *DefaultUserService) GetByID(ctx context.Context, id string) (*models.UserPublic, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to fetch user: %v", err))
	}
	if u == nil {
		return nil, utils.NewNotFound("user not found")
	}
	pub := u.Public()
	return &pub, nil
}

func (s *DefaultUserService) GetByEmail(ctx context.Context, emailAddr string) (*models.UserPublic, error) {
	u, err := s.Repo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to fetch user: %v", err))
	}
	if u == nil {
		return nil, utils.NewNotFound("user not found")
	}
	pub := u.Public()
	return &pub, nil
}

func (s *DefaultUserService) GetAll(ctx context.Context) ([]models.UserPublic, error) {
	users, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to fetch users: %v", err))
	}
	out := make([]models.UserPublic, len(users))
	for i := range users {
		out[i] = users[i].Public()
	}
	return out, nil
}

func (s *DefaultUserService) Update(ctx context.Context, id string, req models.UpdateUserRequest) (*models.UserPublic, error) {
	fields := map[string]any{}
	if req.Name != "" {
		fields["name"] = req.Name
	}
	if req.PhoneNumber != "" {
		fields["phoneNumber"] = req.PhoneNumber
	}
	if req.DOB != nil {
		if req.DOB.After(time.Now()) {
			return nil, utils.NewInvalidArgument("date of birth cannot be in the future")
		}
		fields["dob"] = req.DOB
	}
	if len(fields) == 0 {
		return nil, utils.NewInvalidArgument("no updatable fields provided")
	}
	fields["lastUpdated"] = time.Now()

	if err := s.Repo.Update(ctx, id, fields); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, utils.NewNotFound("user not found")
		}
		return nil, utils.NewUnavailable(fmt.Sprintf("failed to update user: %v", err))
	}

	u, err := s.Repo.GetByID(ctx, id)
	if err != nil || u == nil {
		return nil, utils.NewUnavailable("failed to fetch updated user")
	}

	if s.Email != nil {
		go func(u models.User) {
			if err := s.Email.SendProfileUpdated(context.Background(), &u); err != nil {
				utils.GetLogger().Warn("Profile update email failed", zap.String("email", u.Email), zap.Error(err))
			}
		}(*u)
	}

	pub := u.Public()
	return &pub, nil
}

func (s *DefaultUserService) Delete(ctx context.Context, id string) error {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return utils.NewUnavailable(fmt.Sprintf("failed to fetch user: %v", err))
	}
	if u == nil {
		return utils.NewNotFound("user not found")
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.NewNotFound("user not found")
		}
		return utils.NewUnavailable(fmt.Sprintf("failed to delete user: %v", err))
	}

	if s.Email != nil {
		go func(to, name string) {
			if err := s.Email.SendAccountDeletion(context.Background(), to, name); err != nil {
				utils.GetLogger().Warn("Account deletion email failed", zap.String("email", to), zap.Error(err))
			}
		}(u.Email, u.Name)
	}
	return nil
}
