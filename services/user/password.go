// File: services/user/password.go
package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"appointly/models"
	"appointly/utils"

	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = time.Hour

// RequestPasswordReset emails a signed, expiring reset token. An unknown
// email is treated as success so the endpoint does not reveal which
// addresses are registered.
func (s *DefaultUserService) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	if emailAddr == "" {
		return utils.NewInvalidArgument("email is required")
	}
	u, err := s.Repo.GetByEmail(ctx, emailAddr)
	if err != nil {
		return utils.NewUnavailable(fmt.Sprintf("failed to look up user: %v", err))
	}
	if u == nil {
		utils.GetLogger().Info("Password reset requested for unknown email", zap.String("email", emailAddr))
		return nil
	}

	token, err := s.signResetToken(u.ID)
	if err != nil {
		return utils.NewUnavailable(fmt.Sprintf("failed to sign reset token: %v", err))
	}

	if s.Email != nil {
		go func(u models.User, token string) {
			if err := s.Email.SendPasswordReset(context.Background(), u.Email, u.Name, token); err != nil {
				utils.GetLogger().Warn("Password reset email failed", zap.String("email", u.Email), zap.Error(err))
			}
		}(*u, token)
	}
	return nil
}

// ResetPassword verifies the emailed token and replaces the password hash.
func (s *DefaultUserService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 8 {
		return utils.NewInvalidArgument("password must be at least 8 characters long")
	}
	userID, err := s.verifyResetToken(token)
	if err != nil {
		return utils.NewUnauthorized("invalid or expired reset token")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return utils.NewUnavailable(fmt.Sprintf("failed to hash password: %v", err))
	}

	fields := map[string]any{
		"passwordHash": string(hash),
		"lastUpdated":  time.Now(),
	}
	if err := s.Repo.Update(ctx, userID, fields); err != nil {
		if err == mongo.ErrNoDocuments {
			return utils.NewNotFound("user not found")
		}
		return utils.NewUnavailable(fmt.Sprintf("failed to update password: %v", err))
	}
	return nil
}

func (s *DefaultUserService) signResetToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"sub":     userID,
		"purpose": "password_reset",
		"iat":     time.Now().Unix(),
		"exp":     time.Now().Add(resetTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.ResetSecret))
}

func (s *DefaultUserService) verifyResetToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.ResetSecret), nil
	})
	if err != nil {
		return "", err
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", errors.New("invalid token")
	}
	if purpose, _ := claims["purpose"].(string); purpose != "password_reset" {
		return "", errors.New("wrong token purpose")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("token does not contain a valid 'sub' claim")
	}
	return sub, nil
}
