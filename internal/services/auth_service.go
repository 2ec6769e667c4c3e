package services

import (
	"fmt"
	"log/slog"
	"time"

	"restaurant_ordering/internal/auth"

	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Login(password string) (string, time.Time, error)
}

type authService struct {
	passwordHash []byte
	jwt          *auth.JWTManager
}

// NewAuthService hashes the configured admin password once; the plain text is
// not kept.
func NewAuthService(adminPassword string, jwt *auth.JWTManager) (AuthService, error) {
	if adminPassword == "" {
		return nil, fmt.Errorf("%w: admin password is required", ErrInvalidArgument)
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &authService{passwordHash: hashedPassword, jwt: jwt}, nil
}

func (s *authService) Login(password string) (string, time.Time, error) {
	if err := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)); err != nil {
		slog.Warn("Admin login rejected")
		return "", time.Time{}, ErrInvalidCredentials
	}
	return s.jwt.Generate(auth.RoleAdmin)
}
