package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/blogem/auth-audit/models"
	"github.com/blogem/auth-audit/repositories"
)

// ErrInvalidCredentials is returned for a wrong username or password. The
// two cases are deliberately indistinguishable to callers.
var ErrInvalidCredentials = errors.New("invalid credentials")

// AuthService interface defines local account operations
type AuthService interface {
	Authenticate(ctx context.Context, username, password string) (*models.User, error)
	Register(ctx context.Context, username, password string) (*models.User, error)
}

// authService implements AuthService interface
type authService struct {
	users repositories.UserRepository
}

// NewAuthService creates a new auth service
func NewAuthService(users repositories.UserRepository) AuthService {
	return &authService{users: users}
}

// Authenticate verifies a username/password pair against the user store
func (s *authService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.users.GetByName(ctx, username)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if !user.Active {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Register creates a new active account with a hashed password
func (s *authService) Register(ctx context.Context, username, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Name:         username,
		PasswordHash: string(hash),
		Active:       true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
