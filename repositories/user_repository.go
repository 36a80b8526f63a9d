package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/blogem/auth-audit/models"
)

// ErrUserNotFound is returned when no user matches the lookup.
var ErrUserNotFound = errors.New("user not found")

// UserRepository interface defines user account database operations
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByName(ctx context.Context, name string) (*models.User, error)
	Count(ctx context.Context) (int, error)
}

// userRepository implements UserRepository interface
type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

// Create inserts a new user account
func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (name, password_hash, active, date_added)
		VALUES (?, ?, ?, ?)
	`

	user.DateAdded = time.Now()

	result, err := r.db.ExecContext(
		ctx,
		query,
		user.Name,
		user.PasswordHash,
		user.Active,
		user.DateAdded,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get user id: %w", err)
	}
	user.ID = int(id)

	return nil
}

// GetByName retrieves a user by login name
func (r *userRepository) GetByName(ctx context.Context, name string) (*models.User, error) {
	query := `
		SELECT id, name, password_hash, active, date_added
		FROM users
		WHERE name = ?
	`

	var user models.User
	err := r.db.QueryRowContext(ctx, query, name).Scan(
		&user.ID,
		&user.Name,
		&user.PasswordHash,
		&user.Active,
		&user.DateAdded,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query user: %w", err)
	}

	return &user, nil
}

// Count returns the number of registered users
func (r *userRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}
