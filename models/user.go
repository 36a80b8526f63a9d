package models

import (
	"time"
)

// User represents a locally registered account
type User struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Active       bool      `json:"active" db:"active"`
	DateAdded    time.Time `json:"date_added" db:"date_added"`
}

// Username returns the account's login name. It satisfies the capability
// the audit receivers need from a user object.
func (u *User) Username() string {
	return u.Name
}

// RegisterForm represents form data for creating an account
type RegisterForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate validates the registration form data
func (f *RegisterForm) Validate() []string {
	var errors []string

	if f.Username == "" {
		errors = append(errors, "Username is required")
	}

	if len(f.Username) > 100 {
		errors = append(errors, "Username must be less than 100 characters")
	}

	if len(f.Password) < 8 {
		errors = append(errors, "Password must be at least 8 characters")
	}

	return errors
}
