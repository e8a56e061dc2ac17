package userRepo

import (
	"errors"

	"docportal/models"
)

// ErrNotFound is returned when an id-based lookup misses.
var ErrNotFound = errors.New("user not found")

// UserRepository defines data access for portal users.
type UserRepository interface {
	// Upsert stores the user keyed by email. Registering twice with the
	// same email updates the name and leaves the role untouched.
	Upsert(user *models.User) error
	// GetByEmail returns the user or (nil, nil) when the email is unknown.
	GetByEmail(email string) (*models.User, error)
	// GetAll returns every registered user.
	GetAll() ([]models.User, error)
	// PromoteToAdmin grants the admin role; ErrNotFound if the id misses.
	PromoteToAdmin(id string) error
}
