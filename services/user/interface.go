package user

import "docportal/models"

// UserService manages portal users, role grants and token issuance.
type UserService interface {
	// Register upserts the user keyed by email.
	Register(user *models.User) error
	// GetAll returns every registered user.
	GetAll() ([]models.User, error)
	// IsAdmin reports whether the email belongs to an admin. Unknown
	// emails are simply not admins.
	IsAdmin(email string) (bool, error)
	// PromoteToAdmin grants the admin role to the user with the given id.
	PromoteToAdmin(id string) error
	// IssueToken returns a signed access token for a registered email,
	// or ErrUnknownEmail when no such user exists.
	IssueToken(email string) (string, error)
}
