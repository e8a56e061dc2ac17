package models

import "time"

// Role values stored on a user document.
const (
	RoleAdmin = "admin"
)

// User represents a portal user.
type User struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Role      string    `bson:"role,omitempty" json:"role,omitempty"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// IsAdmin reports whether the user may invoke privileged operations.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
