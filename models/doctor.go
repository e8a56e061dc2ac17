package models

import "time"

// Doctor is a roster entry managed by admins.
type Doctor struct {
	ID        string    `bson:"id" json:"id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Specialty string    `bson:"specialty" json:"specialty"` // Matches an AppointmentOption.Name
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
