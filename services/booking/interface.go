package booking

import "docportal/models"

// BookingService manages the booking lifecycle.
type BookingService interface {
	// Create persists the booking if its slot is free, returning a
	// ConflictError otherwise.
	Create(booking *models.Booking) (*models.Booking, error)
	// ListByEmail returns the bookings made by the given patient email.
	ListByEmail(email string) ([]models.Booking, error)
	// GetByID returns a single booking or ErrNotFound.
	GetByID(id string) (*models.Booking, error)
}

// ReminderScheduler queues an appointment reminder for a confirmed booking.
type ReminderScheduler interface {
	Schedule(booking models.Booking) error
}
