package bookingRepo

import (
	"errors"

	"docportal/models"
)

var (
	// ErrSlotTaken is returned by InsertIfAbsent when another booking already
	// occupies the same (date, treatment, slot).
	ErrSlotTaken = errors.New("slot already booked")

	// ErrNotFound is returned when an id-based lookup misses.
	ErrNotFound = errors.New("booking not found")
)

// BookingRepository defines data access for bookings.
type BookingRepository interface {
	// GetByDate returns every booking on the given calendar date.
	GetByDate(date string) ([]models.Booking, error)
	// GetByEmail returns every booking made by the given email.
	GetByEmail(email string) ([]models.Booking, error)
	// GetByID returns a single booking or ErrNotFound.
	GetByID(id string) (*models.Booking, error)
	// InsertIfAbsent atomically persists the booking unless its
	// (date, treatment, slot) is already occupied, in which case it
	// returns ErrSlotTaken. This is the correctness backstop for the
	// check-then-act window between the conflict pre-check and the write.
	InsertIfAbsent(booking *models.Booking) error
	// MarkPaid records the payment transaction against a booking.
	MarkPaid(id, transactionID string) error
}
