package booking

import (
	"errors"
	"fmt"

	bookingRepo "docportal/database/repository/booking"
	"docportal/models"
	"docportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultBookingService is the production implementation of BookingService.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Reminders ReminderScheduler
}

// Create validates the candidate, runs the conflict guard against the
// snapshot of bookings on that date, and persists via the repository's
// conditional insert.
func (s *DefaultBookingService) Create(candidate *models.Booking) (*models.Booking, error) {
	logger := utils.GetLogger()

	if candidate.Date == "" || candidate.Treatment == "" || candidate.Slot == "" || candidate.Email == "" {
		return nil, fmt.Errorf("booking requires date, treatment, slot and email")
	}

	existing, err := s.Repo.GetByDate(candidate.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %s: %w", candidate.Date, err)
	}

	if decision := CanBook(*candidate, existing); !decision.Allowed {
		return nil, ConflictError{Reason: decision.Reason}
	}

	candidate.ID = uuid.New().String()
	candidate.Paid = false

	if err := s.Repo.InsertIfAbsent(candidate); err != nil {
		if errors.Is(err, bookingRepo.ErrSlotTaken) {
			// A concurrent request won the slot between snapshot and insert.
			return nil, ConflictError{
				Reason: fmt.Sprintf("%s at %s is already booked on %s", candidate.Treatment, candidate.Slot, candidate.Date),
			}
		}
		return nil, err
	}

	if s.Reminders != nil {
		if err := s.Reminders.Schedule(*candidate); err != nil {
			// The booking is committed; a lost reminder is not a reason to fail it.
			logger.Error("failed to schedule appointment reminder",
				zap.String("bookingID", candidate.ID), zap.Error(err))
		}
	}

	logger.Info("booking created",
		zap.String("bookingID", candidate.ID),
		zap.String("date", candidate.Date),
		zap.String("treatment", candidate.Treatment),
		zap.String("slot", candidate.Slot))
	return candidate, nil
}

// ListByEmail returns the bookings made by the given email.
func (s *DefaultBookingService) ListByEmail(email string) ([]models.Booking, error) {
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	bookings, err := s.Repo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings for %s: %w", email, err)
	}
	return bookings, nil
}

// GetByID returns a single booking, mapping the repository miss to ErrNotFound.
func (s *DefaultBookingService) GetByID(id string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return b, nil
}
