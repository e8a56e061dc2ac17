package booking

import (
	"fmt"

	"docportal/models"
)

// Decision is the outcome of the booking conflict check.
type Decision struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// CanBook decides whether the candidate booking may proceed given a snapshot
// of the bookings already stored. The invariant enforced is one booking per
// slot per treatment per day: a second booking for the same treatment on the
// same date is fine as long as it takes a different slot.
//
// The check is a side-effect-free predicate over the snapshot; the unique
// index behind BookingRepository.InsertIfAbsent closes the race window
// between this check and the insert.
func CanBook(candidate models.Booking, existing []models.Booking) Decision {
	for _, b := range existing {
		if b.Date == candidate.Date && b.Treatment == candidate.Treatment && b.Slot == candidate.Slot {
			return Decision{
				Allowed: false,
				Reason:  fmt.Sprintf("%s at %s is already booked on %s", candidate.Treatment, candidate.Slot, candidate.Date),
			}
		}
	}
	return Decision{Allowed: true}
}
