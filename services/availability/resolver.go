// Package availability computes per-option remaining slots for a date by
// subtracting booked slots from the fixed catalog slot lists.
package availability

import "docportal/models"

// Resolve returns a copy of the catalog with each option's Slots reduced to
// the slots not yet booked on the date the bookings were fetched for. Slot
// order follows the catalog. Bookings whose treatment is not in the catalog
// are ignored. The inputs are never mutated.
func Resolve(catalog []models.AppointmentOption, booked []models.Booking) []models.AppointmentOption {
	if len(catalog) == 0 {
		return []models.AppointmentOption{}
	}

	// Index booked slots per treatment so each option is a single lookup.
	bookedSlots := make(map[string]map[string]struct{}, len(catalog))
	for _, b := range booked {
		slots, ok := bookedSlots[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			bookedSlots[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	result := make([]models.AppointmentOption, 0, len(catalog))
	for _, option := range catalog {
		taken := bookedSlots[option.Name]

		remaining := make([]string, 0, len(option.Slots))
		for _, slot := range option.Slots {
			if _, used := taken[slot]; !used {
				remaining = append(remaining, slot)
			}
		}

		option.Slots = remaining
		result = append(result, option)
	}
	return result
}
