package models

// ReminderPayload is the queued task body for an appointment reminder.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Email     string `json:"email"`
	Treatment string `json:"treatment"`
	Date      string `json:"date"`
	Slot      string `json:"slot"`
}
