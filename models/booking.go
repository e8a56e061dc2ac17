package models

import "time"

// Booking is a reservation of one slot of one treatment on one date.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	Date          string    `bson:"date" json:"date"`           // Calendar date label, "YYYY-MM-DD"
	Treatment     string    `bson:"treatment" json:"treatment"` // Must match an AppointmentOption.Name
	Slot          string    `bson:"slot" json:"slot"`           // One of the option's original slots
	Email         string    `bson:"email" json:"email"`
	PatientName   string    `bson:"patient_name" json:"patientName"`
	Phone         string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Price         float64   `bson:"price" json:"price"`
	Paid          bool      `bson:"paid" json:"paid"`
	TransactionID string    `bson:"transaction_id,omitempty" json:"transactionId,omitempty"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}
