package models

import "time"

// Payment records a completed Stripe charge against a booking.
type Payment struct {
	ID            string    `bson:"id" json:"id"`
	BookingID     string    `bson:"booking_id" json:"bookingId"`
	Email         string    `bson:"email" json:"email"`
	Amount        float64   `bson:"amount" json:"amount"` // Major currency units, as shown to the patient
	TransactionID string    `bson:"transaction_id" json:"transactionId"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
}

// PaymentIntentRequest is the payload for POST /create-payment-intent.
type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// PaymentIntentResponse carries the Stripe client secret back to the client.
type PaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
