package payment

import (
	"fmt"
	"math"

	bookingRepo "docportal/database/repository/booking"
	paymentRepo "docportal/database/repository/payment"
	"docportal/models"
	"docportal/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentService creates payment intents and records completed charges.
type PaymentService interface {
	// CreateIntent converts the price to minor units and returns the
	// provider client secret.
	CreateIntent(price float64) (string, error)
	// Record stores the payment and marks its booking paid.
	Record(payment *models.Payment) (*models.Payment, error)
}

// DefaultPaymentService is the production implementation of PaymentService.
type DefaultPaymentService struct {
	Processor Processor
	Payments  paymentRepo.PaymentRepository
	Bookings  bookingRepo.BookingRepository
	Currency  string
}

// CreateIntent registers a payment intent for the given price in major units.
func (s *DefaultPaymentService) CreateIntent(price float64) (string, error) {
	if price <= 0 {
		return "", fmt.Errorf("price must be positive, got %v", price)
	}
	amount := int64(math.Round(price * 100))
	secret, err := s.Processor.CreateIntent(amount, s.Currency)
	if err != nil {
		return "", err
	}
	return secret, nil
}

// Record persists the payment document and flips the booking to paid.
func (s *DefaultPaymentService) Record(payment *models.Payment) (*models.Payment, error) {
	logger := utils.GetLogger()

	if payment.BookingID == "" || payment.TransactionID == "" {
		return nil, fmt.Errorf("payment requires bookingId and transactionId")
	}

	payment.ID = uuid.New().String()
	if err := s.Payments.Create(payment); err != nil {
		return nil, err
	}

	if err := s.Bookings.MarkPaid(payment.BookingID, payment.TransactionID); err != nil {
		return nil, fmt.Errorf("payment recorded but booking update failed: %w", err)
	}

	logger.Info("payment recorded",
		zap.String("bookingID", payment.BookingID),
		zap.String("transactionID", payment.TransactionID))
	return payment, nil
}
