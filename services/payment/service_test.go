package payment

import (
	"errors"
	"testing"

	"docportal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockProcessor struct {
	gotAmount   int64
	gotCurrency string
	secret      string
	err         error
}

func (m *mockProcessor) CreateIntent(amount int64, currency string) (string, error) {
	m.gotAmount = amount
	m.gotCurrency = currency
	return m.secret, m.err
}

type mockPaymentRepo struct {
	created *models.Payment
	err     error
}

func (m *mockPaymentRepo) Create(p *models.Payment) error {
	m.created = p
	return m.err
}

type mockBookingRepo struct {
	paidID  string
	paidTxn string
	err     error
}

func (m *mockBookingRepo) GetByDate(string) ([]models.Booking, error)  { return nil, nil }
func (m *mockBookingRepo) GetByEmail(string) ([]models.Booking, error) { return nil, nil }
func (m *mockBookingRepo) GetByID(string) (*models.Booking, error)     { return nil, nil }
func (m *mockBookingRepo) InsertIfAbsent(*models.Booking) error        { return nil }
func (m *mockBookingRepo) MarkPaid(id, txn string) error {
	m.paidID = id
	m.paidTxn = txn
	return m.err
}

func TestCreateIntentConvertsToMinorUnits(t *testing.T) {
	proc := &mockProcessor{secret: "pi_secret"}
	svc := &DefaultPaymentService{Processor: proc, Currency: "usd"}

	secret, err := svc.CreateIntent(79.99)

	require.NoError(t, err)
	assert.Equal(t, "pi_secret", secret)
	assert.Equal(t, int64(7999), proc.gotAmount)
	assert.Equal(t, "usd", proc.gotCurrency)
}

func TestCreateIntentRejectsNonPositivePrice(t *testing.T) {
	svc := &DefaultPaymentService{Processor: &mockProcessor{}, Currency: "usd"}

	_, err := svc.CreateIntent(0)

	assert.Error(t, err)
}

func TestRecordMarksBookingPaid(t *testing.T) {
	payments := &mockPaymentRepo{}
	bookings := &mockBookingRepo{}
	svc := &DefaultPaymentService{Payments: payments, Bookings: bookings}

	recorded, err := svc.Record(&models.Payment{
		BookingID:     "b1",
		Email:         "pat@example.com",
		Amount:        80,
		TransactionID: "txn_123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, recorded.ID)
	assert.Equal(t, "b1", bookings.paidID)
	assert.Equal(t, "txn_123", bookings.paidTxn)
	require.NotNil(t, payments.created)
}

func TestRecordSurfacesBookingUpdateFailure(t *testing.T) {
	svc := &DefaultPaymentService{
		Payments: &mockPaymentRepo{},
		Bookings: &mockBookingRepo{err: errors.New("not found")},
	}

	_, err := svc.Record(&models.Payment{BookingID: "b1", TransactionID: "txn_123"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "booking update failed")
}

func TestRecordValidatesRequiredFields(t *testing.T) {
	svc := &DefaultPaymentService{Payments: &mockPaymentRepo{}, Bookings: &mockBookingRepo{}}

	_, err := svc.Record(&models.Payment{BookingID: "b1"})

	assert.Error(t, err)
}
