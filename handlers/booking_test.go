package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"docportal/middleware"
	"docportal/models"
	"docportal/services/booking"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockBookingService struct {
	createFunc func(b *models.Booking) (*models.Booking, error)
	listFunc   func(email string) ([]models.Booking, error)
	getFunc    func(id string) (*models.Booking, error)
}

func (m *mockBookingService) Create(b *models.Booking) (*models.Booking, error) {
	if m.createFunc != nil {
		return m.createFunc(b)
	}
	b.ID = "generated"
	return b, nil
}

func (m *mockBookingService) ListByEmail(email string) ([]models.Booking, error) {
	if m.listFunc != nil {
		return m.listFunc(email)
	}
	return nil, nil
}

func (m *mockBookingService) GetByID(id string) (*models.Booking, error) {
	if m.getFunc != nil {
		return m.getFunc(id)
	}
	return nil, booking.ErrNotFound
}

// newBookingRouter wires the handler behind a stub auth layer that marks the
// request as authenticated for the given email.
func newBookingRouter(h *BookingHandler, email string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextEmailKey, email)
	})
	r.GET("/bookings", h.ListBookings)
	r.GET("/bookings/:id", h.GetBooking)
	r.POST("/bookings", h.CreateBooking)
	return r
}

func TestCreateBookingReturnsCreated(t *testing.T) {
	h := NewBookingHandler(&mockBookingService{}, nil)
	router := newBookingRouter(h, "pat@example.com")

	body := `{"date":"2024-01-01","treatment":"Cleaning","slot":"8:00 AM","email":"pat@example.com","patientName":"Pat"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Acknowledged bool           `json:"acknowledged"`
		Booking      models.Booking `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Acknowledged)
	assert.Equal(t, "generated", resp.Booking.ID)
}

func TestCreateBookingConflictReturns409(t *testing.T) {
	h := NewBookingHandler(&mockBookingService{
		createFunc: func(b *models.Booking) (*models.Booking, error) {
			return nil, booking.ConflictError{Reason: "Cleaning at 8:00 AM is already booked on 2024-01-01"}
		},
	}, nil)
	router := newBookingRouter(h, "pat@example.com")

	body := `{"date":"2024-01-01","treatment":"Cleaning","slot":"8:00 AM","email":"pat@example.com","patientName":"Pat"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Acknowledged bool   `json:"acknowledged"`
		Message      string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Acknowledged)
	assert.Contains(t, resp.Message, "2024-01-01")
}

func TestCreateBookingRejectsIncompletePayload(t *testing.T) {
	h := NewBookingHandler(&mockBookingService{}, nil)
	router := newBookingRouter(h, "pat@example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(`{"date":"2024-01-01"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListBookingsForbidsOtherEmails(t *testing.T) {
	h := NewBookingHandler(&mockBookingService{}, nil)
	router := newBookingRouter(h, "pat@example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings?email=other@example.com", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestListBookingsReturnsOwnBookings(t *testing.T) {
	h := NewBookingHandler(&mockBookingService{
		listFunc: func(email string) ([]models.Booking, error) {
			return []models.Booking{{ID: "b1", Email: email}}, nil
		},
	}, nil)
	router := newBookingRouter(h, "pat@example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings?email=pat@example.com", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result, 1)
	assert.Equal(t, "b1", result[0].ID)
}

func TestGetBookingNotFound(t *testing.T) {
	h := NewBookingHandler(&mockBookingService{}, nil)
	router := newBookingRouter(h, "pat@example.com")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
