package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"docportal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockOptionRepo struct {
	options []models.AppointmentOption
	err     error
}

func (m *mockOptionRepo) GetAll() ([]models.AppointmentOption, error)   { return m.options, m.err }
func (m *mockOptionRepo) GetNames() ([]models.AppointmentOption, error) { return m.options, m.err }

type mockBookingRepoForHandler struct {
	byDate []models.Booking
	err    error
}

func (m *mockBookingRepoForHandler) GetByDate(string) ([]models.Booking, error) {
	return m.byDate, m.err
}
func (m *mockBookingRepoForHandler) GetByEmail(string) ([]models.Booking, error) { return nil, nil }
func (m *mockBookingRepoForHandler) GetByID(string) (*models.Booking, error)     { return nil, nil }
func (m *mockBookingRepoForHandler) InsertIfAbsent(*models.Booking) error        { return nil }
func (m *mockBookingRepoForHandler) MarkPaid(string, string) error               { return nil }

func newAppointmentRouter(h *AppointmentHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/appointmentOption", h.GetAppointmentOptions)
	r.GET("/appointmentName", h.GetAppointmentNames)
	return r
}

func TestGetAppointmentOptionsFiltersBookedSlots(t *testing.T) {
	h := NewAppointmentHandler(
		&mockOptionRepo{options: []models.AppointmentOption{
			{Name: "Cleaning", Price: 80, Slots: []string{"8:00 AM", "9:00 AM"}},
		}},
		&mockBookingRepoForHandler{byDate: []models.Booking{
			{Date: "2024-01-01", Treatment: "Cleaning", Slot: "8:00 AM"},
		}},
		nil,
	)
	router := newAppointmentRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/appointmentOption?date=2024-01-01", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result []models.AppointmentOption
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	require.Len(t, result, 1)
	assert.Equal(t, "Cleaning", result[0].Name)
	assert.Equal(t, []string{"9:00 AM"}, result[0].Slots)
}

func TestGetAppointmentOptionsRequiresDate(t *testing.T) {
	h := NewAppointmentHandler(&mockOptionRepo{}, &mockBookingRepoForHandler{}, nil)
	router := newAppointmentRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/appointmentOption", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAppointmentOptionsSurfacesStoreFailure(t *testing.T) {
	h := NewAppointmentHandler(
		&mockOptionRepo{err: errors.New("connection reset")},
		&mockBookingRepoForHandler{},
		nil,
	)
	router := newAppointmentRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/appointmentOption?date=2024-01-01", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetAppointmentNames(t *testing.T) {
	h := NewAppointmentHandler(
		&mockOptionRepo{options: []models.AppointmentOption{{Name: "Cleaning"}, {Name: "Whitening"}}},
		&mockBookingRepoForHandler{},
		nil,
	)
	router := newAppointmentRouter(h)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/appointmentName", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var result []models.AppointmentOption
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result, 2)
}
