package handlers

import (
	"errors"
	"net/http"

	"docportal/middleware"
	"docportal/models"
	"docportal/services/availability"
	"docportal/services/booking"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler serves booking creation and lookup.
type BookingHandler struct {
	Service booking.BookingService
	Cache   availability.Cache
}

func NewBookingHandler(service booking.BookingService, cache availability.Cache) *BookingHandler {
	return &BookingHandler{Service: service, Cache: cache}
}

type createBookingRequest struct {
	Date        string  `json:"date" binding:"required"`
	Treatment   string  `json:"treatment" binding:"required"`
	Slot        string  `json:"slot" binding:"required"`
	Email       string  `json:"email" binding:"required,email"`
	PatientName string  `json:"patientName" binding:"required"`
	Phone       string  `json:"phone"`
	Price       float64 `json:"price"`
}

// CreateBooking handles POST /bookings. A conflicting slot yields 409 with
// an acknowledged:false body so the client can show the reason.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	logger := utils.GetLogger()

	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.Service.Create(&models.Booking{
		Date:        req.Date,
		Treatment:   req.Treatment,
		Slot:        req.Slot,
		Email:       req.Email,
		PatientName: req.PatientName,
		Phone:       req.Phone,
		Price:       req.Price,
	})
	if err != nil {
		if booking.IsConflict(err) {
			c.JSON(http.StatusConflict, gin.H{"acknowledged": false, "message": err.Error()})
			return
		}
		logger.Error("failed to create booking", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create booking", err.Error())
		return
	}

	if h.Cache != nil {
		h.Cache.Invalidate(c.Request.Context(), created.Date)
	}
	c.JSON(http.StatusCreated, gin.H{"acknowledged": true, "booking": created})
}

// ListBookings handles GET /bookings?email=. Callers may only list their own
// bookings; the email must match the authenticated token.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email query parameter is required"})
		return
	}
	if email != middleware.AuthenticatedEmail(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden access"})
		return
	}

	bookings, err := h.Service.ListByEmail(email)
	if err != nil {
		utils.GetLogger().Error("failed to list bookings", zap.String("email", email), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list bookings", err.Error())
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBooking handles GET /bookings/:id, used by the payment page.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id := c.Param("id")
	b, err := h.Service.GetByID(id)
	if err != nil {
		if errors.Is(err, booking.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
			return
		}
		utils.GetLogger().Error("failed to fetch booking", zap.String("id", id), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch booking", err.Error())
		return
	}
	c.JSON(http.StatusOK, b)
}
