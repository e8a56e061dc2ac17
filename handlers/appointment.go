package handlers

import (
	"net/http"

	bookingRepo "docportal/database/repository/booking"
	optionRepo "docportal/database/repository/option"
	"docportal/services/availability"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves the treatment catalog and per-date availability.
type AppointmentHandler struct {
	Options  optionRepo.OptionRepository
	Bookings bookingRepo.BookingRepository
	Cache    availability.Cache
}

func NewAppointmentHandler(options optionRepo.OptionRepository, bookings bookingRepo.BookingRepository, cache availability.Cache) *AppointmentHandler {
	return &AppointmentHandler{Options: options, Bookings: bookings, Cache: cache}
}

// GetAppointmentOptions handles GET /appointmentOption?date=. It returns the
// catalog with each option's slots reduced to what is still free on the date.
func (h *AppointmentHandler) GetAppointmentOptions(c *gin.Context) {
	logger := utils.GetLogger()

	date := c.Query("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date query parameter is required"})
		return
	}

	if h.Cache != nil {
		if cached, ok := h.Cache.Get(c.Request.Context(), date); ok {
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	catalog, err := h.Options.GetAll()
	if err != nil {
		logger.Error("failed to load appointment options", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load appointment options", err.Error())
		return
	}

	booked, err := h.Bookings.GetByDate(date)
	if err != nil {
		logger.Error("failed to load bookings", zap.String("date", date), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load bookings", err.Error())
		return
	}

	resolved := availability.Resolve(catalog, booked)

	if h.Cache != nil {
		h.Cache.Set(c.Request.Context(), date, resolved)
	}
	c.JSON(http.StatusOK, resolved)
}

// GetAppointmentNames handles GET /appointmentName, returning the catalog
// projected to treatment names.
func (h *AppointmentHandler) GetAppointmentNames(c *gin.Context) {
	names, err := h.Options.GetNames()
	if err != nil {
		utils.GetLogger().Error("failed to load appointment names", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load appointment names", err.Error())
		return
	}
	c.JSON(http.StatusOK, names)
}
