package handlers

import (
	"docportal/services/user"
	"docportal/utils"
)

// HandlerBundle groups the handlers and the collaborators route
// registration needs, so main assembles once and routes stay declarative.
type HandlerBundle struct {
	Appointment *AppointmentHandler
	Booking     *BookingHandler
	Payment     *PaymentHandler
	User        *UserHandler
	Doctor      *DoctorHandler

	// JWT and UserService back the auth and admin-gate middleware.
	JWT         *utils.JWTManager
	UserService user.UserService
}
