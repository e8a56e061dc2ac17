package routes

import (
	"net/http"
	"time"

	"docportal/handlers"
	"docportal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAppointmentRoutes registers the public catalog endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/appointmentOption", hb.Appointment.GetAppointmentOptions)
	r.GET("/appointmentName", hb.Appointment.GetAppointmentNames)
}

// RegisterBookingRoutes registers booking endpoints. All require a token.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.JWT))
		api.GET("", hb.Booking.ListBookings)
		api.GET("/:id", hb.Booking.GetBooking)
		api.POST("", hb.Booking.CreateBooking)
	}
}

// RegisterPaymentRoutes registers payment endpoints behind authentication.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	auth := middleware.JWTAuthMiddleware(hb.JWT)
	r.GET("/payment/:id", auth, hb.Booking.GetBooking)
	r.POST("/payments", auth, hb.Payment.RecordPayment)
	r.POST("/create-payment-intent", auth, hb.Payment.CreatePaymentIntent)
}

// RegisterUserRoutes registers registration, token issuance and the
// admin-gated user management endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/user", hb.User.RegisterUser)
	r.GET("/jwt", hb.User.IssueToken)
	r.GET("/users/admin/:email", hb.User.CheckAdmin)

	admin := r.Group("/users")
	{
		admin.Use(middleware.JWTAuthMiddleware(hb.JWT), middleware.AdminAccessMiddleware(hb.UserService))
		admin.GET("", hb.User.GetUsers)
		admin.PUT("/admin/:id", hb.User.PromoteUser)
	}
}

// RegisterDoctorRoutes registers the admin-only roster endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/doctors")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.JWT), middleware.AdminAccessMiddleware(hb.UserService))
		api.GET("", hb.Doctor.GetDoctors)
		api.POST("", hb.Doctor.AddDoctor)
		api.DELETE("/:id", hb.Doctor.DeleteDoctor)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Server is running"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAppointmentRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
}
