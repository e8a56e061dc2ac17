package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"docportal/config"
	"docportal/cron"
	"docportal/database"
	bookingRepoPkg "docportal/database/repository/booking"
	doctorRepoPkg "docportal/database/repository/doctor"
	optionRepoPkg "docportal/database/repository/option"
	paymentRepoPkg "docportal/database/repository/payment"
	userRepoPkg "docportal/database/repository/user"
	"docportal/handlers"
	"docportal/middleware"
	"docportal/routes"
	"docportal/services/availability"
	"docportal/services/booking"
	"docportal/services/doctor"
	"docportal/services/payment"
	"docportal/services/user"
	"docportal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	logger := utils.GetLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to load config: %v", err)
	}

	mongoClient, err := database.Connect(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	defer func() {
		if err := database.Disconnect(mongoClient); err != nil {
			logger.Error("main: mongo disconnect failed", zap.Error(err))
		}
	}()
	db := mongoClient.Database(cfg.DatabaseName)

	cacheClient, err := utils.NewCacheClient(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to Redis: %v", err)
	}
	availabilityCache := availability.NewRedisCache(cacheClient, time.Duration(cfg.AvailabilityTTL)*time.Second)

	stripe.Key = cfg.StripeKey
	jwtManager := utils.NewJWTManager(cfg.JWTSecret)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(cfg.MaxRequestsPerMin))

	// repositories.
	optionRepo := optionRepoPkg.NewMongoOptionRepo(db)
	bookingRepo, err := bookingRepoPkg.NewMongoBookingRepo(db)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize booking repository: %v", err)
	}
	userRepo, err := userRepoPkg.NewMongoUserRepo(db)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize user repository: %v", err)
	}
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo(db)
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo(db)

	// reminder queue.
	reminderScheduler := cron.NewReminderScheduler(cfg)
	defer reminderScheduler.Close()
	reminderWorker := cron.InitReminderWorker(cfg, cron.LogNotifier{})
	defer reminderWorker.Shutdown()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo, JWT: jwtManager}
	bookingService := &booking.DefaultBookingService{Repo: bookingRepo, Reminders: reminderScheduler}
	paymentService := &payment.DefaultPaymentService{
		Processor: payment.StripeProcessor{},
		Payments:  paymentRepo,
		Bookings:  bookingRepo,
		Currency:  cfg.StripeCurrency,
	}
	doctorService := &doctor.DefaultDoctorService{Repo: doctorRepo}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		Appointment: handlers.NewAppointmentHandler(optionRepo, bookingRepo, availabilityCache),
		Booking:     handlers.NewBookingHandler(bookingService, availabilityCache),
		Payment:     handlers.NewPaymentHandler(paymentService),
		User:        handlers.NewUserHandler(userService),
		Doctor:      handlers.NewDoctorHandler(doctorService),
		JWT:         jwtManager,
		UserService: userService,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "5000"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
