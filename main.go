package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"careconnect/config"
	"careconnect/cron"
	"careconnect/database"
	bookingRepoPkg "careconnect/database/repository/booking"
	caretakerRepoPkg "careconnect/database/repository/caretaker"
	feedbackRepoPkg "careconnect/database/repository/feedback"
	paymentRepoPkg "careconnect/database/repository/payment"
	userRepoPkg "careconnect/database/repository/user"
	"careconnect/handlers"
	"careconnect/routes"
	"careconnect/services/admin"
	"careconnect/services/booking"
	"careconnect/services/caretaker"
	"careconnect/services/feedback"
	"careconnect/services/payment"
	"careconnect/services/tasks"
	"careconnect/services/user"
	"careconnect/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	caretakerRepo := caretakerRepoPkg.NewMongoCaretakerRepo()
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	paymentRepo := paymentRepoPkg.NewMongoPaymentRepo()
	feedbackRepo := feedbackRepoPkg.NewMongoFeedbackRepo()

	// services.
	userService := &user.DefaultUserService{Repo: userRepo}

	caretakerService := &caretaker.DefaultCaretakerService{
		Repo:         caretakerRepo,
		FeedbackRepo: feedbackRepo,
		Cache:        utils.GetCacheClient(),
	}

	bookingService := &booking.DefaultBookingService{
		Repo:          bookingRepo,
		CaretakerRepo: caretakerRepo,
		PaymentRepo:   paymentRepo,
	}

	paymentService := &payment.DefaultPaymentService{
		Repo:        paymentRepo,
		BookingRepo: bookingRepo,
		Gateway:     &payment.StripeGateway{},
		Reminders:   tasks.NewAsynqScheduler(),
	}

	feedbackService := &feedback.DefaultFeedbackService{
		Repo:          feedbackRepo,
		BookingRepo:   bookingRepo,
		CaretakerRepo: caretakerRepo,
	}

	adminService := &admin.DefaultAdminService{
		Users:      userRepo,
		Caretakers: caretakerRepo,
		Bookings:   bookingRepo,
		Payments:   paymentRepo,
	}

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		Auth:      &handlers.AuthHandler{UserService: userService},
		Caretaker: &handlers.CaretakerHandler{CaretakerService: caretakerService},
		Booking:   &handlers.BookingHandler{BookingService: bookingService},
		Payment:   &handlers.PaymentHandler{PaymentService: paymentService},
		Feedback:  &handlers.FeedbackHandler{FeedbackService: feedbackService},
		Admin:     &handlers.AdminHandler{AdminService: adminService, UserService: userService},
	}

	routes.RegisterRoutes(router, handlerBundle)

	// Background reminder worker.
	cron.InitReminderWorker(bookingRepo)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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
