package routes

import (
	"net/http"
	"time"

	"careconnect/handlers"
	"careconnect/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup, login and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("/me", hb.Auth.ProfileHandler)
		api.PUT("/me", hb.Auth.UpdateProfileHandler)
	}
}

// RegisterCaretakerRoutes registers the public caretaker directory.
func RegisterCaretakerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/caretakers")
	{
		api.GET("", hb.Caretaker.ListCaretakersHandler)
		api.GET("/:id", hb.Caretaker.GetCaretakerHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Booking.CreateBookingHandler)
		api.GET("", hb.Booking.ListBookingsHandler)
		api.GET("/my", hb.Booking.MyBookingsHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.PATCH("/:id/status", hb.Booking.UpdateBookingStatusHandler)
		api.PATCH("/:id/cancel", hb.Booking.CancelBookingHandler)
	}
}

// RegisterPaymentRoutes registers the payment settlement endpoints.
func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.Payment.CreatePaymentHandler)
		api.GET("/my", hb.Payment.MyPaymentsHandler)
		api.GET("/booking/:bookingId", hb.Payment.GetPaymentByBookingHandler)
		api.GET("/:id", hb.Payment.GetPaymentHandler)
		api.POST("/:id/process", hb.Payment.ProcessPaymentHandler)
	}
}

// RegisterFeedbackRoutes registers the review endpoints. Reading a
// caretaker's feedback is public; writing requires authentication.
func RegisterFeedbackRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/feedback")
	{
		api.GET("/caretaker/:caretakerId", hb.Feedback.CaretakerFeedbackHandler)

		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		protected.POST("", hb.Feedback.SubmitFeedbackHandler)
		protected.GET("/my", hb.Feedback.MyFeedbacksHandler)
		protected.PUT("/:id", hb.Feedback.UpdateFeedbackHandler)
		protected.DELETE("/:id", hb.Feedback.DeleteFeedbackHandler)
	}
}

// RegisterAdminRoutes registers the admin console endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo), middleware.AdminOnly())

		api.GET("/stats", hb.Admin.DashboardStatsHandler)

		api.GET("/users", hb.Admin.ListUsersHandler)
		api.GET("/users/:id", hb.Admin.GetUserHandler)
		api.PATCH("/users/:id/deactivate", hb.Admin.DeactivateUserHandler)
		api.PATCH("/users/:id/activate", hb.Admin.ActivateUserHandler)

		api.GET("/caretakers", hb.Caretaker.AdminListCaretakersHandler)
		api.POST("/caretakers", hb.Caretaker.CreateCaretakerHandler)
		api.PUT("/caretakers/:id", hb.Caretaker.UpdateCaretakerHandler)
		api.PATCH("/caretakers/:id/availability", hb.Caretaker.SetAvailabilityHandler)
		api.PATCH("/caretakers/:id/verify", hb.Caretaker.VerifyCaretakerHandler)
		api.PATCH("/caretakers/:id/unverify", hb.Caretaker.UnverifyCaretakerHandler)
		api.DELETE("/caretakers/:id", hb.Caretaker.DeactivateCaretakerHandler)

		api.PATCH("/bookings/:id/assign", hb.Booking.AssignCaretakerHandler)
		api.GET("/payments", hb.Payment.ListPaymentsHandler)
		api.POST("/payments/:id/refund", hb.Payment.RefundPaymentHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm CareConnect"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterCaretakerRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterFeedbackRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
