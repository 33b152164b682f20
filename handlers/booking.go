package handlers

import (
	"net/http"

	"careconnect/middleware"
	"careconnect/models"
	bookingService "careconnect/services/booking"
	"careconnect/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	BookingService bookingService.BookingService
}

// CreateBookingHandler handles POST /api/bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	booking, err := h.BookingService.CreateBooking(principal, input)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GetBookingHandler handles GET /api/bookings/:id.
func (h *BookingHandler) GetBookingHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	booking, payment, err := h.BookingService.GetBooking(principal, c.Param("id"))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking, "payment": payment})
}

// ListBookingsHandler handles GET /api/bookings. Regular users see their own
// bookings; admins see everything.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	page := queryInt64(c, "page", 1)
	limit := queryInt64(c, "limit", 10)
	bookings, total, err := h.BookingService.ListBookings(principal, c.Query("status"), page, limit)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"bookings": bookings,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

// MyBookingsHandler handles GET /api/bookings/my.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	bookings, err := h.BookingService.MyBookings(principal)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// UpdateBookingStatusHandler handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	booking, err := h.BookingService.UpdateBookingStatus(principal, c.Param("id"), input.Status)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// CancelBookingHandler handles PATCH /api/bookings/:id/cancel.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input struct {
		Reason string `json:"reason"`
	}
	// Reason is optional; a missing body cancels without one.
	_ = c.ShouldBindJSON(&input)

	booking, err := h.BookingService.CancelBooking(principal, c.Param("id"), input.Reason)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// AssignCaretakerHandler handles PATCH /api/admin/bookings/:id/assign.
func (h *BookingHandler) AssignCaretakerHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input struct {
		CaretakerID string `json:"caretakerId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	booking, err := h.BookingService.AssignCaretaker(principal, c.Param("id"), input.CaretakerID)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}
