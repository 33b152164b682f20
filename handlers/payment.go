package handlers

import (
	"net/http"

	"careconnect/middleware"
	paymentService "careconnect/services/payment"
	"careconnect/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes the payment settlement endpoints.
type PaymentHandler struct {
	PaymentService paymentService.PaymentService
}

// CreatePaymentHandler handles POST /api/payments.
func (h *PaymentHandler) CreatePaymentHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input paymentService.CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "details": err.Error()})
		return
	}

	payment, err := h.PaymentService.CreatePayment(principal, input)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// ProcessPaymentHandler handles POST /api/payments/:id/process. The gateway
// fields echo back what the payment processor returned to the client.
func (h *PaymentHandler) ProcessPaymentHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input struct {
		GatewayPaymentID string `json:"gatewayPaymentId"`
		GatewaySignature string `json:"gatewaySignature"`
	}
	_ = c.ShouldBindJSON(&input)

	payment, err := h.PaymentService.ProcessPayment(principal, c.Param("id"), input.GatewayPaymentID, input.GatewaySignature)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// RefundPaymentHandler handles POST /api/admin/payments/:id/refund.
func (h *PaymentHandler) RefundPaymentHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	var input struct {
		Amount float64 `json:"amount"`
		Reason string  `json:"reason"`
	}
	_ = c.ShouldBindJSON(&input)

	payment, err := h.PaymentService.RefundPayment(principal, c.Param("id"), input.Amount, input.Reason)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// GetPaymentHandler handles GET /api/payments/:id.
func (h *PaymentHandler) GetPaymentHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	payment, err := h.PaymentService.GetPayment(principal, c.Param("id"))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// GetPaymentByBookingHandler handles GET /api/payments/booking/:bookingId.
func (h *PaymentHandler) GetPaymentByBookingHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	payment, err := h.PaymentService.GetPaymentByBooking(principal, c.Param("bookingId"))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// ListPaymentsHandler handles GET /api/admin/payments.
func (h *PaymentHandler) ListPaymentsHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	page := queryInt64(c, "page", 1)
	limit := queryInt64(c, "limit", 10)
	payments, total, err := h.PaymentService.ListPayments(principal, c.Query("status"), page, limit)
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"payments": payments,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}

// MyPaymentsHandler handles GET /api/payments/my.
func (h *PaymentHandler) MyPaymentsHandler(c *gin.Context) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}

	history, err := h.PaymentService.MyPayments(principal, queryInt64(c, "page", 1), queryInt64(c, "limit", 10))
	if err != nil {
		utils.RespondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}
