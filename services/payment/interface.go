package payment

import (
	bookingRepo "careconnect/database/repository/booking"
	paymentRepo "careconnect/database/repository/payment"
	"careconnect/models"
)

// CardGateway opens a payment intent with the card processor and returns the
// gateway's payment reference.
type CardGateway interface {
	CreateIntent(amount float64, currency, bookingID string) (string, error)
}

// ReminderScheduler schedules a booking reminder once a payment settles.
type ReminderScheduler interface {
	ScheduleBookingReminder(booking *models.Booking) error
}

// PaymentService models settlement: payment creation, completion, refunds and
// payment history.
type PaymentService interface {
	CreatePayment(actor models.Principal, input CreatePaymentInput) (*models.Payment, error)
	ProcessPayment(actor models.Principal, paymentID, gatewayPaymentID, gatewaySignature string) (*models.Payment, error)
	RefundPayment(actor models.Principal, paymentID string, amount float64, reason string) (*models.Payment, error)

	GetPayment(actor models.Principal, paymentID string) (*models.Payment, error)
	GetPaymentByBooking(actor models.Principal, bookingID string) (*models.Payment, error)
	MyPayments(actor models.Principal, page, limit int64) (*PaymentHistory, error)
	ListPayments(actor models.Principal, status string, page, limit int64) ([]models.Payment, int64, error)
}

// CreatePaymentInput is the validated payload for initiating a payment.
type CreatePaymentInput struct {
	BookingID     string `json:"bookingId" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required"`
	Currency      string `json:"currency,omitempty"`
}

// PaymentHistory is a page of a user's payments with spend totals.
type PaymentHistory struct {
	Payments   []models.Payment `json:"payments"`
	Total      int64            `json:"total"`
	TotalSpent float64          `json:"totalSpent"`
}

// DefaultPaymentService is the production implementation. Gateway and
// Reminders are optional; without a gateway, card payments settle through the
// manual path like every other method.
type DefaultPaymentService struct {
	Repo        paymentRepo.PaymentRepository
	BookingRepo bookingRepo.BookingRepository
	Gateway     CardGateway
	Reminders   ReminderScheduler
}
