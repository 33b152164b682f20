package payment

import (
	"fmt"
	"time"

	"careconnect/models"
	"careconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreatePayment initiates a payment for a booking. The amount is copied from
// the booking's total at creation time. A booking already marked paid, or one
// with an existing completed payment, is rejected.
func (s *DefaultPaymentService) CreatePayment(actor models.Principal, input CreatePaymentInput) (*models.Payment, error) {
	if !models.ValidPaymentMethod(input.PaymentMethod) {
		return nil, utils.InvalidInputErr("Invalid payment method")
	}

	booking, err := s.BookingRepo.GetByID(input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking == nil {
		return nil, utils.NotFoundErr("Booking not found")
	}
	if booking.UserID != actor.ID {
		return nil, utils.ForbiddenErr("Not authorized to make payment for this booking")
	}
	if booking.PaymentStatus == models.PaymentStatusPaid {
		return nil, utils.InvalidStateErr("Payment already completed for this booking")
	}

	existing, err := s.Repo.GetByBooking(input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing payment: %w", err)
	}
	if existing != nil && existing.Status == models.PaymentCompleted {
		return nil, utils.InvalidStateErr("Payment already exists for this booking")
	}

	currency := input.Currency
	if currency == "" {
		currency = "INR"
	}

	payment := &models.Payment{
		ID:             uuid.New().String(),
		UserID:         actor.ID,
		BookingID:      booking.ID,
		CaretakerID:    booking.CaretakerID,
		Amount:         booking.TotalAmount,
		Currency:       currency,
		PaymentMethod:  input.PaymentMethod,
		Status:         models.PaymentPending,
		PaymentGateway: "manual",
	}

	// Card payments go through the gateway when one is configured.
	if input.PaymentMethod == models.MethodCard && s.Gateway != nil {
		ref, err := s.Gateway.CreateIntent(payment.Amount, currency, booking.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to open payment intent: %w", err)
		}
		payment.PaymentGateway = "stripe"
		payment.GatewayPaymentID = ref
	}

	if err := s.Repo.Create(payment); err != nil {
		return nil, fmt.Errorf("failed to create payment: %w", err)
	}
	return payment, nil
}

// ProcessPayment settles a pending payment and propagates the result onto the
// booking. The payment document is saved first; the booking write follows
// with no cross-document atomicity.
func (s *DefaultPaymentService) ProcessPayment(actor models.Principal, paymentID, gatewayPaymentID, gatewaySignature string) (*models.Payment, error) {
	payment, err := s.Repo.GetByID(paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}
	if payment == nil {
		return nil, utils.NotFoundErr("Payment not found")
	}
	if payment.UserID != actor.ID {
		return nil, utils.ForbiddenErr("Not authorized to process this payment")
	}
	if payment.Status == models.PaymentCompleted {
		return nil, utils.InvalidStateErr("Payment already completed")
	}

	now := time.Now()
	payment.Status = models.PaymentCompleted
	if gatewayPaymentID != "" {
		payment.GatewayPaymentID = gatewayPaymentID
	} else if payment.GatewayPaymentID == "" {
		payment.GatewayPaymentID = fmt.Sprintf("PAY%d", now.UnixMilli())
	}
	if payment.TransactionID == "" {
		payment.TransactionID = fmt.Sprintf("TXN%d", now.UnixMilli())
	}
	payment.GatewaySignature = gatewaySignature
	payment.PaidAt = &now

	if err := s.Repo.Update(payment); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	booking, err := s.BookingRepo.GetByID(payment.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking != nil {
		booking.PaymentStatus = models.PaymentStatusPaid
		booking.Status = models.BookingConfirmed
		if err := s.BookingRepo.Update(booking); err != nil {
			utils.GetLogger().Error("payment completed but booking update failed",
				zap.String("paymentId", payment.ID),
				zap.String("bookingId", booking.ID),
				zap.Error(err))
			return nil, fmt.Errorf("failed to update booking payment status: %w", err)
		}

		if s.Reminders != nil {
			if err := s.Reminders.ScheduleBookingReminder(booking); err != nil {
				// Reminder delivery is best effort; the settlement stands.
				utils.GetLogger().Warn("failed to schedule booking reminder",
					zap.String("bookingId", booking.ID), zap.Error(err))
			}
		}
	}

	return payment, nil
}

// RefundPayment refunds a completed payment, up to the original amount, and
// cascades the refunded status onto the booking. Admin only.
func (s *DefaultPaymentService) RefundPayment(actor models.Principal, paymentID string, amount float64, reason string) (*models.Payment, error) {
	if !actor.IsAdmin() {
		return nil, utils.ForbiddenErr("Only admins can refund payments")
	}

	payment, err := s.Repo.GetByID(paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}
	if payment == nil {
		return nil, utils.NotFoundErr("Payment not found")
	}
	if payment.Status != models.PaymentCompleted {
		return nil, utils.InvalidStateErr("Can only refund completed payments")
	}

	refundAmt := amount
	if refundAmt == 0 {
		refundAmt = payment.Amount
	}
	if refundAmt > payment.Amount {
		return nil, utils.AmountExceededErr("Refund amount cannot exceed payment amount")
	}

	now := time.Now()
	payment.Status = models.PaymentRefunded
	payment.RefundAmount = refundAmt
	payment.RefundReason = reason
	payment.RefundedAt = &now

	if err := s.Repo.Update(payment); err != nil {
		return nil, fmt.Errorf("failed to update payment: %w", err)
	}

	booking, err := s.BookingRepo.GetByID(payment.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking != nil {
		booking.PaymentStatus = models.PaymentStatusRefunded
		if err := s.BookingRepo.Update(booking); err != nil {
			return nil, fmt.Errorf("failed to update booking payment status: %w", err)
		}
	}

	return payment, nil
}
