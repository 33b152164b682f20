package payment

import (
	"fmt"

	paymentRepo "careconnect/database/repository/payment"
	"careconnect/models"
	"careconnect/utils"
)

func canView(actor models.Principal, p *models.Payment) bool {
	return actor.IsAdmin() || actor.ID == p.UserID
}

// GetPayment returns a payment visible to its owner or an admin.
func (s *DefaultPaymentService) GetPayment(actor models.Principal, paymentID string) (*models.Payment, error) {
	payment, err := s.Repo.GetByID(paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}
	if payment == nil {
		return nil, utils.NotFoundErr("Payment not found")
	}
	if !canView(actor, payment) {
		return nil, utils.ForbiddenErr("Not authorized to view this payment")
	}
	return payment, nil
}

// GetPaymentByBooking returns the payment for a booking, if any.
func (s *DefaultPaymentService) GetPaymentByBooking(actor models.Principal, bookingID string) (*models.Payment, error) {
	payment, err := s.Repo.GetByBooking(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payment: %w", err)
	}
	if payment == nil {
		return nil, utils.NotFoundErr("Payment not found for this booking")
	}
	if !canView(actor, payment) {
		return nil, utils.ForbiddenErr("Not authorized to view this payment")
	}
	return payment, nil
}

// MyPayments returns a page of the actor's payments plus the total spent
// across all completed payments.
func (s *DefaultPaymentService) MyPayments(actor models.Principal, page, limit int64) (*PaymentHistory, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	skip := (page - 1) * limit

	filter := paymentRepo.PaymentFilter{UserID: actor.ID}
	payments, err := s.Repo.List(filter, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	total, err := s.Repo.Count(filter)
	if err != nil {
		return nil, fmt.Errorf("failed to count payments: %w", err)
	}

	completed, err := s.Repo.List(paymentRepo.PaymentFilter{UserID: actor.ID, Status: models.PaymentCompleted}, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed payments: %w", err)
	}
	var spent float64
	for _, p := range completed {
		spent += p.Amount
	}

	return &PaymentHistory{Payments: payments, Total: total, TotalSpent: spent}, nil
}

// ListPayments pages through all payments, optionally by status. Admin only.
func (s *DefaultPaymentService) ListPayments(actor models.Principal, status string, page, limit int64) ([]models.Payment, int64, error) {
	if !actor.IsAdmin() {
		return nil, 0, utils.ForbiddenErr("Only admins can list payments")
	}

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	skip := (page - 1) * limit

	filter := paymentRepo.PaymentFilter{Status: status}
	payments, err := s.Repo.List(filter, skip, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payments: %w", err)
	}
	total, err := s.Repo.Count(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count payments: %w", err)
	}
	return payments, total, nil
}
