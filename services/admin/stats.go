package admin

import (
	"fmt"

	bookingRepo "careconnect/database/repository/booking"
	caretakerRepo "careconnect/database/repository/caretaker"
	paymentRepo "careconnect/database/repository/payment"
	"careconnect/models"
)

// GetDashboardStats collects the platform counters. Each counter is read
// independently; the snapshot is not point-in-time consistent across stores.
func (s *DefaultAdminService) GetDashboardStats() (*DashboardStats, error) {
	stats := &DashboardStats{}

	var err error
	if stats.TotalUsers, err = s.Users.CountByRole(models.RoleUser); err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}

	if stats.TotalCaretakers, err = s.Caretakers.Count(caretakerRepo.CaretakerFilter{}); err != nil {
		return nil, fmt.Errorf("failed to count caretakers: %w", err)
	}
	verified := true
	if stats.VerifiedCaretakers, err = s.Caretakers.Count(caretakerRepo.CaretakerFilter{Verified: &verified}); err != nil {
		return nil, fmt.Errorf("failed to count verified caretakers: %w", err)
	}
	stats.PendingCaretakers = stats.TotalCaretakers - stats.VerifiedCaretakers

	if stats.TotalBookings, err = s.Bookings.Count(bookingRepo.BookingFilter{}); err != nil {
		return nil, fmt.Errorf("failed to count bookings: %w", err)
	}
	active := bookingRepo.BookingFilter{Statuses: []string{models.BookingConfirmed, models.BookingInProgress}}
	if stats.ActiveBookings, err = s.Bookings.Count(active); err != nil {
		return nil, fmt.Errorf("failed to count active bookings: %w", err)
	}
	if stats.CompletedBookings, err = s.Bookings.Count(bookingRepo.BookingFilter{Status: models.BookingCompleted}); err != nil {
		return nil, fmt.Errorf("failed to count completed bookings: %w", err)
	}

	if stats.TotalRevenue, err = s.Payments.SumAmount(paymentRepo.PaymentFilter{Status: models.PaymentCompleted}); err != nil {
		return nil, fmt.Errorf("failed to sum revenue: %w", err)
	}

	if stats.RecentBookings, err = s.Bookings.List(bookingRepo.BookingFilter{}, 0, 5); err != nil {
		return nil, fmt.Errorf("failed to list recent bookings: %w", err)
	}
	return stats, nil
}
