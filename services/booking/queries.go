package booking

import (
	"fmt"

	bookingRepo "careconnect/database/repository/booking"
	"careconnect/models"
	"careconnect/utils"
)

// GetBooking returns a booking with its payment record, if one exists.
func (s *DefaultBookingService) GetBooking(actor models.Principal, bookingID string) (*models.Booking, *models.Payment, error) {
	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking == nil {
		return nil, nil, utils.NotFoundErr("Booking not found")
	}
	if !canAct(actor, booking) {
		return nil, nil, utils.ForbiddenErr("Not authorized to view this booking")
	}

	payment, err := s.PaymentRepo.GetByBooking(bookingID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch payment: %w", err)
	}
	return booking, payment, nil
}

// ListBookings returns bookings visible to the actor: admins see all, users
// only their own. An optional status filter applies to both.
func (s *DefaultBookingService) ListBookings(actor models.Principal, status string, page, limit int64) ([]models.Booking, int64, error) {
	filter := bookingRepo.BookingFilter{Status: status}
	if !actor.IsAdmin() {
		filter.UserID = actor.ID
	}

	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	skip := (page - 1) * limit

	bookings, err := s.Repo.List(filter, skip, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	total, err := s.Repo.Count(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return bookings, total, nil
}

// MyBookings returns the actor's full booking history, newest first.
func (s *DefaultBookingService) MyBookings(actor models.Principal) ([]models.Booking, error) {
	bookings, err := s.Repo.List(bookingRepo.BookingFilter{UserID: actor.ID}, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}
