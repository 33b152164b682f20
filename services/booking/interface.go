package booking

import (
	bookingRepo "careconnect/database/repository/booking"
	caretakerRepo "careconnect/database/repository/caretaker"
	paymentRepo "careconnect/database/repository/payment"
	"careconnect/models"
)

// BookingService governs the booking lifecycle: creation, status transitions,
// cancellation and admin caretaker assignment, plus read-side queries.
type BookingService interface {
	CreateBooking(actor models.Principal, input models.BookingInput) (*models.Booking, error)
	UpdateBookingStatus(actor models.Principal, bookingID, status string) (*models.Booking, error)
	CancelBooking(actor models.Principal, bookingID, reason string) (*models.Booking, error)
	AssignCaretaker(actor models.Principal, bookingID, caretakerID string) (*models.Booking, error)

	GetBooking(actor models.Principal, bookingID string) (*models.Booking, *models.Payment, error)
	ListBookings(actor models.Principal, status string, page, limit int64) ([]models.Booking, int64, error)
	MyBookings(actor models.Principal) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo          bookingRepo.BookingRepository
	CaretakerRepo caretakerRepo.CaretakerRepository
	PaymentRepo   paymentRepo.PaymentRepository
}
