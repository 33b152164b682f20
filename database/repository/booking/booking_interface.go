package bookingRepo

import "careconnect/models"

// BookingFilter narrows booking listings. Zero values mean "no constraint".
type BookingFilter struct {
	UserID   string
	Status   string
	Statuses []string
}

// BookingRepository defines persistence operations for bookings.
// Lookups return (nil, nil) when no document matches.
type BookingRepository interface {
	Create(booking *models.Booking) error
	Update(booking *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	List(filter BookingFilter, skip, limit int64) ([]models.Booking, error)
	Count(filter BookingFilter) (int64, error)
}
