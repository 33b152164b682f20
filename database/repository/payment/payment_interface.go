package paymentRepo

import "careconnect/models"

// PaymentFilter narrows payment listings. Zero values mean "no constraint".
type PaymentFilter struct {
	UserID string
	Status string
}

// PaymentRepository defines persistence operations for payments.
// Lookups return (nil, nil) when no document matches.
type PaymentRepository interface {
	Create(payment *models.Payment) error
	Update(payment *models.Payment) error
	GetByID(id string) (*models.Payment, error)
	GetByBooking(bookingID string) (*models.Payment, error)
	List(filter PaymentFilter, skip, limit int64) ([]models.Payment, error)
	Count(filter PaymentFilter) (int64, error)
	SumAmount(filter PaymentFilter) (float64, error)
}
