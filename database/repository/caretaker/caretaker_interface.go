package caretakerRepo

import "careconnect/models"

// CaretakerFilter narrows directory and admin listings. Zero values mean
// "no constraint"; Verified distinguishes unset from false.
type CaretakerFilter struct {
	Specialization string
	Availability   string
	City           string
	Search         string
	MinRating      float64
	Verified       *bool
	ActiveOnly     bool
}

// CaretakerRepository defines persistence operations for caretaker profiles.
// Lookups return (nil, nil) when no document matches.
type CaretakerRepository interface {
	Create(caretaker *models.Caretaker) error
	Update(caretaker *models.Caretaker) error
	GetByID(id string) (*models.Caretaker, error)
	GetByEmail(email string) (*models.Caretaker, error)
	List(filter CaretakerFilter, skip, limit int64) ([]models.Caretaker, error)
	Count(filter CaretakerFilter) (int64, error)
}
