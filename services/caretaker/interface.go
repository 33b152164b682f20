package caretaker

import (
	caretakerRepo "careconnect/database/repository/caretaker"
	feedbackRepo "careconnect/database/repository/feedback"
	"careconnect/models"

	"github.com/go-redis/redis/v8"
)

// DirectoryQuery narrows the public caretaker directory.
type DirectoryQuery struct {
	Specialization string
	Availability   string
	City           string
	Search         string
	MinRating      float64
	Page           int64
	Limit          int64
}

// CaretakerService serves the public directory and admin-side caretaker
// management, including verification.
type CaretakerService interface {
	ListCaretakers(q DirectoryQuery) ([]models.Caretaker, int64, error)
	GetCaretaker(id string) (*models.Caretaker, []models.Feedback, error)

	CreateCaretaker(input *models.Caretaker) (*models.Caretaker, error)
	UpdateCaretaker(id string, apply func(*models.Caretaker)) (*models.Caretaker, error)
	SetAvailability(id, availability string) (*models.Caretaker, error)
	DeactivateCaretaker(id string) error

	VerifyCaretaker(adminID, id string) (*models.Caretaker, error)
	UnverifyCaretaker(id string) (*models.Caretaker, error)
	AdminList(isVerified *bool, search string, page, limit int64) ([]models.Caretaker, int64, error)
}

// DefaultCaretakerService is the production implementation. Cache is optional;
// without it, directory pages are served straight from the store.
type DefaultCaretakerService struct {
	Repo         caretakerRepo.CaretakerRepository
	FeedbackRepo feedbackRepo.FeedbackRepository
	Cache        *redis.Client
}
