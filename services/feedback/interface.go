package feedback

import (
	bookingRepo "careconnect/database/repository/booking"
	caretakerRepo "careconnect/database/repository/caretaker"
	feedbackRepo "careconnect/database/repository/feedback"
	"careconnect/models"
)

// FeedbackService manages reviews of completed bookings and keeps each
// caretaker's aggregate rating in step with its feedback set.
type FeedbackService interface {
	SubmitFeedback(actor models.Principal, input FeedbackInput) (*models.Feedback, error)
	UpdateFeedback(actor models.Principal, feedbackID string, input FeedbackUpdate) (*models.Feedback, error)
	DeleteFeedback(actor models.Principal, feedbackID string) error

	CaretakerFeedback(caretakerID string, page, limit int64) (*CaretakerFeedbackPage, error)
	MyFeedbacks(actor models.Principal) ([]models.Feedback, error)
}

// FeedbackInput is the validated payload for submitting feedback.
type FeedbackInput struct {
	BookingID  string                    `json:"bookingId" binding:"required"`
	Rating     float64                   `json:"rating" binding:"required,min=1,max=5"`
	Comment    string                    `json:"comment,omitempty"`
	Categories models.FeedbackCategories `json:"categories,omitempty"`
}

// FeedbackUpdate carries optional updates; nil fields are left unchanged.
type FeedbackUpdate struct {
	Rating     *float64                   `json:"rating,omitempty"`
	Comment    *string                    `json:"comment,omitempty"`
	Categories *models.FeedbackCategories `json:"categories,omitempty"`
}

// CaretakerFeedbackPage is a public page of visible feedback with averages.
type CaretakerFeedbackPage struct {
	Feedbacks     []models.Feedback         `json:"feedbacks"`
	Total         int64                     `json:"total"`
	AvgRating     float64                   `json:"avgRating"`
	AvgCategories models.FeedbackCategories `json:"avgCategories"`
}

// DefaultFeedbackService is the production implementation.
type DefaultFeedbackService struct {
	Repo          feedbackRepo.FeedbackRepository
	BookingRepo   bookingRepo.BookingRepository
	CaretakerRepo caretakerRepo.CaretakerRepository
}
