package feedbackRepo

import "careconnect/models"

// FeedbackRepository defines persistence operations for feedback documents.
// Lookups return (nil, nil) when no document matches.
type FeedbackRepository interface {
	Create(feedback *models.Feedback) error
	Update(feedback *models.Feedback) error
	Delete(id string) error
	GetByID(id string) (*models.Feedback, error)
	GetByBooking(bookingID string) (*models.Feedback, error)
	// ListByCaretaker returns feedback for a caretaker, newest first.
	// limit <= 0 returns the full set.
	ListByCaretaker(caretakerID string, visibleOnly bool, skip, limit int64) ([]models.Feedback, error)
	CountByCaretaker(caretakerID string, visibleOnly bool) (int64, error)
	ListByUser(userID string) ([]models.Feedback, error)
}
