package feedback

import (
	"fmt"

	"careconnect/models"
	"careconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SubmitFeedback creates feedback for a completed booking owned by the actor,
// then folds the new rating into the caretaker's aggregate incrementally.
func (s *DefaultFeedbackService) SubmitFeedback(actor models.Principal, input FeedbackInput) (*models.Feedback, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, utils.InvalidInputErr("Rating must be between 1 and 5")
	}

	booking, err := s.BookingRepo.GetByID(input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking == nil {
		return nil, utils.NotFoundErr("Booking not found")
	}
	if booking.UserID != actor.ID {
		return nil, utils.ForbiddenErr("Not authorized to submit feedback for this booking")
	}
	if booking.Status != models.BookingCompleted {
		return nil, utils.InvalidStateErr("Can only submit feedback for completed bookings")
	}

	existing, err := s.Repo.GetByBooking(input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing feedback: %w", err)
	}
	if existing != nil {
		return nil, utils.AlreadyExistsErr("Feedback already submitted for this booking")
	}

	feedback := &models.Feedback{
		ID:          uuid.New().String(),
		UserID:      actor.ID,
		CaretakerID: booking.CaretakerID,
		BookingID:   input.BookingID,
		Rating:      input.Rating,
		Comment:     input.Comment,
		Categories:  input.Categories,
		IsVisible:   true,
	}

	if err := s.Repo.Create(feedback); err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	caretaker, err := s.CaretakerRepo.GetByID(booking.CaretakerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch caretaker: %w", err)
	}
	if caretaker != nil {
		caretaker.Rating, caretaker.TotalReviews = IncrementalRating(caretaker.Rating, caretaker.TotalReviews, input.Rating)
		if err := s.CaretakerRepo.Update(caretaker); err != nil {
			utils.GetLogger().Error("feedback created but rating update failed",
				zap.String("feedbackId", feedback.ID),
				zap.String("caretakerId", caretaker.ID),
				zap.Error(err))
			return nil, fmt.Errorf("failed to update caretaker rating: %w", err)
		}
	}

	return feedback, nil
}

// UpdateFeedback edits the actor's feedback and recomputes the caretaker's
// aggregate from the full feedback set.
func (s *DefaultFeedbackService) UpdateFeedback(actor models.Principal, feedbackID string, input FeedbackUpdate) (*models.Feedback, error) {
	feedback, err := s.Repo.GetByID(feedbackID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feedback: %w", err)
	}
	if feedback == nil {
		return nil, utils.NotFoundErr("Feedback not found")
	}
	if feedback.UserID != actor.ID {
		return nil, utils.ForbiddenErr("Not authorized to update this feedback")
	}

	if input.Rating != nil {
		if *input.Rating < 1 || *input.Rating > 5 {
			return nil, utils.InvalidInputErr("Rating must be between 1 and 5")
		}
		feedback.Rating = *input.Rating
	}
	if input.Comment != nil {
		feedback.Comment = *input.Comment
	}
	if input.Categories != nil {
		feedback.Categories = *input.Categories
	}

	if err := s.Repo.Update(feedback); err != nil {
		return nil, fmt.Errorf("failed to update feedback: %w", err)
	}

	if err := s.recomputeCaretakerRating(feedback.CaretakerID); err != nil {
		return nil, err
	}
	return feedback, nil
}

// DeleteFeedback removes feedback (owner or admin) and recomputes the
// caretaker's aggregate; the last deletion resets it to zero.
func (s *DefaultFeedbackService) DeleteFeedback(actor models.Principal, feedbackID string) error {
	feedback, err := s.Repo.GetByID(feedbackID)
	if err != nil {
		return fmt.Errorf("failed to fetch feedback: %w", err)
	}
	if feedback == nil {
		return utils.NotFoundErr("Feedback not found")
	}
	if feedback.UserID != actor.ID && !actor.IsAdmin() {
		return utils.ForbiddenErr("Not authorized to delete this feedback")
	}

	if err := s.Repo.Delete(feedbackID); err != nil {
		return fmt.Errorf("failed to delete feedback: %w", err)
	}

	return s.recomputeCaretakerRating(feedback.CaretakerID)
}

// recomputeCaretakerRating refetches the caretaker's full feedback set and
// overwrites the stored aggregate with the recomputed mean and count.
func (s *DefaultFeedbackService) recomputeCaretakerRating(caretakerID string) error {
	caretaker, err := s.CaretakerRepo.GetByID(caretakerID)
	if err != nil {
		return fmt.Errorf("failed to fetch caretaker: %w", err)
	}
	if caretaker == nil {
		return nil
	}

	feedbacks, err := s.Repo.ListByCaretaker(caretakerID, false, 0, 0)
	if err != nil {
		return fmt.Errorf("failed to list feedback: %w", err)
	}

	caretaker.Rating, caretaker.TotalReviews = Recompute(feedbacks)
	if err := s.CaretakerRepo.Update(caretaker); err != nil {
		return fmt.Errorf("failed to update caretaker rating: %w", err)
	}
	return nil
}

// CaretakerFeedback returns a public page of visible feedback with the mean
// rating and per-category averages across the full visible set.
func (s *DefaultFeedbackService) CaretakerFeedback(caretakerID string, page, limit int64) (*CaretakerFeedbackPage, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	skip := (page - 1) * limit

	feedbacks, err := s.Repo.ListByCaretaker(caretakerID, true, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	total, err := s.Repo.CountByCaretaker(caretakerID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to count feedback: %w", err)
	}

	all, err := s.Repo.ListByCaretaker(caretakerID, true, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	avg, _ := Recompute(all)
	result := &CaretakerFeedbackPage{
		Feedbacks: feedbacks,
		Total:     total,
		AvgRating: avg,
	}

	if n := float64(len(all)); n > 0 {
		var c models.FeedbackCategories
		for _, f := range all {
			c.Professionalism += f.Categories.Professionalism
			c.Punctuality += f.Categories.Punctuality
			c.Communication += f.Categories.Communication
			c.CareQuality += f.Categories.CareQuality
		}
		c.Professionalism /= n
		c.Punctuality /= n
		c.Communication /= n
		c.CareQuality /= n
		result.AvgCategories = c
	}

	return result, nil
}

// MyFeedbacks returns the actor's submitted feedback.
func (s *DefaultFeedbackService) MyFeedbacks(actor models.Principal) ([]models.Feedback, error) {
	feedbacks, err := s.Repo.ListByUser(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}
	return feedbacks, nil
}
