package models

import "time"

// Feedback is a user's review of a completed booking. One per booking.
type Feedback struct {
	ID          string             `bson:"id" json:"id"`
	UserID      string             `bson:"userId" json:"userId"`
	CaretakerID string             `bson:"caretakerId" json:"caretakerId"`
	BookingID   string             `bson:"bookingId" json:"bookingId"`
	Rating      float64            `bson:"rating" json:"rating"` // 1..5
	Comment     string             `bson:"comment,omitempty" json:"comment,omitempty"`
	Categories  FeedbackCategories `bson:"categories,omitempty" json:"categories,omitempty"`
	IsVisible   bool               `bson:"isVisible" json:"isVisible"`
	Response    *FeedbackResponse  `bson:"response,omitempty" json:"response,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// FeedbackCategories carries per-aspect ratings, each 1..5 when set.
type FeedbackCategories struct {
	Professionalism float64 `bson:"professionalism,omitempty" json:"professionalism,omitempty"`
	Punctuality     float64 `bson:"punctuality,omitempty" json:"punctuality,omitempty"`
	Communication   float64 `bson:"communication,omitempty" json:"communication,omitempty"`
	CareQuality     float64 `bson:"careQuality,omitempty" json:"careQuality,omitempty"`
}

// FeedbackResponse is the caretaker's reply to a review.
type FeedbackResponse struct {
	Comment     string    `bson:"comment,omitempty" json:"comment,omitempty"`
	RespondedAt time.Time `bson:"respondedAt,omitempty" json:"respondedAt,omitempty"`
}
