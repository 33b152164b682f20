package models

import "time"

// Booking statuses.
const (
	BookingPending    = "pending"
	BookingConfirmed  = "confirmed"
	BookingInProgress = "in-progress"
	BookingCompleted  = "completed"
	BookingCancelled  = "cancelled"
)

// Booking payment statuses.
const (
	PaymentStatusPending  = "pending"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
)

// ValidBookingStatus reports whether s is one of the booking statuses.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// Booking ties a user to a caretaker for a service window. TotalAmount is
// snapshotted from the caretaker's hourly rate at creation and never
// recomputed.
type Booking struct {
	ID                  string         `bson:"id" json:"id"`
	UserID              string         `bson:"userId" json:"userId"`
	CaretakerID         string         `bson:"caretakerId" json:"caretakerId"`
	ServiceType         string         `bson:"serviceType" json:"serviceType"` // child | elderly
	StartDate           time.Time      `bson:"startDate" json:"startDate"`
	EndDate             time.Time      `bson:"endDate" json:"endDate"`
	Duration            float64        `bson:"duration" json:"duration"` // hours
	TotalAmount         float64        `bson:"totalAmount" json:"totalAmount"`
	Status              string         `bson:"status" json:"status"`
	PaymentStatus       string         `bson:"paymentStatus" json:"paymentStatus"`
	SpecialRequirements string         `bson:"specialRequirements,omitempty" json:"specialRequirements,omitempty"`
	PatientDetails      PatientDetails `bson:"patientDetails,omitempty" json:"patientDetails,omitempty"`
	Address             Address        `bson:"address,omitempty" json:"address,omitempty"`
	AssignedBy          string         `bson:"assignedBy,omitempty" json:"assignedBy,omitempty"`
	CancelledBy         string         `bson:"cancelledBy,omitempty" json:"cancelledBy,omitempty"`
	CancellationReason  string         `bson:"cancellationReason,omitempty" json:"cancellationReason,omitempty"`
	CancelledAt         *time.Time     `bson:"cancelledAt,omitempty" json:"cancelledAt,omitempty"`
	CompletedAt         *time.Time     `bson:"completedAt,omitempty" json:"completedAt,omitempty"`
	CreatedAt           time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt           time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// PatientDetails describes the person receiving care.
type PatientDetails struct {
	Name              string `bson:"name,omitempty" json:"name,omitempty"`
	Age               int    `bson:"age,omitempty" json:"age,omitempty"`
	Gender            string `bson:"gender,omitempty" json:"gender,omitempty"`
	MedicalConditions string `bson:"medicalConditions,omitempty" json:"medicalConditions,omitempty"`
}

// Terminal reports whether the booking has reached a terminal status.
func (b *Booking) Terminal() bool {
	return b.Status == BookingCompleted || b.Status == BookingCancelled
}

// BookingInput is the validated payload for creating a booking.
type BookingInput struct {
	CaretakerID         string         `json:"caretakerId" binding:"required"`
	ServiceType         string         `json:"serviceType" binding:"required"`
	StartDate           time.Time      `json:"startDate" binding:"required"`
	EndDate             time.Time      `json:"endDate" binding:"required"`
	Duration            float64        `json:"duration" binding:"required,gt=0"`
	SpecialRequirements string         `json:"specialRequirements,omitempty"`
	PatientDetails      PatientDetails `json:"patientDetails,omitempty"`
	Address             Address        `json:"address,omitempty"`
}
