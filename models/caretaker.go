package models

import "time"

// Caretaker availability states.
const (
	AvailabilityAvailable   = "available"
	AvailabilityBusy        = "busy"
	AvailabilityUnavailable = "unavailable"
)

// Caretaker specializations.
const (
	SpecializationChild   = "child"
	SpecializationElderly = "elderly"
	SpecializationBoth    = "both"
)

// ValidAvailability reports whether s is one of the availability states.
func ValidAvailability(s string) bool {
	switch s {
	case AvailabilityAvailable, AvailabilityBusy, AvailabilityUnavailable:
		return true
	}
	return false
}

// Caretaker is a service provider profile managed by admins.
// Rating and TotalReviews are derived from the feedback set and are only
// written by the rating aggregation path.
type Caretaker struct {
	ID             string          `bson:"id" json:"id"`
	Name           string          `bson:"name" json:"name"`
	Email          string          `bson:"email" json:"email"`
	Phone          string          `bson:"phone" json:"phone"`
	Age            int             `bson:"age" json:"age"`
	Gender         string          `bson:"gender,omitempty" json:"gender,omitempty"`
	Address        Address         `bson:"address,omitempty" json:"address,omitempty"`
	Specialization string          `bson:"specialization" json:"specialization"` // child | elderly | both
	Experience     int             `bson:"experience" json:"experience"`         // years
	Qualifications string          `bson:"qualifications,omitempty" json:"qualifications,omitempty"`
	Certifications []Certification `bson:"certifications,omitempty" json:"certifications,omitempty"`
	Languages      []string        `bson:"languages,omitempty" json:"languages,omitempty"`
	Availability   string          `bson:"availability" json:"availability"` // available | busy | unavailable
	HourlyRate     float64         `bson:"hourlyRate" json:"hourlyRate"`
	Rating         float64         `bson:"rating" json:"rating"`
	TotalReviews   int             `bson:"totalReviews" json:"totalReviews"`
	ProfileImage   string          `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	Bio            string          `bson:"bio,omitempty" json:"bio,omitempty"`
	IsVerified     bool            `bson:"isVerified" json:"isVerified"`
	VerifiedBy     string          `bson:"verifiedBy,omitempty" json:"verifiedBy,omitempty"`
	VerifiedAt     *time.Time      `bson:"verifiedAt,omitempty" json:"verifiedAt,omitempty"`
	IsActive       bool            `bson:"isActive" json:"isActive"`
	CreatedAt      time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time       `bson:"updatedAt" json:"updatedAt"`
}

// Certification is a named credential on a caretaker profile.
type Certification struct {
	Name     string `bson:"name,omitempty" json:"name,omitempty"`
	IssuedBy string `bson:"issuedBy,omitempty" json:"issuedBy,omitempty"`
	Year     int    `bson:"year,omitempty" json:"year,omitempty"`
}
