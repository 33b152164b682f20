package caretaker

import (
	"fmt"
	"time"

	caretakerRepo "careconnect/database/repository/caretaker"
	"careconnect/models"
	"careconnect/utils"

	"github.com/google/uuid"
)

// CreateCaretaker registers a caretaker profile. Admin-created; starts
// unverified and available.
func (s *DefaultCaretakerService) CreateCaretaker(input *models.Caretaker) (*models.Caretaker, error) {
	if input.Name == "" || input.Email == "" || input.HourlyRate <= 0 {
		return nil, utils.InvalidInputErr("Name, email and a positive hourly rate are required")
	}
	if input.Specialization != models.SpecializationChild &&
		input.Specialization != models.SpecializationElderly &&
		input.Specialization != models.SpecializationBoth {
		return nil, utils.InvalidInputErr("Specialization must be child, elderly or both")
	}

	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check for existing caretaker: %w", err)
	}
	if existing != nil {
		return nil, utils.AlreadyExistsErr("Caretaker with this email already exists")
	}

	input.ID = uuid.New().String()
	if input.Availability == "" {
		input.Availability = models.AvailabilityAvailable
	}
	input.IsVerified = false
	input.IsActive = true
	input.Rating = 0
	input.TotalReviews = 0

	if err := s.Repo.Create(input); err != nil {
		return nil, fmt.Errorf("failed to create caretaker: %w", err)
	}
	return input, nil
}

// UpdateCaretaker applies an in-place mutation to a caretaker profile.
// The apply callback edits only the fields present in the request.
func (s *DefaultCaretakerService) UpdateCaretaker(id string, apply func(*models.Caretaker)) (*models.Caretaker, error) {
	caretaker, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch caretaker: %w", err)
	}
	if caretaker == nil {
		return nil, utils.NotFoundErr("Caretaker not found")
	}

	apply(caretaker)

	if err := s.Repo.Update(caretaker); err != nil {
		return nil, fmt.Errorf("failed to update caretaker: %w", err)
	}
	return caretaker, nil
}

// SetAvailability sets the availability flag directly. Admin surface; the
// booking lifecycle flips the same flag as a side effect of its operations.
func (s *DefaultCaretakerService) SetAvailability(id, availability string) (*models.Caretaker, error) {
	if !models.ValidAvailability(availability) {
		return nil, utils.InvalidInputErr("Invalid availability status")
	}
	return s.UpdateCaretaker(id, func(c *models.Caretaker) {
		c.Availability = availability
	})
}

// DeactivateCaretaker soft deletes a caretaker profile.
func (s *DefaultCaretakerService) DeactivateCaretaker(id string) error {
	_, err := s.UpdateCaretaker(id, func(c *models.Caretaker) {
		c.IsActive = false
	})
	return err
}

// VerifyCaretaker marks a caretaker verified, stamping the verifying admin
// and time. Already-verified caretakers are rejected.
func (s *DefaultCaretakerService) VerifyCaretaker(adminID, id string) (*models.Caretaker, error) {
	caretaker, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch caretaker: %w", err)
	}
	if caretaker == nil {
		return nil, utils.NotFoundErr("Caretaker not found")
	}
	if caretaker.IsVerified {
		return nil, utils.InvalidStateErr("Caretaker is already verified")
	}

	now := time.Now()
	caretaker.IsVerified = true
	caretaker.VerifiedBy = adminID
	caretaker.VerifiedAt = &now

	if err := s.Repo.Update(caretaker); err != nil {
		return nil, fmt.Errorf("failed to update caretaker: %w", err)
	}
	return caretaker, nil
}

// UnverifyCaretaker clears the verification mark. Existing bookings are left
// untouched.
func (s *DefaultCaretakerService) UnverifyCaretaker(id string) (*models.Caretaker, error) {
	return s.UpdateCaretaker(id, func(c *models.Caretaker) {
		c.IsVerified = false
		c.VerifiedBy = ""
		c.VerifiedAt = nil
	})
}

// AdminList lists caretakers for the admin console, including unverified and
// inactive profiles.
func (s *DefaultCaretakerService) AdminList(isVerified *bool, search string, page, limit int64) ([]models.Caretaker, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	filter := caretakerRepo.CaretakerFilter{Verified: isVerified, Search: search}
	skip := (page - 1) * limit

	caretakers, err := s.Repo.List(filter, skip, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list caretakers: %w", err)
	}
	total, err := s.Repo.Count(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count caretakers: %w", err)
	}
	return caretakers, total, nil
}
