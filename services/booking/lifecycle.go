package booking

import (
	"fmt"
	"time"

	"careconnect/models"
	"careconnect/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// canAct reports whether the actor may operate on the booking: admins always,
// otherwise only the booking owner.
func canAct(actor models.Principal, b *models.Booking) bool {
	return actor.IsAdmin() || actor.ID == b.UserID
}

// CreateBooking validates the caretaker's state, snapshots the charge and
// persists the booking, then marks the caretaker busy. The two writes are
// separate documents: the booking insert always happens first, and a failed
// availability flip leaves a pending booking behind.
func (s *DefaultBookingService) CreateBooking(actor models.Principal, input models.BookingInput) (*models.Booking, error) {
	if input.ServiceType != models.SpecializationChild && input.ServiceType != models.SpecializationElderly {
		return nil, utils.InvalidInputErr("Service type must be child or elderly")
	}
	if input.Duration <= 0 {
		return nil, utils.InvalidInputErr("Duration must be positive")
	}
	if !input.EndDate.After(input.StartDate) {
		return nil, utils.InvalidInputErr("End date must be after start date")
	}

	caretaker, err := s.CaretakerRepo.GetByID(input.CaretakerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch caretaker: %w", err)
	}
	if caretaker == nil {
		return nil, utils.NotFoundErr("Caretaker not found")
	}
	if !caretaker.IsVerified {
		return nil, utils.InvalidStateErr("Caretaker is not verified")
	}
	if caretaker.Availability != models.AvailabilityAvailable {
		return nil, utils.InvalidStateErr("Caretaker is not available")
	}

	// Amount is snapshotted here and never recomputed, even if the caretaker's
	// rate changes later.
	totalAmount := input.Duration * caretaker.HourlyRate

	booking := &models.Booking{
		ID:                  uuid.New().String(),
		UserID:              actor.ID,
		CaretakerID:         input.CaretakerID,
		ServiceType:         input.ServiceType,
		StartDate:           input.StartDate,
		EndDate:             input.EndDate,
		Duration:            input.Duration,
		TotalAmount:         totalAmount,
		Status:              models.BookingPending,
		PaymentStatus:       models.PaymentStatusPending,
		SpecialRequirements: input.SpecialRequirements,
		PatientDetails:      input.PatientDetails,
		Address:             input.Address,
		AssignedBy:          actor.ID,
	}

	if err := s.Repo.Create(booking); err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	caretaker.Availability = models.AvailabilityBusy
	if err := s.CaretakerRepo.Update(caretaker); err != nil {
		utils.GetLogger().Error("booking created but availability flip failed",
			zap.String("bookingId", booking.ID),
			zap.String("caretakerId", caretaker.ID),
			zap.Error(err))
		return nil, fmt.Errorf("failed to update caretaker availability: %w", err)
	}

	return booking, nil
}

// UpdateBookingStatus moves a booking to any enumerated status. Edges are not
// validated beyond enum membership; reaching completed stamps the completion
// time and releases the caretaker.
func (s *DefaultBookingService) UpdateBookingStatus(actor models.Principal, bookingID, status string) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, utils.InvalidInputErr("Invalid status")
	}

	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking == nil {
		return nil, utils.NotFoundErr("Booking not found")
	}
	if !canAct(actor, booking) {
		return nil, utils.ForbiddenErr("Not authorized to update this booking")
	}

	booking.Status = status

	if status == models.BookingCompleted {
		now := time.Now()
		booking.CompletedAt = &now

		caretaker, err := s.CaretakerRepo.GetByID(booking.CaretakerID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch caretaker: %w", err)
		}
		if caretaker != nil {
			caretaker.Availability = models.AvailabilityAvailable
			if err := s.CaretakerRepo.Update(caretaker); err != nil {
				return nil, fmt.Errorf("failed to release caretaker: %w", err)
			}
		}
	}

	if err := s.Repo.Update(booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return booking, nil
}

// CancelBooking cancels a non-terminal booking, recording who cancelled and
// why, and releases the caretaker if it was busy.
func (s *DefaultBookingService) CancelBooking(actor models.Principal, bookingID, reason string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking == nil {
		return nil, utils.NotFoundErr("Booking not found")
	}
	if !canAct(actor, booking) {
		return nil, utils.ForbiddenErr("Not authorized to cancel this booking")
	}
	if booking.Terminal() {
		return nil, utils.InvalidStateErr(fmt.Sprintf("Cannot cancel a %s booking", booking.Status))
	}

	now := time.Now()
	booking.Status = models.BookingCancelled
	booking.CancelledBy = actor.ID
	booking.CancellationReason = reason
	booking.CancelledAt = &now

	if err := s.Repo.Update(booking); err != nil {
		return nil, fmt.Errorf("failed to cancel booking: %w", err)
	}

	caretaker, err := s.CaretakerRepo.GetByID(booking.CaretakerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch caretaker: %w", err)
	}
	if caretaker != nil && caretaker.Availability == models.AvailabilityBusy {
		caretaker.Availability = models.AvailabilityAvailable
		if err := s.CaretakerRepo.Update(caretaker); err != nil {
			return nil, fmt.Errorf("failed to release caretaker: %w", err)
		}
	}

	return booking, nil
}

// AssignCaretaker reassigns a booking to a verified caretaker, releasing the
// previously assigned one and confirming the booking.
func (s *DefaultBookingService) AssignCaretaker(actor models.Principal, bookingID, caretakerID string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booking: %w", err)
	}
	if booking == nil {
		return nil, utils.NotFoundErr("Booking not found")
	}

	caretaker, err := s.CaretakerRepo.GetByID(caretakerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch caretaker: %w", err)
	}
	if caretaker == nil {
		return nil, utils.NotFoundErr("Caretaker not found")
	}
	if !caretaker.IsVerified {
		return nil, utils.InvalidStateErr("Cannot assign unverified caretaker")
	}

	// Release the previously assigned caretaker before claiming the new one.
	if booking.CaretakerID != "" && booking.CaretakerID != caretakerID {
		old, err := s.CaretakerRepo.GetByID(booking.CaretakerID)
		if err != nil {
			return nil, fmt.Errorf("failed to fetch previous caretaker: %w", err)
		}
		if old != nil {
			old.Availability = models.AvailabilityAvailable
			if err := s.CaretakerRepo.Update(old); err != nil {
				return nil, fmt.Errorf("failed to release previous caretaker: %w", err)
			}
		}
	}

	booking.CaretakerID = caretakerID
	booking.AssignedBy = actor.ID
	booking.Status = models.BookingConfirmed

	if err := s.Repo.Update(booking); err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	caretaker.Availability = models.AvailabilityBusy
	if err := s.CaretakerRepo.Update(caretaker); err != nil {
		return nil, fmt.Errorf("failed to update caretaker availability: %w", err)
	}

	return booking, nil
}
