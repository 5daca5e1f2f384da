// File: workhub/services/booking/service.go
package booking

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"workhub/database/repository"
	"workhub/models"
	"workhub/services/catalog"
	"workhub/services/occupancy"
	"workhub/utils"
)

// DefaultBookingService implements Service.
type DefaultBookingService struct {
	Repo      repository.BookingRepository
	Users     repository.UserRepository
	Catalog   catalog.Service
	Occupancy occupancy.Tracker
	Locker    Locker

	// Grace is the no-show grace period after a booking's start.
	Grace time.Duration
	Now   func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

// Create validates the resource and the time window, then inserts the
// booking under the per-resource lock so the overlap check and the insert
// are atomic.
func (s *DefaultBookingService) Create(input CreateInput) (*models.Booking, error) {
	if !input.StartTime.Before(input.EndTime) {
		return nil, utils.NewValidationError("startTime must be before endTime")
	}
	if _, err := s.Users.GetByID(input.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, utils.NewNotFoundError(fmt.Sprintf("user %s not found", input.UserID))
		}
		return nil, err
	}
	info, err := s.Catalog.ResolveResource(input.ResourceType, input.ResourceID)
	if err != nil {
		return nil, err
	}
	if !info.Active {
		return nil, utils.NewValidationError(fmt.Sprintf("%s %s is not active", info.Type, info.ID))
	}

	booking := &models.Booking{
		ID:           uuid.New().String(),
		UserID:       input.UserID,
		ResourceType: input.ResourceType,
		ResourceID:   input.ResourceID,
		StartTime:    input.StartTime,
		EndTime:      input.EndTime,
		Status:       models.BookingPending,
		Purpose:      input.Purpose,
		CreatedAt:    s.now(),
	}

	err = s.Locker.WithResourceLock(booking.ResourceKey(), func() error {
		if err := s.checkOverlap(booking); err != nil {
			return err
		}
		return s.Repo.Create(booking)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// checkOverlap enforces the no-overlap invariant against bookings still
// holding the resource. Must run under the resource lock.
func (s *DefaultBookingService) checkOverlap(candidate *models.Booking) error {
	blocking, err := s.Repo.ListBlocking(candidate.ResourceType, candidate.ResourceID)
	if err != nil {
		return err
	}
	for _, b := range blocking {
		if b.ID == candidate.ID {
			continue
		}
		if b.Overlaps(candidate.StartTime, candidate.EndTime) {
			return utils.NewConflictError(fmt.Sprintf("overlaps booking %s", b.ID))
		}
	}
	return nil
}

// Update applies a partial mutation. Status changes follow the state
// machine; window changes re-run the overlap check under the resource lock.
func (s *DefaultBookingService) Update(id string, input UpdateInput) (*models.Booking, error) {
	booking, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	// Terminal bookings are immutable; window and purpose edits would
	// otherwise slip past the transition check.
	if booking.Terminal() {
		return nil, utils.NewValidationError(
			fmt.Sprintf("cannot modify a %s booking", booking.Status))
	}

	if input.Status != nil && *input.Status != booking.Status {
		if !allowedTransition(booking.Status, *input.Status) {
			return nil, utils.NewValidationError(
				fmt.Sprintf("cannot transition booking from %s to %s", booking.Status, *input.Status))
		}
	}

	updated := *booking
	if input.StartTime != nil {
		updated.StartTime = *input.StartTime
	}
	if input.EndTime != nil {
		updated.EndTime = *input.EndTime
	}
	if input.Purpose != nil {
		updated.Purpose = *input.Purpose
	}
	if input.Status != nil {
		updated.Status = *input.Status
	}
	if !updated.StartTime.Before(updated.EndTime) {
		return nil, utils.NewValidationError("startTime must be before endTime")
	}

	err = s.Locker.WithResourceLock(updated.ResourceKey(), func() error {
		if updated.Blocking() {
			if err := s.checkOverlap(&updated); err != nil {
				return err
			}
		}
		return s.Repo.Update(&updated)
	})
	if err != nil {
		return nil, err
	}

	// A checked-in booking leaving the active state releases its occupancy.
	if booking.CheckedIn && booking.Status == models.BookingActive && updated.Terminal() {
		if _, err := s.Occupancy.Decrement(updated.ResourceID); err != nil {
			return nil, err
		}
	}
	return &updated, nil
}

func (s *DefaultBookingService) Get(id string) (*models.Booking, error) {
	booking, err := s.Repo.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.NewNotFoundError(fmt.Sprintf("booking %s not found", id))
	}
	return booking, err
}

func (s *DefaultBookingService) ListAll() ([]models.Booking, error) {
	return s.Repo.List()
}

func (s *DefaultBookingService) ListByUser(userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(userID)
}

func (s *DefaultBookingService) ListActive() ([]models.Booking, error) {
	active, err := s.Repo.ListByStatus(models.BookingActive)
	if err != nil {
		return nil, err
	}
	now := s.now()
	out := make([]models.Booking, 0, len(active))
	for _, b := range active {
		if b.EndTime.After(now) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *DefaultBookingService) ListForDay(day time.Time) ([]models.Booking, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	all, err := s.Repo.List()
	if err != nil {
		return nil, err
	}
	var out []models.Booking
	for _, b := range all {
		if b.StartTime.Before(dayEnd) && dayStart.Before(b.EndTime) {
			out = append(out, b)
		}
	}
	return out, nil
}

// allowedTransition encodes the booking state machine for explicit updates.
// no_show is never set by callers, only by the expiry sweep.
func allowedTransition(from, to string) bool {
	switch from {
	case models.BookingPending:
		return to == models.BookingActive || to == models.BookingCancelled
	case models.BookingActive:
		return to == models.BookingCompleted || to == models.BookingCancelled
	}
	return false
}
