package booking

import (
	"time"

	"workhub/models"
)

// Service owns the booking lifecycle. Bookings are created and mutated only
// here; cross-component effects (occupancy on check-in) happen through
// explicit calls.
type Service interface {
	Create(input CreateInput) (*models.Booking, error)
	Update(id string, input UpdateInput) (*models.Booking, error)
	CheckIn(badgeID, resourceType, resourceID string) (*models.Booking, error)
	Get(id string) (*models.Booking, error)

	ListAll() ([]models.Booking, error)
	ListByUser(userID string) ([]models.Booking, error)
	// ListActive returns bookings with status active whose end is still in
	// the future.
	ListActive() ([]models.Booking, error)
	ListForDay(day time.Time) ([]models.Booking, error)

	// Advance applies the time-driven transitions: pending bookings whose
	// start has been reached (within the no-show grace) become active, and
	// active bookings past their end complete.
	Advance(now time.Time) error
	// ExpireNoShows marks bookings that were never checked in past
	// start+grace as no_show and returns them so the alert sweep can raise
	// the matching alerts.
	ExpireNoShows(now time.Time) ([]models.Booking, error)
}

// CreateInput is the payload for booking creation.
type CreateInput struct {
	UserID       string    `json:"userId" binding:"required"`
	ResourceType string    `json:"resourceType" binding:"required"`
	ResourceID   string    `json:"resourceId" binding:"required"`
	StartTime    time.Time `json:"startTime" binding:"required"`
	EndTime      time.Time `json:"endTime" binding:"required"`
	Purpose      string    `json:"purpose"`
}

// UpdateInput carries the mutable booking fields. Nil means "leave as is".
type UpdateInput struct {
	Status    *string    `json:"status"`
	StartTime *time.Time `json:"startTime"`
	EndTime   *time.Time `json:"endTime"`
	Purpose   *string    `json:"purpose"`
}

// Locker serializes check-then-mutate sequences per resource key.
type Locker interface {
	WithResourceLock(key string, fn func() error) error
}
