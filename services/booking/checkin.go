// File: workhub/services/booking/checkin.go
package booking

import (
	"errors"
	"fmt"

	"workhub/database/repository"
	"workhub/models"
	"workhub/utils"
)

// CheckIn resolves a badge scan: badge -> user -> that user's booking for
// the resource whose window contains now. The booking becomes active,
// records the check-in, and the resource's occupancy is incremented.
func (s *DefaultBookingService) CheckIn(badgeID, resourceType, resourceID string) (*models.Booking, error) {
	user, err := s.Users.GetByBadge(badgeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, utils.NewUnknownBadgeError(fmt.Sprintf("badge %s is not registered", badgeID))
		}
		return nil, err
	}

	now := s.now()
	var booking *models.Booking
	err = s.Locker.WithResourceLock(models.ResourceKey(resourceType, resourceID), func() error {
		blocking, err := s.Repo.ListBlocking(resourceType, resourceID)
		if err != nil {
			return err
		}
		for i := range blocking {
			b := &blocking[i]
			if b.UserID != user.ID || b.CheckedIn {
				continue
			}
			if b.StartTime.After(now) || !b.EndTime.After(now) {
				continue
			}
			booking = b
			break
		}
		if booking == nil {
			return utils.NewNoActiveBookingError(
				fmt.Sprintf("no booking for user %s on %s %s covering the current time", user.ID, resourceType, resourceID))
		}
		booking.Status = models.BookingActive
		booking.CheckedIn = true
		booking.CheckedInAt = &now
		return s.Repo.Update(booking)
	})
	if err != nil {
		return nil, err
	}

	if _, err := s.Occupancy.Increment(resourceID); err != nil {
		return nil, err
	}
	return booking, nil
}
