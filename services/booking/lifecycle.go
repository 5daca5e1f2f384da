// File: workhub/services/booking/lifecycle.go
package booking

import (
	"errors"
	"time"

	"workhub/database/repository"
	"workhub/models"
)

// Advance applies the time-driven transitions. The status listings are only
// a candidate scan: each booking is re-fetched and re-checked under its
// resource lock before being written, so a check-in or update landing
// between the scan and the write is never clobbered.
func (s *DefaultBookingService) Advance(now time.Time) error {
	pending, err := s.Repo.ListByStatus(models.BookingPending)
	if err != nil {
		return err
	}
	for i := range pending {
		if err := s.activateDue(&pending[i], now); err != nil {
			return err
		}
	}

	active, err := s.Repo.ListByStatus(models.BookingActive)
	if err != nil {
		return err
	}
	for i := range active {
		if err := s.completeEnded(&active[i], now); err != nil {
			return err
		}
	}
	return nil
}

// activateDue moves a pending booking to active once its start has been
// reached, while still within the no-show grace. Past-grace pending
// bookings are left for the no-show expiry.
func (s *DefaultBookingService) activateDue(candidate *models.Booking, now time.Time) error {
	return s.Locker.WithResourceLock(candidate.ResourceKey(), func() error {
		b, err := s.Repo.GetByID(candidate.ID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if b.Status != models.BookingPending {
			return nil
		}
		if b.StartTime.After(now) || !now.Before(b.StartTime.Add(s.Grace)) || !b.EndTime.After(now) {
			return nil
		}
		b.Status = models.BookingActive
		return s.Repo.Update(b)
	})
}

// completeEnded moves an active booking past its end to completed and
// releases the headcount a check-in added.
func (s *DefaultBookingService) completeEnded(candidate *models.Booking, now time.Time) error {
	var releaseOccupancy bool
	err := s.Locker.WithResourceLock(candidate.ResourceKey(), func() error {
		b, err := s.Repo.GetByID(candidate.ID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if b.Status != models.BookingActive || b.EndTime.After(now) {
			return nil
		}
		b.Status = models.BookingCompleted
		if err := s.Repo.Update(b); err != nil {
			return err
		}
		releaseOccupancy = b.CheckedIn
		return nil
	})
	if err != nil {
		return err
	}
	if releaseOccupancy {
		if _, err := s.Occupancy.Decrement(candidate.ResourceID); err != nil {
			return err
		}
	}
	return nil
}

// ExpireNoShows terminates bookings that were never checked in once
// start+grace has passed. Covers both still-pending bookings and ones the
// sweep auto-activated. Each expiry re-reads the booking under its resource
// lock, so a check-in racing the sweep wins and the booking stays live.
// Returns the expired bookings so the alert engine can raise no_show alerts
// for them.
func (s *DefaultBookingService) ExpireNoShows(now time.Time) ([]models.Booking, error) {
	all, err := s.Repo.List()
	if err != nil {
		return nil, err
	}
	var expired []models.Booking
	for i := range all {
		candidate := all[i]
		var out *models.Booking
		err := s.Locker.WithResourceLock(candidate.ResourceKey(), func() error {
			b, err := s.Repo.GetByID(candidate.ID)
			if errors.Is(err, repository.ErrNotFound) {
				return nil
			}
			if err != nil {
				return err
			}
			if b.Terminal() || b.CheckedIn {
				return nil
			}
			if now.Before(b.StartTime.Add(s.Grace)) {
				return nil
			}
			b.Status = models.BookingNoShow
			if err := s.Repo.Update(b); err != nil {
				return err
			}
			out = b
			return nil
		})
		if err != nil {
			return nil, err
		}
		if out != nil {
			expired = append(expired, *out)
		}
	}
	return expired, nil
}
