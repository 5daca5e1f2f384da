// File: workhub/services/occupancy/tracker.go
package occupancy

import (
	"errors"
	"fmt"
	"time"

	"workhub/database/repository"
	"workhub/models"
	"workhub/utils"
)

// Tracker maintains the current headcount per resource.
type Tracker interface {
	Increment(resourceID string) (*models.Occupancy, error)
	Decrement(resourceID string) (*models.Occupancy, error)
	SetCount(resourceID string, count int) (*models.Occupancy, error)
	Get(resourceID string) (*models.Occupancy, error)
	List() ([]models.Occupancy, error)
}

// DefaultTracker implements Tracker on the occupancy repository.
type DefaultTracker struct {
	Repo repository.OccupancyRepository
	Now  func() time.Time
}

func (t *DefaultTracker) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now().UTC()
}

// current returns the stored record or a zero-count one for an unseen
// resource.
func (t *DefaultTracker) current(resourceID string) (*models.Occupancy, error) {
	o, err := t.Repo.Get(resourceID)
	if errors.Is(err, repository.ErrNotFound) {
		return &models.Occupancy{ResourceID: resourceID}, nil
	}
	return o, err
}

func (t *DefaultTracker) Increment(resourceID string) (*models.Occupancy, error) {
	o, err := t.current(resourceID)
	if err != nil {
		return nil, err
	}
	o.CurrentCount++
	o.UpdatedAt = t.now()
	if err := t.Repo.Upsert(o); err != nil {
		return nil, err
	}
	return o, nil
}

// Decrement lowers the count, clamped at zero. Decrementing an empty
// resource is a no-op rather than an error so a double check-out cannot
// drive the count negative.
func (t *DefaultTracker) Decrement(resourceID string) (*models.Occupancy, error) {
	o, err := t.current(resourceID)
	if err != nil {
		return nil, err
	}
	if o.CurrentCount > 0 {
		o.CurrentCount--
	}
	o.UpdatedAt = t.now()
	if err := t.Repo.Upsert(o); err != nil {
		return nil, err
	}
	return o, nil
}

// SetCount is the absolute set used by device telemetry ingestion.
func (t *DefaultTracker) SetCount(resourceID string, count int) (*models.Occupancy, error) {
	if count < 0 {
		return nil, utils.NewInvalidCountError(fmt.Sprintf("count must be non-negative, got %d", count))
	}
	o := &models.Occupancy{
		ResourceID:   resourceID,
		CurrentCount: count,
		UpdatedAt:    t.now(),
	}
	if err := t.Repo.Upsert(o); err != nil {
		return nil, err
	}
	return o, nil
}

func (t *DefaultTracker) Get(resourceID string) (*models.Occupancy, error) {
	return t.current(resourceID)
}

func (t *DefaultTracker) List() ([]models.Occupancy, error) {
	return t.Repo.List()
}

// StatusFor derives the presentation band from headcount vs capacity. Not
// stored state. Over-capacity is a signal for the alert sweep, not a hard
// constraint.
func StatusFor(count, capacity int) string {
	if count == 0 {
		return models.OccupancyAvailable
	}
	if capacity <= 0 {
		return models.OccupancyCritical
	}
	pct := float64(count) / float64(capacity) * 100
	switch {
	case pct <= 75:
		return models.OccupancyOccupied
	case pct <= 100:
		return models.OccupancyWarning
	default:
		return models.OccupancyCritical
	}
}
