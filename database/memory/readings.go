package memory

import (
	"sort"
	"sync"
	"time"

	"workhub/database/repository"
	"workhub/models"
)

// ReadingRepo keeps the latest telemetry sample per device.
type ReadingRepo struct {
	mu       sync.RWMutex
	readings map[string]models.Reading
}

func NewReadingRepo() *ReadingRepo {
	return &ReadingRepo{readings: make(map[string]models.Reading)}
}

func (r *ReadingRepo) Upsert(reading *models.Reading) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.readings[reading.DeviceID] = *reading
	return nil
}

func (r *ReadingRepo) GetByDevice(deviceID string) (*models.Reading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reading, ok := r.readings[deviceID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &reading, nil
}

func (r *ReadingRepo) List() ([]models.Reading, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Reading, 0, len(r.readings))
	for _, reading := range r.readings {
		out = append(out, reading)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DeviceID < out[j].DeviceID })
	return out, nil
}

// PruneBefore drops samples older than cutoff so stale sensors do not skew
// the dashboard CO2 average. Returns the number of samples removed.
func (r *ReadingRepo) PruneBefore(cutoff time.Time) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	removed := 0
	for id, reading := range r.readings {
		if reading.RecordedAt.Before(cutoff) {
			delete(r.readings, id)
			removed++
		}
	}
	return removed
}

func (r *ReadingRepo) Dump() []models.Reading {
	out, _ := r.List()
	return out
}

func (r *ReadingRepo) Load(readings []models.Reading) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.readings = make(map[string]models.Reading, len(readings))
	for _, reading := range readings {
		r.readings[reading.DeviceID] = reading
	}
}
