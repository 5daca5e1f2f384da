package memory

import (
	"sort"
	"sync"

	"workhub/database/repository"
	"workhub/models"
)

// OccupancyRepo is the in-memory OccupancyRepository.
type OccupancyRepo struct {
	mu     sync.RWMutex
	counts map[string]models.Occupancy
}

func NewOccupancyRepo() *OccupancyRepo {
	return &OccupancyRepo{counts: make(map[string]models.Occupancy)}
}

func (r *OccupancyRepo) Get(resourceID string) (*models.Occupancy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.counts[resourceID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &o, nil
}

func (r *OccupancyRepo) Upsert(o *models.Occupancy) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts[o.ResourceID] = *o
	return nil
}

func (r *OccupancyRepo) List() ([]models.Occupancy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Occupancy, 0, len(r.counts))
	for _, o := range r.counts {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ResourceID < out[j].ResourceID })
	return out, nil
}

func (r *OccupancyRepo) Dump() []models.Occupancy {
	out, _ := r.List()
	return out
}

func (r *OccupancyRepo) Load(counts []models.Occupancy) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counts = make(map[string]models.Occupancy, len(counts))
	for _, o := range counts {
		r.counts[o.ResourceID] = o
	}
}
