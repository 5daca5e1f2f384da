// File: workhub/database/memory/alerts.go
package memory

import (
	"sort"
	"sync"

	"workhub/database/repository"
	"workhub/models"
)

// AlertRepo is the in-memory AlertRepository. The open index backs the
// sweep's de-duplication lookup.
type AlertRepo struct {
	mu     sync.RWMutex
	alerts map[string]models.Alert
	open   map[string]string // target key -> alert id, unresolved only
}

func NewAlertRepo() *AlertRepo {
	return &AlertRepo{
		alerts: make(map[string]models.Alert),
		open:   make(map[string]string),
	}
}

func (r *AlertRepo) Create(a *models.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.alerts[a.ID]; ok {
		return repository.ErrDuplicate
	}
	r.alerts[a.ID] = *a
	if !a.Resolved {
		r.open[a.TargetKey()] = a.ID
	}
	return nil
}

func (r *AlertRepo) GetByID(id string) (*models.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.alerts[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &a, nil
}

func (r *AlertRepo) Update(a *models.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.alerts[a.ID]; !ok {
		return repository.ErrNotFound
	}
	r.alerts[a.ID] = *a
	key := a.TargetKey()
	if a.Resolved {
		if r.open[key] == a.ID {
			delete(r.open, key)
		}
	} else {
		r.open[key] = a.ID
	}
	return nil
}

func (r *AlertRepo) List() ([]models.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Alert, 0, len(r.alerts))
	for _, a := range r.alerts {
		out = append(out, a)
	}
	// Newest first.
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *AlertRepo) FindOpen(targetKey string) (*models.Alert, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.open[targetKey]
	if !ok {
		return nil, repository.ErrNotFound
	}
	a := r.alerts[id]
	return &a, nil
}

func (r *AlertRepo) Dump() []models.Alert {
	out, _ := r.List()
	return out
}

func (r *AlertRepo) Load(alerts []models.Alert) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = make(map[string]models.Alert, len(alerts))
	r.open = make(map[string]string)
	for _, a := range alerts {
		r.alerts[a.ID] = a
		if !a.Resolved {
			r.open[a.TargetKey()] = a.ID
		}
	}
}
