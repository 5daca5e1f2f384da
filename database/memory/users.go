package memory

import (
	"sync"

	"workhub/database/repository"
	"workhub/models"
)

// UserRepo is the in-memory UserRepository. Badge ids are enforced unique
// at insert time.
type UserRepo struct {
	mu      sync.RWMutex
	byID    map[string]models.User
	byBadge map[string]string // badgeId -> userId
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		byID:    make(map[string]models.User),
		byBadge: make(map[string]string),
	}
}

func (r *UserRepo) Create(u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[u.ID]; ok {
		return repository.ErrDuplicate
	}
	if _, ok := r.byBadge[u.BadgeID]; ok {
		return repository.ErrDuplicate
	}
	r.byID[u.ID] = *u
	r.byBadge[u.BadgeID] = u.ID
	return nil
}

func (r *UserRepo) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &u, nil
}

func (r *UserRepo) GetByBadge(badgeID string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.byBadge[badgeID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u := r.byID[id]
	return &u, nil
}

func (r *UserRepo) List() ([]models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.User, 0, len(r.byID))
	for _, u := range r.byID {
		out = append(out, u)
	}
	return out, nil
}

// Dump and Load are the snapshot hooks.

func (r *UserRepo) Dump() []models.User {
	out, _ := r.List()
	return out
}

func (r *UserRepo) Load(users []models.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID = make(map[string]models.User, len(users))
	r.byBadge = make(map[string]string, len(users))
	for _, u := range users {
		r.byID[u.ID] = u
		r.byBadge[u.BadgeID] = u.ID
	}
}
