// File: workhub/database/memory/bookings.go
package memory

import (
	"sort"
	"sync"

	"workhub/database/repository"
	"workhub/models"
)

// BookingRepo is the in-memory BookingRepository. A secondary index by
// resource key keeps the overlap check from scanning every booking.
type BookingRepo struct {
	mu         sync.RWMutex
	bookings   map[string]models.Booking
	byResource map[string][]string // resource key -> booking ids
}

func NewBookingRepo() *BookingRepo {
	return &BookingRepo{
		bookings:   make(map[string]models.Booking),
		byResource: make(map[string][]string),
	}
}

func (r *BookingRepo) Create(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.ID]; ok {
		return repository.ErrDuplicate
	}
	r.bookings[b.ID] = *b
	key := b.ResourceKey()
	r.byResource[key] = append(r.byResource[key], b.ID)
	return nil
}

func (r *BookingRepo) GetByID(id string) (*models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	b, ok := r.bookings[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &b, nil
}

func (r *BookingRepo) Update(b *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.bookings[b.ID]; !ok {
		return repository.ErrNotFound
	}
	r.bookings[b.ID] = *b
	return nil
}

func (r *BookingRepo) List() ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		out = append(out, b)
	}
	sortByStart(out)
	return out, nil
}

func (r *BookingRepo) ListByUser(userID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	sortByStart(out)
	return out, nil
}

func (r *BookingRepo) ListBlocking(resourceType, resourceID string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Booking
	for _, id := range r.byResource[models.ResourceKey(resourceType, resourceID)] {
		b := r.bookings[id]
		if b.Blocking() {
			out = append(out, b)
		}
	}
	sortByStart(out)
	return out, nil
}

func (r *BookingRepo) ListByStatus(status string) ([]models.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status == status {
			out = append(out, b)
		}
	}
	sortByStart(out)
	return out, nil
}

func (r *BookingRepo) Dump() []models.Booking {
	out, _ := r.List()
	return out
}

func (r *BookingRepo) Load(bookings []models.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings = make(map[string]models.Booking, len(bookings))
	r.byResource = make(map[string][]string)
	for _, b := range bookings {
		r.bookings[b.ID] = b
		key := b.ResourceKey()
		r.byResource[key] = append(r.byResource[key], b.ID)
	}
}

func sortByStart(bs []models.Booking) {
	sort.Slice(bs, func(i, j int) bool {
		if bs[i].StartTime.Equal(bs[j].StartTime) {
			return bs[i].ID < bs[j].ID
		}
		return bs[i].StartTime.Before(bs[j].StartTime)
	})
}
