// File: workhub/database/memory/catalog.go
package memory

import (
	"sync"

	"workhub/database/repository"
	"workhub/models"
)

// RoomRepo is the in-memory RoomRepository.
type RoomRepo struct {
	mu    sync.RWMutex
	rooms map[string]models.Room
}

func NewRoomRepo() *RoomRepo {
	return &RoomRepo{rooms: make(map[string]models.Room)}
}

func (r *RoomRepo) Create(room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[room.ID]; ok {
		return repository.ErrDuplicate
	}
	r.rooms[room.ID] = *room
	return nil
}

func (r *RoomRepo) GetByID(id string) (*models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	room, ok := r.rooms[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &room, nil
}

func (r *RoomRepo) Update(room *models.Room) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rooms[room.ID]; !ok {
		return repository.ErrNotFound
	}
	r.rooms[room.ID] = *room
	return nil
}

func (r *RoomRepo) List() ([]models.Room, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Room, 0, len(r.rooms))
	for _, room := range r.rooms {
		out = append(out, room)
	}
	return out, nil
}

func (r *RoomRepo) Dump() []models.Room {
	out, _ := r.List()
	return out
}

func (r *RoomRepo) Load(rooms []models.Room) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rooms = make(map[string]models.Room, len(rooms))
	for _, room := range rooms {
		r.rooms[room.ID] = room
	}
}

// DeskRepo is the in-memory DeskRepository.
type DeskRepo struct {
	mu    sync.RWMutex
	desks map[string]models.Desk
}

func NewDeskRepo() *DeskRepo {
	return &DeskRepo{desks: make(map[string]models.Desk)}
}

func (r *DeskRepo) Create(d *models.Desk) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.desks[d.ID]; ok {
		return repository.ErrDuplicate
	}
	r.desks[d.ID] = *d
	return nil
}

func (r *DeskRepo) GetByID(id string) (*models.Desk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.desks[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &d, nil
}

func (r *DeskRepo) Update(d *models.Desk) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.desks[d.ID]; !ok {
		return repository.ErrNotFound
	}
	r.desks[d.ID] = *d
	return nil
}

func (r *DeskRepo) List() ([]models.Desk, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Desk, 0, len(r.desks))
	for _, d := range r.desks {
		out = append(out, d)
	}
	return out, nil
}

func (r *DeskRepo) Dump() []models.Desk {
	out, _ := r.List()
	return out
}

func (r *DeskRepo) Load(desks []models.Desk) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.desks = make(map[string]models.Desk, len(desks))
	for _, d := range desks {
		r.desks[d.ID] = d
	}
}

// DeviceRepo is the in-memory DeviceRepository.
type DeviceRepo struct {
	mu      sync.RWMutex
	devices map[string]models.Device
}

func NewDeviceRepo() *DeviceRepo {
	return &DeviceRepo{devices: make(map[string]models.Device)}
}

func (r *DeviceRepo) Create(d *models.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.devices[d.ID]; ok {
		return repository.ErrDuplicate
	}
	r.devices[d.ID] = *d
	return nil
}

func (r *DeviceRepo) GetByID(id string) (*models.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.devices[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &d, nil
}

func (r *DeviceRepo) Update(d *models.Device) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.devices[d.ID]; !ok {
		return repository.ErrNotFound
	}
	r.devices[d.ID] = *d
	return nil
}

func (r *DeviceRepo) List() ([]models.Device, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Device, 0, len(r.devices))
	for _, d := range r.devices {
		out = append(out, d)
	}
	return out, nil
}

func (r *DeviceRepo) Dump() []models.Device {
	out, _ := r.List()
	return out
}

func (r *DeviceRepo) Load(devices []models.Device) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.devices = make(map[string]models.Device, len(devices))
	for _, d := range devices {
		r.devices[d.ID] = d
	}
}
