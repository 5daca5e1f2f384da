// File: workhub/services/catalog/catalog.go
package catalog

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"workhub/database/repository"
	"workhub/models"
	"workhub/utils"
)

// DefaultCatalogService implements Service on top of the entity repositories.
type DefaultCatalogService struct {
	Rooms   repository.RoomRepository
	Desks   repository.DeskRepository
	Devices repository.DeviceRepository
	Now     func() time.Time
}

func (s *DefaultCatalogService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now().UTC()
}

func (s *DefaultCatalogService) CreateRoom(input RoomInput) (*models.Room, error) {
	if input.Capacity <= 0 {
		return nil, utils.NewValidationError("room capacity must be positive")
	}
	room := &models.Room{
		ID:       uuid.New().String(),
		Name:     input.Name,
		Capacity: input.Capacity,
		Type:     input.Type,
		Active:   true,
	}
	if err := s.Rooms.Create(room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *DefaultCatalogService) GetRoom(id string) (*models.Room, error) {
	room, err := s.Rooms.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.NewNotFoundError(fmt.Sprintf("room %s not found", id))
	}
	return room, err
}

func (s *DefaultCatalogService) UpdateRoom(id string, input RoomUpdate) (*models.Room, error) {
	room, err := s.GetRoom(id)
	if err != nil {
		return nil, err
	}
	if input.Capacity != nil {
		if *input.Capacity <= 0 {
			return nil, utils.NewValidationError("room capacity must be positive")
		}
		room.Capacity = *input.Capacity
	}
	if input.Active != nil {
		room.Active = *input.Active
	}
	if err := s.Rooms.Update(room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *DefaultCatalogService) ListRooms() ([]models.Room, error) {
	return s.Rooms.List()
}

func (s *DefaultCatalogService) CreateDesk(input DeskInput) (*models.Desk, error) {
	if input.RoomID != "" {
		if _, err := s.GetRoom(input.RoomID); err != nil {
			return nil, err
		}
	}
	desk := &models.Desk{
		ID:     uuid.New().String(),
		Name:   input.Name,
		Type:   input.Type,
		RoomID: input.RoomID,
		Active: true,
	}
	if err := s.Desks.Create(desk); err != nil {
		return nil, err
	}
	return desk, nil
}

func (s *DefaultCatalogService) GetDesk(id string) (*models.Desk, error) {
	desk, err := s.Desks.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.NewNotFoundError(fmt.Sprintf("desk %s not found", id))
	}
	return desk, err
}

func (s *DefaultCatalogService) ListDesks() ([]models.Desk, error) {
	return s.Desks.List()
}

func (s *DefaultCatalogService) CreateDevice(input DeviceInput) (*models.Device, error) {
	if !models.ValidDeviceType(input.Type) {
		return nil, utils.NewValidationError(fmt.Sprintf("unknown device type %q", input.Type))
	}
	if input.RoomID != "" {
		if _, err := s.GetRoom(input.RoomID); err != nil {
			return nil, err
		}
	}
	device := &models.Device{
		ID:       uuid.New().String(),
		Name:     input.Name,
		Type:     input.Type,
		RoomID:   input.RoomID,
		Online:   true,
		LastSeen: s.now(),
	}
	if err := s.Devices.Create(device); err != nil {
		return nil, err
	}
	return device, nil
}

func (s *DefaultCatalogService) GetDevice(id string) (*models.Device, error) {
	device, err := s.Devices.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.NewNotFoundError(fmt.Sprintf("device %s not found", id))
	}
	return device, err
}

func (s *DefaultCatalogService) ListDevices() ([]models.Device, error) {
	return s.Devices.List()
}

func (s *DefaultCatalogService) MarkDeviceSeen(id string, at time.Time) (*models.Device, error) {
	device, err := s.GetDevice(id)
	if err != nil {
		return nil, err
	}
	device.LastSeen = at
	device.Online = true
	if err := s.Devices.Update(device); err != nil {
		return nil, err
	}
	return device, nil
}

func (s *DefaultCatalogService) MarkDeviceOffline(id string) (*models.Device, error) {
	device, err := s.GetDevice(id)
	if err != nil {
		return nil, err
	}
	device.Online = false
	if err := s.Devices.Update(device); err != nil {
		return nil, err
	}
	return device, nil
}

func (s *DefaultCatalogService) ResolveResource(resourceType, resourceID string) (*ResourceInfo, error) {
	switch resourceType {
	case models.ResourceRoom:
		room, err := s.GetRoom(resourceID)
		if err != nil {
			return nil, err
		}
		return &ResourceInfo{
			Type:     models.ResourceRoom,
			ID:       room.ID,
			Name:     room.Name,
			Capacity: room.Capacity,
			Active:   room.Active,
		}, nil
	case models.ResourceDesk:
		desk, err := s.GetDesk(resourceID)
		if err != nil {
			return nil, err
		}
		return &ResourceInfo{
			Type:     models.ResourceDesk,
			ID:       desk.ID,
			Name:     desk.Name,
			Capacity: 1,
			Active:   desk.Active,
		}, nil
	}
	return nil, utils.NewValidationError(fmt.Sprintf("unknown resource type %q", resourceType))
}
