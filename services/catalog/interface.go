package catalog

import (
	"time"

	"workhub/models"
)

// Service is the resource catalog: rooms, desks and devices. Read-mostly
// reference data consumed by every other component.
type Service interface {
	CreateRoom(input RoomInput) (*models.Room, error)
	GetRoom(id string) (*models.Room, error)
	UpdateRoom(id string, input RoomUpdate) (*models.Room, error)
	ListRooms() ([]models.Room, error)

	CreateDesk(input DeskInput) (*models.Desk, error)
	GetDesk(id string) (*models.Desk, error)
	ListDesks() ([]models.Desk, error)

	CreateDevice(input DeviceInput) (*models.Device, error)
	GetDevice(id string) (*models.Device, error)
	ListDevices() ([]models.Device, error)
	MarkDeviceSeen(id string, at time.Time) (*models.Device, error)
	MarkDeviceOffline(id string) (*models.Device, error)

	// ResolveResource validates a (type, id) pair for booking. Capacity is 1
	// for desks.
	ResolveResource(resourceType, resourceID string) (*ResourceInfo, error)
}

// RoomInput is the payload for room creation.
type RoomInput struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"required,gt=0"`
	Type     string `json:"type"`
}

// RoomUpdate carries the administrative edits allowed on a room.
type RoomUpdate struct {
	Capacity *int  `json:"capacity"`
	Active   *bool `json:"active"`
}

// DeskInput is the payload for desk creation.
type DeskInput struct {
	Name   string `json:"name" binding:"required"`
	Type   string `json:"type"`
	RoomID string `json:"roomId"`
}

// DeviceInput is the payload for device creation.
type DeviceInput struct {
	Name   string `json:"name" binding:"required"`
	Type   string `json:"type" binding:"required"`
	RoomID string `json:"roomId"`
}

// ResourceInfo is the validation view of a bookable resource.
type ResourceInfo struct {
	Type     string
	ID       string
	Name     string
	Capacity int
	Active   bool
}
