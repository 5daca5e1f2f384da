// File: workhub/database/repository/repository.go
package repository

import (
	"time"

	"workhub/models"
)

// UserRepository stores provisioned accounts. Badge ids are unique.
type UserRepository interface {
	Create(u *models.User) error
	GetByID(id string) (*models.User, error)
	GetByBadge(badgeID string) (*models.User, error)
	List() ([]models.User, error)
}

// RoomRepository stores room definitions.
type RoomRepository interface {
	Create(r *models.Room) error
	GetByID(id string) (*models.Room, error)
	Update(r *models.Room) error
	List() ([]models.Room, error)
}

// DeskRepository stores desk definitions.
type DeskRepository interface {
	Create(d *models.Desk) error
	GetByID(id string) (*models.Desk, error)
	Update(d *models.Desk) error
	List() ([]models.Desk, error)
}

// DeviceRepository stores device definitions and their liveness state.
type DeviceRepository interface {
	Create(d *models.Device) error
	GetByID(id string) (*models.Device, error)
	Update(d *models.Device) error
	List() ([]models.Device, error)
}

// BookingRepository stores bookings. ListBlocking returns only bookings that
// hold the resource (status pending or active); the overlap check runs
// against that set.
type BookingRepository interface {
	Create(b *models.Booking) error
	GetByID(id string) (*models.Booking, error)
	Update(b *models.Booking) error
	List() ([]models.Booking, error)
	ListByUser(userID string) ([]models.Booking, error)
	ListBlocking(resourceType, resourceID string) ([]models.Booking, error)
	ListByStatus(status string) ([]models.Booking, error)
}

// OccupancyRepository stores the current headcount per resource.
type OccupancyRepository interface {
	Get(resourceID string) (*models.Occupancy, error)
	Upsert(o *models.Occupancy) error
	List() ([]models.Occupancy, error)
}

// AlertRepository stores alerts. FindOpen looks up the unresolved alert for
// a de-duplication key, if any.
type AlertRepository interface {
	Create(a *models.Alert) error
	GetByID(id string) (*models.Alert, error)
	Update(a *models.Alert) error
	List() ([]models.Alert, error)
	FindOpen(targetKey string) (*models.Alert, error)
}

// ReadingRepository keeps the latest telemetry sample per device.
type ReadingRepository interface {
	Upsert(r *models.Reading) error
	GetByDevice(deviceID string) (*models.Reading, error)
	List() ([]models.Reading, error)
	PruneBefore(cutoff time.Time) int
}
