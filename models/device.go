// File: workhub/models/device.go
package models

import "time"

// Device type vocabulary.
const (
	DeviceAirQuality = "air_quality_sensor"
	DeviceProximity  = "proximity_reader"
	DeviceBadge      = "badge_reader"
	DeviceOccupancy  = "occupancy_sensor"
)

// Device is a physical sensor or reader, optionally bound to a Room.
// Online is either explicitly reported or derived from LastSeen staleness
// during the alert sweep.
type Device struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Type     string    `json:"type"`
	RoomID   string    `json:"roomId,omitempty"`
	Online   bool      `json:"online"`
	LastSeen time.Time `json:"lastSeen"`
}

// ValidDeviceType reports whether t is a known device type.
func ValidDeviceType(t string) bool {
	switch t {
	case DeviceAirQuality, DeviceProximity, DeviceBadge, DeviceOccupancy:
		return true
	}
	return false
}

// Reading is the latest telemetry sample reported by a device. Only the most
// recent sample per device is retained; history is not a dashboard concern.
type Reading struct {
	DeviceID   string    `json:"deviceId"`
	RoomID     string    `json:"roomId,omitempty"`
	CO2        float64   `json:"co2"`
	RecordedAt time.Time `json:"recordedAt"`
}
