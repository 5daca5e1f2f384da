// File: workhub/models/alert.go
package models

import "time"

// Alert type vocabulary.
const (
	AlertHighCO2       = "high_co2"
	AlertOverCapacity  = "over_capacity"
	AlertNoShow        = "no_show"
	AlertDeviceOffline = "device_offline"
)

// Alert severities.
const (
	SeverityLow      = "low"
	SeverityMedium   = "medium"
	SeverityHigh     = "high"
	SeverityCritical = "critical"
)

// Alert is an operational condition raised by the sweep or created manually.
// Once resolved it is immutable; resolving again is a no-op.
type Alert struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Severity    string     `json:"severity"`
	RoomID      string     `json:"roomId,omitempty"`
	DeviceID    string     `json:"deviceId,omitempty"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Resolved    bool       `json:"resolved"`
	ResolvedAt  *time.Time `json:"resolvedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// TargetKey identifies the (type, resource) pair for de-duplication: the
// sweep keeps at most one open alert per key.
func (a *Alert) TargetKey() string {
	return a.Type + "|" + a.RoomID + "|" + a.DeviceID
}

// ValidAlertType reports whether t is a known alert type.
func ValidAlertType(t string) bool {
	switch t {
	case AlertHighCO2, AlertOverCapacity, AlertNoShow, AlertDeviceOffline:
		return true
	}
	return false
}

// ValidSeverity reports whether s is a known severity.
func ValidSeverity(s string) bool {
	switch s {
	case SeverityLow, SeverityMedium, SeverityHigh, SeverityCritical:
		return true
	}
	return false
}
