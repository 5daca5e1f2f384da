// File: workhub/models/resource.go
package models

// Resource type discriminators used on bookings and check-in requests.
const (
	ResourceRoom = "room"
	ResourceDesk = "desk"
)

// Room is a bookable space with a headcount capacity.
type Room struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Type     string `json:"type"` // e.g. "meeting", "focus", "event"
	Active   bool   `json:"active"`
}

// Desk is a single-occupant bookable resource, optionally inside a Room.
type Desk struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	RoomID string `json:"roomId,omitempty"`
	Active bool   `json:"active"`
}

// ValidResourceType reports whether t names a bookable resource kind.
func ValidResourceType(t string) bool {
	return t == ResourceRoom || t == ResourceDesk
}

// ResourceKey builds the canonical "type:id" key used for per-resource
// locking and alert de-duplication.
func ResourceKey(resourceType, resourceID string) string {
	return resourceType + ":" + resourceID
}
