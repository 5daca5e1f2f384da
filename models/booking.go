// File: workhub/models/booking.go
package models

import "time"

// Booking status vocabulary. Completed, cancelled and no_show are terminal.
const (
	BookingPending   = "pending"
	BookingActive    = "active"
	BookingCompleted = "completed"
	BookingCancelled = "cancelled"
	BookingNoShow    = "no_show"
)

// Booking is a reservation of a resource for a half-open time window
// [StartTime, EndTime). The field names are part of the REST contract.
type Booking struct {
	ID           string     `json:"id"`
	UserID       string     `json:"userId"`
	ResourceType string     `json:"resourceType"`
	ResourceID   string     `json:"resourceId"`
	StartTime    time.Time  `json:"startTime"`
	EndTime      time.Time  `json:"endTime"`
	Status       string     `json:"status"`
	CheckedIn    bool       `json:"checkedIn"`
	CheckedInAt  *time.Time `json:"checkedInAt,omitempty"`
	Purpose      string     `json:"purpose,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

// ResourceKey returns the canonical key of the booked resource.
func (b *Booking) ResourceKey() string {
	return ResourceKey(b.ResourceType, b.ResourceID)
}

// Blocking reports whether the booking counts against the no-overlap
// invariant: only pending and active bookings reserve the resource.
func (b *Booking) Blocking() bool {
	return b.Status == BookingPending || b.Status == BookingActive
}

// Overlaps reports whether two half-open windows intersect. Adjacent
// bookings (end == start) do not overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && start.Before(b.EndTime)
}

// Terminal reports whether the status admits no further transitions.
func (b *Booking) Terminal() bool {
	switch b.Status {
	case BookingCompleted, BookingCancelled, BookingNoShow:
		return true
	}
	return false
}
