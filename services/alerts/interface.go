package alerts

import (
	"context"
	"time"

	"workhub/models"
)

// Engine evaluates operational conditions and owns the alert lifecycle.
// Each condition keeps at most one open alert per (type, resource); the
// sweep never duplicates an alert while the condition persists.
type Engine interface {
	// Evaluate runs one sweep. Invoked on a fixed interval and after
	// telemetry ingestion; overlapping invocations are skipped.
	Evaluate(ctx context.Context) error
	Raise(input RaiseInput) (*models.Alert, error)
	// Resolve is idempotent: resolving an already-resolved alert returns it
	// unchanged.
	Resolve(id string) (*models.Alert, error)
	ListActive() ([]models.Alert, error)
	ListAll() ([]models.Alert, error)
}

// RaiseInput is the payload for manual alert creation.
type RaiseInput struct {
	Type        string `json:"type" binding:"required"`
	Severity    string `json:"severity" binding:"required"`
	RoomID      string `json:"roomId"`
	DeviceID    string `json:"deviceId"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
}

// BookingExpirer is the slice of the booking service the sweep needs: it
// terminates no-show bookings and hands them back for alerting.
type BookingExpirer interface {
	ExpireNoShows(now time.Time) ([]models.Booking, error)
}
