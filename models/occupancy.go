package models

import "time"

// Occupancy status bands derived from headcount vs capacity. Presentation
// values only; never stored.
const (
	OccupancyAvailable = "available"
	OccupancyOccupied  = "occupied"
	OccupancyWarning   = "warning"
	OccupancyCritical  = "critical"
)

// Occupancy is the current headcount for a resource. CurrentCount is the
// field name the dashboard reads.
type Occupancy struct {
	ResourceID   string    `json:"resourceId"`
	CurrentCount int       `json:"currentCount"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// OccupancyView is the REST projection: stored count plus the derived band.
type OccupancyView struct {
	Occupancy
	Status string `json:"status"`
}
