package models

import "time"

// DashboardStats is the aggregated read-side projection served at /api/stats.
// Computed fresh on every call; nothing here is stored.
type DashboardStats struct {
	OccupancyRate     float64   `json:"occupancyRate"` // Σ occupied / Σ capacity
	ActiveBookings    int       `json:"activeBookings"`
	PendingBookings   int       `json:"pendingBookings"`
	DevicesOnline     int       `json:"devicesOnline"`
	DevicesTotal      int       `json:"devicesTotal"`
	DeviceOnlineRatio float64   `json:"deviceOnlineRatio"`
	AverageCO2        float64   `json:"averageCo2"`
	OpenAlerts        int       `json:"openAlerts"`
	GeneratedAt       time.Time `json:"generatedAt"`
}
