// File: workhub/services/stats/stats.go
package stats

import (
	"time"

	"workhub/database/repository"
	"workhub/models"
	"workhub/services/catalog"
	"workhub/services/occupancy"
)

// Aggregator derives the dashboard summary from the live state of the other
// components. It owns nothing and caches nothing; every call recomputes
// from scratch, so staleness is bounded only by call frequency.
type Aggregator struct {
	Catalog   catalog.Service
	Occupancy occupancy.Tracker
	Bookings  repository.BookingRepository
	Alerts    repository.AlertRepository
	Readings  repository.ReadingRepository
	Now       func() time.Time
}

func (a *Aggregator) now() time.Time {
	if a.Now != nil {
		return a.Now()
	}
	return time.Now().UTC()
}

// Summarize computes the aggregated dashboard metrics.
func (a *Aggregator) Summarize() (*models.DashboardStats, error) {
	out := &models.DashboardStats{GeneratedAt: a.now()}

	rooms, err := a.Catalog.ListRooms()
	if err != nil {
		return nil, err
	}
	totalCapacity, totalOccupied := 0, 0
	for _, room := range rooms {
		totalCapacity += room.Capacity
		occ, err := a.Occupancy.Get(room.ID)
		if err != nil {
			return nil, err
		}
		totalOccupied += occ.CurrentCount
	}
	if totalCapacity > 0 {
		out.OccupancyRate = float64(totalOccupied) / float64(totalCapacity)
	}

	bookings, err := a.Bookings.List()
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		switch b.Status {
		case models.BookingActive:
			out.ActiveBookings++
		case models.BookingPending:
			out.PendingBookings++
		}
	}

	devices, err := a.Catalog.ListDevices()
	if err != nil {
		return nil, err
	}
	out.DevicesTotal = len(devices)
	for _, d := range devices {
		if d.Online {
			out.DevicesOnline++
		}
	}
	if out.DevicesTotal > 0 {
		out.DeviceOnlineRatio = float64(out.DevicesOnline) / float64(out.DevicesTotal)
	}

	readings, err := a.Readings.List()
	if err != nil {
		return nil, err
	}
	if len(readings) > 0 {
		sum := 0.0
		for _, r := range readings {
			sum += r.CO2
		}
		out.AverageCO2 = sum / float64(len(readings))
	}

	alerts, err := a.Alerts.List()
	if err != nil {
		return nil, err
	}
	for _, alert := range alerts {
		if !alert.Resolved {
			out.OpenAlerts++
		}
	}
	return out, nil
}
