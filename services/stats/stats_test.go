package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workhub/database/memory"
	"workhub/models"
	"workhub/services/catalog"
	"workhub/services/occupancy"
)

func TestSummarize(t *testing.T) {
	store := memory.NewStore()
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	nowFn := func() time.Time { return now }

	catalogSvc := &catalog.DefaultCatalogService{
		Rooms:   store.Rooms,
		Desks:   store.Desks,
		Devices: store.Devices,
		Now:     nowFn,
	}
	tracker := &occupancy.DefaultTracker{Repo: store.Occupancy, Now: nowFn}
	agg := &Aggregator{
		Catalog:   catalogSvc,
		Occupancy: tracker,
		Bookings:  store.Bookings,
		Alerts:    store.Alerts,
		Readings:  store.Readings,
		Now:       nowFn,
	}

	roomA, err := catalogSvc.CreateRoom(catalog.RoomInput{Name: "A", Capacity: 10})
	require.NoError(t, err)
	_, err = catalogSvc.CreateRoom(catalog.RoomInput{Name: "B", Capacity: 10})
	require.NoError(t, err)
	_, err = tracker.SetCount(roomA.ID, 5)
	require.NoError(t, err)

	_, err = catalogSvc.CreateDevice(catalog.DeviceInput{Name: "co2-1", Type: models.DeviceAirQuality, RoomID: roomA.ID})
	require.NoError(t, err)
	offline, err := catalogSvc.CreateDevice(catalog.DeviceInput{Name: "co2-2", Type: models.DeviceAirQuality})
	require.NoError(t, err)
	_, err = catalogSvc.MarkDeviceOffline(offline.ID)
	require.NoError(t, err)

	require.NoError(t, store.Bookings.Create(&models.Booking{
		ID: "b-1", UserID: "u-1", ResourceType: models.ResourceRoom, ResourceID: roomA.ID,
		StartTime: now, EndTime: now.Add(time.Hour), Status: models.BookingActive,
	}))
	require.NoError(t, store.Bookings.Create(&models.Booking{
		ID: "b-2", UserID: "u-1", ResourceType: models.ResourceRoom, ResourceID: roomA.ID,
		StartTime: now.Add(2 * time.Hour), EndTime: now.Add(3 * time.Hour), Status: models.BookingPending,
	}))
	require.NoError(t, store.Bookings.Create(&models.Booking{
		ID: "b-3", UserID: "u-1", ResourceType: models.ResourceRoom, ResourceID: roomA.ID,
		StartTime: now.Add(-2 * time.Hour), EndTime: now.Add(-time.Hour), Status: models.BookingCompleted,
	}))

	require.NoError(t, store.Readings.Upsert(&models.Reading{DeviceID: "d-1", RoomID: roomA.ID, CO2: 600, RecordedAt: now}))
	require.NoError(t, store.Readings.Upsert(&models.Reading{DeviceID: "d-2", RoomID: roomA.ID, CO2: 1000, RecordedAt: now}))

	resolvedAt := now
	require.NoError(t, store.Alerts.Create(&models.Alert{
		ID: "a-1", Type: models.AlertHighCO2, Severity: models.SeverityHigh, RoomID: roomA.ID,
		Title: "x", CreatedAt: now,
	}))
	require.NoError(t, store.Alerts.Create(&models.Alert{
		ID: "a-2", Type: models.AlertNoShow, Severity: models.SeverityLow, RoomID: roomA.ID,
		Title: "y", Resolved: true, ResolvedAt: &resolvedAt, CreatedAt: now,
	}))

	out, err := agg.Summarize()
	require.NoError(t, err)

	assert.InDelta(t, 0.25, out.OccupancyRate, 1e-9) // 5 occupied of 20 capacity
	assert.Equal(t, 1, out.ActiveBookings)
	assert.Equal(t, 1, out.PendingBookings)
	assert.Equal(t, 2, out.DevicesTotal)
	assert.Equal(t, 1, out.DevicesOnline)
	assert.InDelta(t, 0.5, out.DeviceOnlineRatio, 1e-9)
	assert.InDelta(t, 800, out.AverageCO2, 1e-9)
	assert.Equal(t, 1, out.OpenAlerts)
	assert.Equal(t, now, out.GeneratedAt)
}

func TestSummarizeEmpty(t *testing.T) {
	store := memory.NewStore()
	agg := &Aggregator{
		Catalog:   &catalog.DefaultCatalogService{Rooms: store.Rooms, Desks: store.Desks, Devices: store.Devices},
		Occupancy: &occupancy.DefaultTracker{Repo: store.Occupancy},
		Bookings:  store.Bookings,
		Alerts:    store.Alerts,
		Readings:  store.Readings,
	}

	out, err := agg.Summarize()
	require.NoError(t, err)
	assert.Zero(t, out.OccupancyRate)
	assert.Zero(t, out.DeviceOnlineRatio)
	assert.Zero(t, out.AverageCO2)
	assert.Zero(t, out.OpenAlerts)
}
