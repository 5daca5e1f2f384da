// File: workhub/handlers/api_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"workhub/database/memory"
	"workhub/handlers"
	"workhub/models"
	"workhub/routes"
	"workhub/services/alerts"
	"workhub/services/booking"
	"workhub/services/catalog"
	"workhub/services/occupancy"
	"workhub/services/stats"
	"workhub/services/telemetry"
)

type apiEnv struct {
	router *gin.Engine
	store  *memory.Store
	user   *models.User
	room   *models.Room
}

func newAPIEnv(t *testing.T) *apiEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.NewStore()
	catalogSvc := &catalog.DefaultCatalogService{
		Rooms: store.Rooms, Desks: store.Desks, Devices: store.Devices,
	}
	tracker := &occupancy.DefaultTracker{Repo: store.Occupancy}
	bookingSvc := &booking.DefaultBookingService{
		Repo: store.Bookings, Users: store.Users, Catalog: catalogSvc,
		Occupancy: tracker, Locker: store, Grace: 15 * time.Minute,
	}
	engine := &alerts.DefaultAlertEngine{
		Alerts: store.Alerts, Readings: store.Readings, Catalog: catalogSvc,
		Occupancy: tracker, Bookings: bookingSvc, Logger: zap.NewNop(),
		CO2Threshold: 800, DeviceStale: 10 * time.Minute,
	}
	aggregator := &stats.Aggregator{
		Catalog: catalogSvc, Occupancy: tracker, Bookings: store.Bookings,
		Alerts: store.Alerts, Readings: store.Readings,
	}
	ingestor := &telemetry.Ingestor{
		Catalog: catalogSvc, Occupancy: tracker, Readings: store.Readings,
		Alerts: engine, Logger: zap.NewNop(),
	}

	router := gin.New()
	routes.RegisterRoutes(router, &handlers.HandlerBundle{
		Catalog:   handlers.NewCatalogHandler(catalogSvc),
		Bookings:  handlers.NewBookingHandler(bookingSvc),
		Occupancy: handlers.NewOccupancyHandler(tracker, catalogSvc),
		Alerts:    handlers.NewAlertHandler(engine),
		Stats:     handlers.NewStatsHandler(aggregator),
		Users:     handlers.NewUserHandler(store.Users),
		Telemetry: handlers.NewTelemetryHandler(ingestor),
	})

	room, err := catalogSvc.CreateRoom(catalog.RoomInput{Name: "Room 1", Capacity: 8, Type: "meeting"})
	require.NoError(t, err)

	user := &models.User{
		ID: "u-1", Name: "Dana", Role: models.RoleUser, BadgeID: "badge-1",
		CreatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.Users.Create(user))

	return &apiEnv{router: router, store: store, user: user, room: room}
}

func (env *apiEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func (env *apiEnv) createBooking(t *testing.T, start, end time.Time) models.Booking {
	t.Helper()
	w := env.do(t, http.MethodPost, "/api/bookings", gin.H{
		"userId":       env.user.ID,
		"resourceType": models.ResourceRoom,
		"resourceId":   env.room.ID,
		"startTime":    start.Format(time.RFC3339),
		"endTime":      end.Format(time.RFC3339),
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decode[models.Booking](t, w)
}

func TestBookingConflictScenario(t *testing.T) {
	env := newAPIEnv(t)
	day := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)

	// Room 1, 10:00-11:00 -> pending.
	first := env.createBooking(t, day.Add(10*time.Hour), day.Add(11*time.Hour))
	assert.Equal(t, models.BookingPending, first.Status)

	// Room 1, 10:30-11:30 -> conflict.
	w := env.do(t, http.MethodPost, "/api/bookings", gin.H{
		"userId":       env.user.ID,
		"resourceType": models.ResourceRoom,
		"resourceId":   env.room.ID,
		"startTime":    day.Add(10*time.Hour + 30*time.Minute).Format(time.RFC3339),
		"endTime":      day.Add(11*time.Hour + 30*time.Minute).Format(time.RFC3339),
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[map[string]string](t, w)
	assert.Equal(t, "ResourceConflict", body["error"])
	assert.Contains(t, body["message"], first.ID)

	// Room 1, 11:00-12:00 -> adjacent, succeeds.
	env.createBooking(t, day.Add(11*time.Hour), day.Add(12*time.Hour))
}

func TestOccupancySetCountScenario(t *testing.T) {
	env := newAPIEnv(t)

	w := env.do(t, http.MethodPatch, "/api/occupancy/"+env.room.ID, gin.H{"count": -1})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	body := decode[map[string]string](t, w)
	assert.Equal(t, "InvalidCount", body["error"])

	w = env.do(t, http.MethodPatch, "/api/occupancy/"+env.room.ID, gin.H{"count": 5})
	require.Equal(t, http.StatusOK, w.Code)
	view := decode[models.OccupancyView](t, w)
	assert.Equal(t, 5, view.CurrentCount)
	assert.Equal(t, models.OccupancyOccupied, view.Status)

	w = env.do(t, http.MethodPatch, "/api/occupancy/"+env.room.ID, gin.H{"count": "five"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodGet, "/api/occupancy", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]models.OccupancyView](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, 5, list[0].CurrentCount)
}

func TestCheckInScenario(t *testing.T) {
	env := newAPIEnv(t)
	now := time.Now().UTC()
	env.createBooking(t, now.Add(-10*time.Minute), now.Add(50*time.Minute))

	// Unknown badge -> 404.
	w := env.do(t, http.MethodPost, "/api/checkin", gin.H{
		"badgeId":      "badge-unknown",
		"resourceType": models.ResourceRoom,
		"resourceId":   env.room.ID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	body := decode[map[string]string](t, w)
	assert.Equal(t, "UnknownBadge", body["error"])

	// Known badge within the window -> active booking, occupancy 1.
	w = env.do(t, http.MethodPost, "/api/checkin", gin.H{
		"badgeId":      env.user.BadgeID,
		"resourceType": models.ResourceRoom,
		"resourceId":   env.room.ID,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp struct {
		Success bool           `json:"success"`
		Booking models.Booking `json:"booking"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, models.BookingActive, resp.Booking.Status)
	assert.True(t, resp.Booking.CheckedIn)

	occ, err := env.store.Occupancy.Get(env.room.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, occ.CurrentCount)
}

func TestAlertResolveScenario(t *testing.T) {
	env := newAPIEnv(t)
	device, err := (&catalog.DefaultCatalogService{
		Rooms: env.store.Rooms, Desks: env.store.Desks, Devices: env.store.Devices,
	}).CreateDevice(catalog.DeviceInput{Name: "co2-1", Type: models.DeviceAirQuality})
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/api/alerts", gin.H{
		"type":     models.AlertDeviceOffline,
		"severity": models.SeverityMedium,
		"deviceId": device.ID,
		"title":    "Device offline",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	created := decode[models.Alert](t, w)

	resolvePath := fmt.Sprintf("/api/alerts/%s/resolve", created.ID)
	w = env.do(t, http.MethodPatch, resolvePath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	first := decode[models.Alert](t, w)
	require.True(t, first.Resolved)
	require.NotNil(t, first.ResolvedAt)

	// Resolving again returns the identical resolved timestamp.
	w = env.do(t, http.MethodPatch, resolvePath, nil)
	require.Equal(t, http.StatusOK, w.Code)
	second := decode[models.Alert](t, w)
	assert.True(t, second.Resolved)
	assert.Equal(t, *first.ResolvedAt, *second.ResolvedAt)

	w = env.do(t, http.MethodPatch, "/api/alerts/missing/resolve", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCatalogEndpoints(t *testing.T) {
	env := newAPIEnv(t)

	w := env.do(t, http.MethodGet, "/api/rooms", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rooms := decode[[]models.Room](t, w)
	require.Len(t, rooms, 1)
	assert.Equal(t, "Room 1", rooms[0].Name)

	w = env.do(t, http.MethodPost, "/api/rooms", gin.H{"name": "Room 2", "capacity": 4})
	assert.Equal(t, http.StatusCreated, w.Code)

	// Missing capacity fails validation.
	w = env.do(t, http.MethodPost, "/api/rooms", gin.H{"name": "Room 3"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/devices", gin.H{"name": "badge-reader", "type": "not-a-type"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, http.MethodPost, "/api/desks", gin.H{"name": "Desk 1", "roomId": env.room.ID})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = env.do(t, http.MethodGet, "/api/desks", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]models.Desk](t, w), 1)
}

func TestStatsEndpoint(t *testing.T) {
	env := newAPIEnv(t)
	now := time.Now().UTC()
	env.createBooking(t, now.Add(time.Hour), now.Add(2*time.Hour))

	w := env.do(t, http.MethodGet, "/api/stats", nil)
	require.Equal(t, http.StatusOK, w.Code)
	out := decode[models.DashboardStats](t, w)
	assert.Equal(t, 1, out.PendingBookings)
	assert.Equal(t, 0, out.ActiveBookings)
}

func TestTelemetryEndpoint(t *testing.T) {
	env := newAPIEnv(t)
	device, err := (&catalog.DefaultCatalogService{
		Rooms: env.store.Rooms, Desks: env.store.Desks, Devices: env.store.Devices,
	}).CreateDevice(catalog.DeviceInput{Name: "co2-1", Type: models.DeviceAirQuality, RoomID: env.room.ID})
	require.NoError(t, err)

	w := env.do(t, http.MethodPost, "/api/telemetry", gin.H{
		"deviceId": device.ID, "co2": 950, "occupancy": 2,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	occ, err := env.store.Occupancy.Get(env.room.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, occ.CurrentCount)

	// Threshold breach surfaces without waiting for the next sweep.
	w = env.do(t, http.MethodGet, "/api/alerts/active", nil)
	require.Equal(t, http.StatusOK, w.Code)
	active := decode[[]models.Alert](t, w)
	require.Len(t, active, 1)
	assert.Equal(t, models.AlertHighCO2, active[0].Type)

	w = env.do(t, http.MethodPost, "/api/telemetry", gin.H{"deviceId": "missing"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
