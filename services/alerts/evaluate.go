// File: workhub/services/alerts/evaluate.go
package alerts

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"workhub/models"
)

// Evaluate runs one sweep over all alert conditions. If a sweep is already
// in progress the call returns immediately; each condition is evaluated
// independently so one failing check never aborts the rest.
func (e *DefaultAlertEngine) Evaluate(ctx context.Context) error {
	if !e.sweepMu.TryLock() {
		e.Logger.Debug("sweep already running, skipping")
		return nil
	}
	defer e.sweepMu.Unlock()

	e.runCheck(ctx, "high_co2", e.checkCO2)
	e.runCheck(ctx, "over_capacity", e.checkOverCapacity)
	e.runCheck(ctx, "no_show", e.checkNoShows)
	e.runCheck(ctx, "device_offline", e.checkDevices)
	return nil
}

// runCheck isolates a single condition: an error or panic is logged and
// skipped, never propagated to the caller or the other checks.
func (e *DefaultAlertEngine) runCheck(ctx context.Context, name string, fn func(ctx context.Context) error) {
	defer func() {
		if r := recover(); r != nil {
			e.Logger.Error("alert check panicked", zap.String("check", name), zap.Any("panic", r))
		}
	}()
	if ctx.Err() != nil {
		return
	}
	if err := fn(ctx); err != nil {
		e.Logger.Error("alert check failed", zap.String("check", name), zap.Error(err))
	}
}

func (e *DefaultAlertEngine) checkCO2(_ context.Context) error {
	readings, err := e.Readings.List()
	if err != nil {
		return err
	}
	for _, r := range readings {
		if r.RoomID == "" || r.CO2 <= e.CO2Threshold {
			continue
		}
		severity := models.SeverityHigh
		if r.CO2 >= e.CO2Threshold*1.5 {
			severity = models.SeverityCritical
		}
		e.ensureOpen(&models.Alert{
			Type:     models.AlertHighCO2,
			Severity: severity,
			RoomID:   r.RoomID,
			Title:    fmt.Sprintf("High CO2 in %s", e.roomName(r.RoomID)),
			Description: fmt.Sprintf("CO2 reading of %.0f ppm exceeds the %.0f ppm threshold",
				r.CO2, e.CO2Threshold),
		})
	}
	return nil
}

func (e *DefaultAlertEngine) checkOverCapacity(_ context.Context) error {
	rooms, err := e.Catalog.ListRooms()
	if err != nil {
		return err
	}
	for _, room := range rooms {
		if room.Capacity <= 0 {
			continue
		}
		occ, err := e.Occupancy.Get(room.ID)
		if err != nil {
			return err
		}
		if occ.CurrentCount <= room.Capacity {
			continue
		}
		e.ensureOpen(&models.Alert{
			Type:     models.AlertOverCapacity,
			Severity: models.SeverityHigh,
			RoomID:   room.ID,
			Title:    fmt.Sprintf("%s is over capacity", room.Name),
			Description: fmt.Sprintf("Headcount %d exceeds capacity %d",
				occ.CurrentCount, room.Capacity),
		})
	}
	return nil
}

func (e *DefaultAlertEngine) checkNoShows(_ context.Context) error {
	expired, err := e.Bookings.ExpireNoShows(e.now())
	if err != nil {
		return err
	}
	for _, b := range expired {
		e.ensureOpen(&models.Alert{
			Type:     models.AlertNoShow,
			Severity: models.SeverityLow,
			RoomID:   b.ResourceID,
			Title:    fmt.Sprintf("No-show for booking on %s %s", b.ResourceType, b.ResourceID),
			Description: fmt.Sprintf("Booking %s by user %s was never checked in and has been cancelled",
				b.ID, b.UserID),
		})
	}
	return nil
}

func (e *DefaultAlertEngine) checkDevices(_ context.Context) error {
	devices, err := e.Catalog.ListDevices()
	if err != nil {
		return err
	}
	now := e.now()
	for _, d := range devices {
		stale := now.Sub(d.LastSeen) > e.DeviceStale
		if stale && d.Online {
			if _, err := e.Catalog.MarkDeviceOffline(d.ID); err != nil {
				return err
			}
		}
		if !stale && d.Online {
			continue
		}
		e.ensureOpen(&models.Alert{
			Type:        models.AlertDeviceOffline,
			Severity:    models.SeverityMedium,
			DeviceID:    d.ID,
			Title:       fmt.Sprintf("Device %s is offline", d.Name),
			Description: fmt.Sprintf("Last seen %s", d.LastSeen.Format("2006-01-02 15:04:05 MST")),
		})
	}
	// Drop readings from sensors that have been silent well past the
	// staleness window so they stop feeding the CO2 average.
	if n := e.Readings.PruneBefore(now.Add(-2 * e.DeviceStale)); n > 0 {
		e.Logger.Debug("pruned stale readings", zap.Int("count", n))
	}
	return nil
}

// ensureOpen creates the alert unless an open one already exists for its
// (type, resource) key. Failures are logged; the sweep moves on.
func (e *DefaultAlertEngine) ensureOpen(alert *models.Alert) {
	if _, err := e.Raise(RaiseInput{
		Type:        alert.Type,
		Severity:    alert.Severity,
		RoomID:      alert.RoomID,
		DeviceID:    alert.DeviceID,
		Title:       alert.Title,
		Description: alert.Description,
	}); err != nil {
		e.Logger.Error("failed to raise alert", zap.String("type", alert.Type), zap.Error(err))
	}
}

func (e *DefaultAlertEngine) roomName(id string) string {
	room, err := e.Catalog.GetRoom(id)
	if err != nil {
		return id
	}
	return room.Name
}
