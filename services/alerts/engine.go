// File: workhub/services/alerts/engine.go
package alerts

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"workhub/database/repository"
	"workhub/models"
	"workhub/services/catalog"
	"workhub/services/occupancy"
	"workhub/utils"
)

// DefaultAlertEngine implements Engine.
type DefaultAlertEngine struct {
	Alerts    repository.AlertRepository
	Readings  repository.ReadingRepository
	Catalog   catalog.Service
	Occupancy occupancy.Tracker
	Bookings  BookingExpirer
	Logger    *zap.Logger

	// CO2Threshold is in ppm; DeviceStale is how old a last-seen may get
	// before a device counts as offline.
	CO2Threshold float64
	DeviceStale  time.Duration
	Now          func() time.Time

	sweepMu sync.Mutex // held for the duration of one sweep
	raiseMu sync.Mutex // serializes find-open-then-create
}

func (e *DefaultAlertEngine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now().UTC()
}

// Raise creates an alert unless an open one already exists for the same
// (type, resource) key, in which case the existing alert is returned.
func (e *DefaultAlertEngine) Raise(input RaiseInput) (*models.Alert, error) {
	if !models.ValidAlertType(input.Type) {
		return nil, utils.NewValidationError(fmt.Sprintf("unknown alert type %q", input.Type))
	}
	if !models.ValidSeverity(input.Severity) {
		return nil, utils.NewValidationError(fmt.Sprintf("unknown severity %q", input.Severity))
	}
	alert := &models.Alert{
		ID:          uuid.New().String(),
		Type:        input.Type,
		Severity:    input.Severity,
		RoomID:      input.RoomID,
		DeviceID:    input.DeviceID,
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   e.now(),
	}

	e.raiseMu.Lock()
	defer e.raiseMu.Unlock()
	existing, err := e.Alerts.FindOpen(alert.TargetKey())
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	if err := e.Alerts.Create(alert); err != nil {
		return nil, err
	}
	e.Logger.Info("alert raised",
		zap.String("type", alert.Type),
		zap.String("severity", alert.Severity),
		zap.String("roomId", alert.RoomID),
		zap.String("deviceId", alert.DeviceID))
	return alert, nil
}

// Resolve marks an alert resolved. Resolving an already-resolved alert is a
// no-op that returns the alert unchanged, including its ResolvedAt.
func (e *DefaultAlertEngine) Resolve(id string) (*models.Alert, error) {
	alert, err := e.Alerts.GetByID(id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, utils.NewNotFoundError(fmt.Sprintf("alert %s not found", id))
	}
	if err != nil {
		return nil, err
	}
	if alert.Resolved {
		return alert, nil
	}
	now := e.now()
	alert.Resolved = true
	alert.ResolvedAt = &now
	if err := e.Alerts.Update(alert); err != nil {
		return nil, err
	}
	return alert, nil
}

func (e *DefaultAlertEngine) ListActive() ([]models.Alert, error) {
	all, err := e.Alerts.List()
	if err != nil {
		return nil, err
	}
	out := make([]models.Alert, 0, len(all))
	for _, a := range all {
		if !a.Resolved {
			out = append(out, a)
		}
	}
	return out, nil
}

func (e *DefaultAlertEngine) ListAll() ([]models.Alert, error) {
	return e.Alerts.List()
}
