// File: workhub/services/telemetry/ingest.go
package telemetry

import (
	"context"
	"time"

	"go.uber.org/zap"

	"workhub/database/repository"
	"workhub/models"
	"workhub/services/alerts"
	"workhub/services/catalog"
	"workhub/services/occupancy"
)

// Input is one telemetry report from a device. CO2 and Occupancy are
// optional; a report with neither still refreshes the device's last-seen.
type Input struct {
	DeviceID  string   `json:"deviceId" binding:"required"`
	CO2       *float64 `json:"co2"`
	Occupancy *int     `json:"occupancy"`
}

// Ingestor applies a telemetry report: device liveness, latest CO2 sample,
// absolute headcount, then an immediate alert evaluation so threshold
// breaches surface without waiting for the next scheduled sweep.
type Ingestor struct {
	Catalog   catalog.Service
	Occupancy occupancy.Tracker
	Readings  repository.ReadingRepository
	Alerts    alerts.Engine
	Logger    *zap.Logger
	Now       func() time.Time
}

func (in *Ingestor) now() time.Time {
	if in.Now != nil {
		return in.Now()
	}
	return time.Now().UTC()
}

// Ingest processes one report. The device must exist in the catalog.
func (in *Ingestor) Ingest(ctx context.Context, input Input) (*models.Device, error) {
	now := in.now()
	device, err := in.Catalog.MarkDeviceSeen(input.DeviceID, now)
	if err != nil {
		return nil, err
	}

	if input.CO2 != nil {
		if err := in.Readings.Upsert(&models.Reading{
			DeviceID:   device.ID,
			RoomID:     device.RoomID,
			CO2:        *input.CO2,
			RecordedAt: now,
		}); err != nil {
			return nil, err
		}
	}

	if input.Occupancy != nil && device.RoomID != "" {
		if _, err := in.Occupancy.SetCount(device.RoomID, *input.Occupancy); err != nil {
			return nil, err
		}
	}

	if err := in.Alerts.Evaluate(ctx); err != nil {
		// The report itself was applied; evaluation runs again on the next
		// sweep.
		in.Logger.Warn("post-telemetry evaluation failed", zap.Error(err))
	}
	return device, nil
}
