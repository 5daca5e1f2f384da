// File: workhub/database/snapshot.go
package database

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"workhub/database/memory"
)

const snapshotKey = "workhub:store:snapshot"

// Snapshotter persists the in-memory store to Redis in the background and
// restores it at boot. Core operations never touch Redis; snapshotting rides
// the periodic worker only.
type Snapshotter struct {
	Client *redis.Client
	Store  *memory.Store
	Logger *zap.Logger
}

// Save serializes the store and writes it under a single key. The snapshot
// has no TTL; the latest one always wins.
func (s *Snapshotter) Save(ctx context.Context) error {
	data, err := json.Marshal(s.Store.Export())
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.Client.Set(ctx, snapshotKey, data, 0).Err(); err != nil {
		return err
	}
	s.Logger.Debug("store snapshot saved", zap.Int("bytes", len(data)))
	return nil
}

// Restore loads the latest snapshot into the store. A missing key is not an
// error; the process simply starts empty.
func (s *Snapshotter) Restore(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	data, err := s.Client.Get(ctx, snapshotKey).Bytes()
	if err == redis.Nil {
		s.Logger.Info("no store snapshot found, starting empty")
		return nil
	}
	if err != nil {
		return err
	}
	var snap memory.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	s.Store.Restore(&snap)
	s.Logger.Info("store snapshot restored",
		zap.Int("rooms", len(snap.Rooms)),
		zap.Int("bookings", len(snap.Bookings)),
		zap.Int("alerts", len(snap.Alerts)))
	return nil
}
