// File: workhub/database/memory/store_test.go
package memory

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"workhub/database/repository"
	"workhub/models"
)

func TestUserRepoBadgeUniqueness(t *testing.T) {
	repo := NewUserRepo()
	require.NoError(t, repo.Create(&models.User{ID: "u-1", BadgeID: "badge-1"}))

	err := repo.Create(&models.User{ID: "u-2", BadgeID: "badge-1"})
	assert.ErrorIs(t, err, repository.ErrDuplicate)

	u, err := repo.GetByBadge("badge-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
}

func TestBookingRepoListBlocking(t *testing.T) {
	repo := NewBookingRepo()
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	mk := func(id, status string) *models.Booking {
		return &models.Booking{
			ID: id, UserID: "u-1", ResourceType: models.ResourceRoom, ResourceID: "r-1",
			StartTime: now, EndTime: now.Add(time.Hour), Status: status,
		}
	}
	require.NoError(t, repo.Create(mk("b-1", models.BookingPending)))
	require.NoError(t, repo.Create(mk("b-2", models.BookingActive)))
	require.NoError(t, repo.Create(mk("b-3", models.BookingCancelled)))
	require.NoError(t, repo.Create(mk("b-4", models.BookingCompleted)))

	blocking, err := repo.ListBlocking(models.ResourceRoom, "r-1")
	require.NoError(t, err)
	assert.Len(t, blocking, 2)

	// A booking released via Update drops out of the blocking set.
	b, err := repo.GetByID("b-1")
	require.NoError(t, err)
	b.Status = models.BookingCancelled
	require.NoError(t, repo.Update(b))

	blocking, err = repo.ListBlocking(models.ResourceRoom, "r-1")
	require.NoError(t, err)
	assert.Len(t, blocking, 1)
}

func TestAlertRepoOpenIndex(t *testing.T) {
	repo := NewAlertRepo()
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	a := &models.Alert{
		ID: "a-1", Type: models.AlertHighCO2, Severity: models.SeverityHigh,
		RoomID: "r-1", Title: "x", CreatedAt: now,
	}
	require.NoError(t, repo.Create(a))

	found, err := repo.FindOpen(a.TargetKey())
	require.NoError(t, err)
	assert.Equal(t, "a-1", found.ID)

	a.Resolved = true
	a.ResolvedAt = &now
	require.NoError(t, repo.Update(a))

	_, err = repo.FindOpen(a.TargetKey())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSnapshotRoundTrip(t *testing.T) {
	store := NewStore()
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	require.NoError(t, store.Users.Create(&models.User{ID: "u-1", Name: "Dana", BadgeID: "badge-1"}))
	require.NoError(t, store.Rooms.Create(&models.Room{ID: "r-1", Name: "Room 1", Capacity: 8, Active: true}))
	require.NoError(t, store.Bookings.Create(&models.Booking{
		ID: "b-1", UserID: "u-1", ResourceType: models.ResourceRoom, ResourceID: "r-1",
		StartTime: now, EndTime: now.Add(time.Hour), Status: models.BookingPending,
	}))
	require.NoError(t, store.Alerts.Create(&models.Alert{
		ID: "a-1", Type: models.AlertOverCapacity, Severity: models.SeverityHigh,
		RoomID: "r-1", Title: "x", CreatedAt: now,
	}))

	restored := NewStore()
	restored.Restore(store.Export())

	u, err := restored.Users.GetByBadge("badge-1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)

	blocking, err := restored.Bookings.ListBlocking(models.ResourceRoom, "r-1")
	require.NoError(t, err)
	assert.Len(t, blocking, 1)

	found, err := restored.Alerts.FindOpen((&models.Alert{Type: models.AlertOverCapacity, RoomID: "r-1"}).TargetKey())
	require.NoError(t, err)
	assert.Equal(t, "a-1", found.ID)
}

func TestWithResourceLockSerializes(t *testing.T) {
	store := NewStore()
	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.WithResourceLock("room:r-1", func() error {
				v := counter
				counter = v + 1
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, counter)
}
