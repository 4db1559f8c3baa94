package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"shareit/internal/database"
	"shareit/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func seedBooking(t *testing.T, repo *BookingRepository, itemID, bookerID int64, start, end time.Time, status domain.BookingStatus) *domain.Booking {
	t.Helper()
	b := &domain.Booking{
		ItemID:   itemID,
		BookerID: bookerID,
		Start:    start,
		End:      end,
		Status:   status,
	}
	require.NoError(t, repo.Create(context.Background(), b))
	return b
}

func TestBookingRepository_ListByBooker_StateFilters(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	const booker = int64(2)

	past := seedBooking(t, repo, 1, booker, now.Add(-72*time.Hour), now.Add(-48*time.Hour), domain.BookingApproved)
	current := seedBooking(t, repo, 1, booker, now.Add(-time.Hour), now.Add(time.Hour), domain.BookingApproved)
	future := seedBooking(t, repo, 1, booker, now.Add(24*time.Hour), now.Add(48*time.Hour), domain.BookingWaiting)
	farFuture := seedBooking(t, repo, 1, booker, now.Add(96*time.Hour), now.Add(120*time.Hour), domain.BookingRejected)

	all, err := repo.ListByBooker(ctx, booker, domain.StateAll, now)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, farFuture.ID, all[0].ID, "newest start first")
	assert.Equal(t, past.ID, all[3].ID)

	got, err := repo.ListByBooker(ctx, booker, domain.StateFuture, now)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, b := range got {
		assert.True(t, b.Start.After(now), "FUTURE admits only bookings starting strictly after now")
	}
	assert.Equal(t, farFuture.ID, got[0].ID)
	assert.Equal(t, future.ID, got[1].ID)

	got, err = repo.ListByBooker(ctx, booker, domain.StatePast, now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, past.ID, got[0].ID)

	got, err = repo.ListByBooker(ctx, booker, domain.StateCurrent, now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, current.ID, got[0].ID)

	got, err = repo.ListByBooker(ctx, booker, domain.StateWaiting, now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, future.ID, got[0].ID)

	got, err = repo.ListByBooker(ctx, booker, domain.StateRejected, now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, farFuture.ID, got[0].ID)
}

func TestBookingRepository_ListByItemOwner(t *testing.T) {
	db := openTestDB(t)
	bookings := NewBookingRepository(db)
	items := NewItemRepository(db)
	ctx := context.Background()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	mine := &domain.Item{Name: "Drill", Description: "Cordless", Available: true, OwnerID: 1}
	require.NoError(t, items.Create(ctx, mine))
	theirs := &domain.Item{Name: "Tent", Description: "4 person", Available: true, OwnerID: 9}
	require.NoError(t, items.Create(ctx, theirs))

	wanted := seedBooking(t, bookings, mine.ID, 2, now.Add(time.Hour), now.Add(2*time.Hour), domain.BookingWaiting)
	seedBooking(t, bookings, theirs.ID, 2, now.Add(time.Hour), now.Add(2*time.Hour), domain.BookingWaiting)

	got, err := bookings.ListByItemOwner(ctx, 1, domain.StateAll, now)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, wanted.ID, got[0].ID)
}

func TestBookingRepository_CompareAndSetStatus(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	now := time.Now()
	b := seedBooking(t, repo, 1, 2, now.Add(time.Hour), now.Add(2*time.Hour), domain.BookingWaiting)

	swapped, err := repo.CompareAndSetStatus(ctx, b.ID, domain.BookingWaiting, domain.BookingApproved)
	require.NoError(t, err)
	assert.True(t, swapped)

	// second decision loses: the stored status is no longer WAITING
	swapped, err = repo.CompareAndSetStatus(ctx, b.ID, domain.BookingWaiting, domain.BookingRejected)
	require.NoError(t, err)
	assert.False(t, swapped)

	got, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingApproved, got.Status)
}

func TestBookingRepository_HasFinishedApprovedBooking(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	// finished but rejected: no
	seedBooking(t, repo, 1, 2, now.Add(-48*time.Hour), now.Add(-24*time.Hour), domain.BookingRejected)
	ok, err := repo.HasFinishedApprovedBooking(ctx, 2, 1, now)
	require.NoError(t, err)
	assert.False(t, ok)

	// approved but still running: no
	seedBooking(t, repo, 1, 2, now.Add(-time.Hour), now.Add(time.Hour), domain.BookingApproved)
	ok, err = repo.HasFinishedApprovedBooking(ctx, 2, 1, now)
	require.NoError(t, err)
	assert.False(t, ok)

	// approved and already ended: yes
	seedBooking(t, repo, 1, 2, now.Add(-96*time.Hour), now.Add(-72*time.Hour), domain.BookingApproved)
	ok, err = repo.HasFinishedApprovedBooking(ctx, 2, 1, now)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBookingRepository_LastAndNextForItem(t *testing.T) {
	db := openTestDB(t)
	repo := NewBookingRepository(db)
	ctx := context.Background()

	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	last, err := repo.LastForItem(ctx, 1, now)
	require.NoError(t, err)
	assert.Nil(t, last, "no bookings yet")

	seedBooking(t, repo, 1, 2, now.Add(-96*time.Hour), now.Add(-72*time.Hour), domain.BookingApproved)
	recent := seedBooking(t, repo, 1, 3, now.Add(-2*time.Hour), now.Add(time.Hour), domain.BookingApproved)
	soon := seedBooking(t, repo, 1, 2, now.Add(24*time.Hour), now.Add(48*time.Hour), domain.BookingApproved)
	seedBooking(t, repo, 1, 3, now.Add(96*time.Hour), now.Add(120*time.Hour), domain.BookingApproved)
	// waiting bookings never surface in the projections
	seedBooking(t, repo, 1, 3, now.Add(time.Hour), now.Add(2*time.Hour), domain.BookingWaiting)

	last, err = repo.LastForItem(ctx, 1, now)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, recent.ID, last.ID)

	next, err := repo.NextForItem(ctx, 1, now)
	require.NoError(t, err)
	require.NotNil(t, next)
	assert.Equal(t, soon.ID, next.ID)
}
