package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"shareit/internal/domain"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

// memBookingStore is a minimal in-memory BookingRepository whose
// CompareAndSetStatus is atomic, so the approval race can be exercised
// for real instead of scripted through mocks.
type memBookingStore struct {
	mu       sync.Mutex
	bookings map[int64]domain.Booking
}

func newMemBookingStore() *memBookingStore {
	return &memBookingStore{bookings: make(map[int64]domain.Booking)}
}

func (s *memBookingStore) Create(_ context.Context, b *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = int64(len(s.bookings) + 1)
	s.bookings[b.ID] = *b
	return nil
}

func (s *memBookingStore) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := b
	return &out, nil
}

func (s *memBookingStore) CompareAndSetStatus(_ context.Context, id int64, expected, next domain.BookingStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok || b.Status != expected {
		return false, nil
	}
	b.Status = next
	s.bookings[id] = b
	return true, nil
}

func (s *memBookingStore) ListByBooker(context.Context, int64, domain.StateFilter, time.Time) ([]domain.Booking, error) {
	return nil, nil
}

func (s *memBookingStore) ListByItemOwner(context.Context, int64, domain.StateFilter, time.Time) ([]domain.Booking, error) {
	return nil, nil
}

type staticItemCatalog struct {
	item domain.Item
}

func (c staticItemCatalog) GetByID(context.Context, int64) (*domain.Item, error) {
	out := c.item
	return &out, nil
}

type allowAllUsers struct{}

func (allowAllUsers) Exists(context.Context, int64) (bool, error) { return true, nil }

func TestService_SetApproval_ConcurrentRace(t *testing.T) {
	store := newMemBookingStore()
	service := NewService(store, staticItemCatalog{item: domain.Item{ID: 10, OwnerID: 1, Available: true}}, allowAllUsers{})

	b := &domain.Booking{ItemID: 10, BookerID: 2, Status: domain.BookingWaiting}
	assert.NoError(t, store.Create(context.Background(), b))

	type outcome struct {
		booking *domain.Booking
		err     error
	}
	results := make(chan outcome, 2)

	var wg sync.WaitGroup
	for _, approve := range []bool{true, false} {
		wg.Add(1)
		go func(approve bool) {
			defer wg.Done()
			got, err := service.SetApproval(context.Background(), 1, b.ID, approve)
			results <- outcome{booking: got, err: err}
		}(approve)
	}
	wg.Wait()
	close(results)

	var wins, losses int
	var final domain.BookingStatus
	for r := range results {
		if r.err == nil {
			wins++
			final = r.booking.Status
		} else {
			losses++
			assert.ErrorIs(t, r.err, ErrAlreadyDecided)
		}
	}

	assert.Equal(t, 1, wins, "exactly one caller must win the race")
	assert.Equal(t, 1, losses, "exactly one caller must observe the conflict")

	stored, err := store.GetByID(context.Background(), b.ID)
	assert.NoError(t, err)
	assert.Equal(t, final, stored.Status, "stored status must match the winner's outcome")
	assert.True(t, stored.Status == domain.BookingApproved || stored.Status == domain.BookingRejected)
}
