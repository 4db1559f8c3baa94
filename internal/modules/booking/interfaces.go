package booking

import (
	"context"
	"time"

	"shareit/internal/domain"
)

// BookingRepository is the storage contract the lifecycle service needs.
type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	CompareAndSetStatus(ctx context.Context, id int64, expected, next domain.BookingStatus) (bool, error)
	ListByBooker(ctx context.Context, bookerID int64, state domain.StateFilter, now time.Time) ([]domain.Booking, error)
	ListByItemOwner(ctx context.Context, ownerID int64, state domain.StateFilter, now time.Time) ([]domain.Booking, error)
}

// ItemCatalog resolves an item to its owner and availability flag.
type ItemCatalog interface {
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
}

// UserDirectory answers existence checks for user ids.
type UserDirectory interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
