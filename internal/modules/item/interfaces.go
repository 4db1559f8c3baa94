package item

import (
	"context"
	"time"

	"shareit/internal/domain"
)

type ItemRepository interface {
	Create(ctx context.Context, i *domain.Item) error
	Update(ctx context.Context, i *domain.Item) error
	GetByID(ctx context.Context, id int64) (*domain.Item, error)
	ListByOwner(ctx context.Context, ownerID int64) ([]domain.Item, error)
	Search(ctx context.Context, text string) ([]domain.Item, error)
}

type CommentRepository interface {
	Create(ctx context.Context, c *domain.Comment) error
	ListByItem(ctx context.Context, itemID int64) ([]domain.Comment, error)
}

// BookingGate exposes the booking facts the item module needs: the
// comment eligibility check and the owner's last/next projections.
type BookingGate interface {
	HasFinishedApprovedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error)
	LastForItem(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error)
	NextForItem(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error)
}

type UserDirectory interface {
	Exists(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
