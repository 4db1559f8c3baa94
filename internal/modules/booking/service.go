package booking

import (
	"context"
	"errors"
	"time"

	"shareit/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	bookings BookingRepository
	items    ItemCatalog
	users    UserDirectory
}

func NewService(bookings BookingRepository, items ItemCatalog, users UserDirectory) *Service {
	return &Service{
		bookings: bookings,
		items:    items,
		users:    users,
	}
}

// Create runs every validator check and persists a WAITING booking.
func (s *Service) Create(ctx context.Context, bookerID int64, req CreateBookingRequest) (*domain.Booking, error) {
	ok, err := s.users.Exists(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrUserNotFound
	}

	item, err := s.items.GetByID(ctx, req.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}

	if err := ValidateDates(req.Start, req.End, time.Now()); err != nil {
		return nil, err
	}
	if err := ValidateOwnership(bookerID, item.OwnerID); err != nil {
		return nil, err
	}
	if err := ValidateAvailability(item.Available); err != nil {
		return nil, err
	}

	b := &domain.Booking{
		ItemID:   req.ItemID,
		BookerID: bookerID,
		Start:    req.Start,
		End:      req.End,
		Status:   domain.BookingWaiting,
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// SetApproval moves a WAITING booking to APPROVED or REJECTED. The
// transition is a conditional update; a concurrent decision on the same
// booking makes the loser observe ErrAlreadyDecided.
func (s *Service) SetApproval(ctx context.Context, ownerID, bookingID int64, approved bool) (*domain.Booking, error) {
	b, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	item, err := s.items.GetByID(ctx, b.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if item.OwnerID != ownerID {
		return nil, ErrNotOwner
	}

	if b.Status.Decided() {
		return nil, ErrAlreadyDecided
	}

	next := domain.BookingRejected
	if approved {
		next = domain.BookingApproved
	}

	swapped, err := s.bookings.CompareAndSetStatus(ctx, bookingID, domain.BookingWaiting, next)
	if err != nil {
		return nil, err
	}
	if !swapped {
		return nil, ErrAlreadyDecided
	}

	return s.loadBooking(ctx, bookingID)
}

// Cancel lets the booker withdraw a booking that has not been decided.
func (s *Service) Cancel(ctx context.Context, bookerID, bookingID int64) (*domain.Booking, error) {
	b, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.BookerID != bookerID {
		return nil, ErrNotBooker
	}
	if b.Status.Decided() {
		return nil, ErrAlreadyDecided
	}

	swapped, err := s.bookings.CompareAndSetStatus(ctx, bookingID, domain.BookingWaiting, domain.BookingCanceled)
	if err != nil {
		return nil, err
	}
	if !swapped {
		return nil, ErrAlreadyDecided
	}

	return s.loadBooking(ctx, bookingID)
}

// GetByID returns the booking only to the booker or the item owner.
func (s *Service) GetByID(ctx context.Context, requesterID, bookingID int64) (*domain.Booking, error) {
	b, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.BookerID == requesterID {
		return b, nil
	}

	item, err := s.items.GetByID(ctx, b.ItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	if item.OwnerID != requesterID {
		return nil, ErrAccessDenied
	}
	return b, nil
}

// ListForBooker returns the caller's bookings matching the derived state
// filter, most recent start first.
func (s *Service) ListForBooker(ctx context.Context, bookerID int64, state domain.StateFilter) ([]domain.Booking, error) {
	if err := s.requireUser(ctx, bookerID); err != nil {
		return nil, err
	}
	return s.bookings.ListByBooker(ctx, bookerID, state, time.Now())
}

// ListForOwner returns bookings of all items the caller owns, most
// recent start first.
func (s *Service) ListForOwner(ctx context.Context, ownerID int64, state domain.StateFilter) ([]domain.Booking, error) {
	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}
	return s.bookings.ListByItemOwner(ctx, ownerID, state, time.Now())
}

func (s *Service) loadBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return b, nil
}

func (s *Service) requireUser(ctx context.Context, id int64) error {
	ok, err := s.users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrUserNotFound
	}
	return nil
}
