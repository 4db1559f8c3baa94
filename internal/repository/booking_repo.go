package repository

import (
	"context"
	"errors"
	"time"

	"shareit/internal/domain"

	"gorm.io/gorm"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	ItemID    int64     `gorm:"column:item_id;index"`
	BookerID  int64     `gorm:"column:booker_id;index"`
	StartAt   time.Time `gorm:"column:start_at"`
	EndAt     time.Time `gorm:"column:end_at"`
	Status    string    `gorm:"column:status;index"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:        m.ID,
		ItemID:    m.ItemID,
		BookerID:  m.BookerID,
		Start:     m.StartAt,
		End:       m.EndAt,
		Status:    domain.BookingStatus(m.Status),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:        b.ID,
		ItemID:    b.ItemID,
		BookerID:  b.BookerID,
		StartAt:   b.Start,
		EndAt:     b.End,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	m := toBookingModel(b)
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*b = *toDomainBooking(m)
	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// CompareAndSetStatus flips the status only when the stored value still
// equals expected. Returns false when another caller decided first.
func (r *BookingRepository) CompareAndSetStatus(ctx context.Context, id int64, expected, next domain.BookingStatus) (bool, error) {
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("id = ? AND status = ?", id, string(expected)).
		Updates(map[string]any{
			"status":     string(next),
			"updated_at": time.Now(),
		})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected == 1, nil
}

func (r *BookingRepository) ListByBooker(ctx context.Context, bookerID int64, state domain.StateFilter, now time.Time) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("booker_id = ?", bookerID)
	return r.listFiltered(q, state, now)
}

func (r *BookingRepository) ListByItemOwner(ctx context.Context, ownerID int64, state domain.StateFilter, now time.Time) ([]domain.Booking, error) {
	q := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Joins("JOIN items ON items.id = bookings.item_id").
		Where("items.owner_id = ?", ownerID)
	return r.listFiltered(q, state, now)
}

func (r *BookingRepository) listFiltered(q *gorm.DB, state domain.StateFilter, now time.Time) ([]domain.Booking, error) {
	switch state {
	case domain.StateCurrent:
		q = q.Where("bookings.start_at <= ? AND bookings.end_at >= ?", now, now)
	case domain.StatePast:
		q = q.Where("bookings.end_at < ?", now)
	case domain.StateFuture:
		q = q.Where("bookings.start_at > ?", now)
	case domain.StateWaiting:
		q = q.Where("bookings.status = ?", string(domain.BookingWaiting))
	case domain.StateRejected:
		q = q.Where("bookings.status = ?", string(domain.BookingRejected))
	}

	var ms []bookingModel
	if tx := q.Order("bookings.start_at DESC").Find(&ms); tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Booking, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainBooking(m))
	}
	return out, nil
}

// HasFinishedApprovedBooking reports whether the user has at least one
// APPROVED booking of the item that already ended. Gates comments.
func (r *BookingRepository) HasFinishedApprovedBooking(ctx context.Context, bookerID, itemID int64, now time.Time) (bool, error) {
	var cnt int64
	tx := r.db.WithContext(ctx).
		Model(&bookingModel{}).
		Where("booker_id = ? AND item_id = ? AND status = ? AND end_at < ?",
			bookerID, itemID, string(domain.BookingApproved), now).
		Count(&cnt)
	if tx.Error != nil {
		return false, tx.Error
	}
	return cnt > 0, nil
}

// LastForItem returns the most recent approved booking that already
// started, or nil when there is none.
func (r *BookingRepository) LastForItem(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ? AND start_at <= ?", itemID, string(domain.BookingApproved), now).
		Order("start_at DESC").
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// NextForItem returns the nearest approved booking in the future, or nil.
func (r *BookingRepository) NextForItem(ctx context.Context, itemID int64, now time.Time) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).
		Where("item_id = ? AND status = ? AND start_at > ?", itemID, string(domain.BookingApproved), now).
		Order("start_at ASC").
		First(&m)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}
