package repository

import (
	"context"
	"time"

	"shareit/internal/domain"

	"gorm.io/gorm"
)

type RequestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) *RequestRepository {
	return &RequestRepository{db: db}
}

type requestModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Description string    `gorm:"column:description"`
	RequesterID int64     `gorm:"column:requester_id;index"`
	CreatedAt   time.Time `gorm:"column:created_at"`
}

func (requestModel) TableName() string { return "item_requests" }

func toDomainRequest(m requestModel) *domain.ItemRequest {
	return &domain.ItemRequest{
		ID:          m.ID,
		Description: m.Description,
		RequesterID: m.RequesterID,
		CreatedAt:   m.CreatedAt,
	}
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.ItemRequest) error {
	m := requestModel{
		Description: req.Description,
		RequesterID: req.RequesterID,
		CreatedAt:   req.CreatedAt,
	}
	if tx := r.db.WithContext(ctx).Create(&m); tx.Error != nil {
		return tx.Error
	}
	*req = *toDomainRequest(m)
	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	var m requestModel
	if tx := r.db.WithContext(ctx).First(&m, id); tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRequest(m), nil
}

func (r *RequestRepository) ListByRequester(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error) {
	var ms []requestModel
	tx := r.db.WithContext(ctx).
		Where("requester_id = ?", requesterID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRequests(ms), nil
}

// ListOthers returns everyone else's requests, newest first.
func (r *RequestRepository) ListOthers(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error) {
	var ms []requestModel
	tx := r.db.WithContext(ctx).
		Where("requester_id <> ?", requesterID).
		Order("created_at DESC").
		Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRequests(ms), nil
}

func toDomainRequests(ms []requestModel) []domain.ItemRequest {
	out := make([]domain.ItemRequest, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainRequest(m))
	}
	return out
}
