package item

import (
	"context"
	"errors"
	"strings"
	"time"

	"shareit/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	items    ItemRepository
	comments CommentRepository
	bookings BookingGate
	users    UserDirectory
}

func NewService(items ItemRepository, comments CommentRepository, bookings BookingGate, users UserDirectory) *Service {
	return &Service{
		items:    items,
		comments: comments,
		bookings: bookings,
		users:    users,
	}
}

func (s *Service) Create(ctx context.Context, ownerID int64, req CreateItemRequest) (*domain.Item, error) {
	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" || req.Available == nil {
		return nil, ErrValidation
	}

	i := &domain.Item{
		Name:        req.Name,
		Description: req.Description,
		Available:   *req.Available,
		OwnerID:     ownerID,
		RequestID:   req.RequestID,
	}
	if err := s.items.Create(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

// Update patches name, description and availability. Owner only.
func (s *Service) Update(ctx context.Context, ownerID, itemID int64, req UpdateItemRequest) (*domain.Item, error) {
	i, err := s.loadItem(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if i.OwnerID != ownerID {
		return nil, ErrForbidden
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrValidation
		}
		i.Name = *req.Name
	}
	if req.Description != nil {
		if strings.TrimSpace(*req.Description) == "" {
			return nil, ErrValidation
		}
		i.Description = *req.Description
	}
	if req.Available != nil {
		i.Available = *req.Available
	}

	if err := s.items.Update(ctx, i); err != nil {
		return nil, err
	}
	return i, nil
}

// GetByID returns the item with its comments; when the requester owns
// the item the last/next approved bookings are attached as well.
func (s *Service) GetByID(ctx context.Context, requesterID, itemID int64) (*ItemDetails, error) {
	i, err := s.loadItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	details, err := s.details(ctx, i, requesterID == i.OwnerID)
	if err != nil {
		return nil, err
	}
	return details, nil
}

// ListByOwner returns the caller's items with booking projections.
func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]ItemDetails, error) {
	if err := s.requireUser(ctx, ownerID); err != nil {
		return nil, err
	}

	items, err := s.items.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	out := make([]ItemDetails, 0, len(items))
	for idx := range items {
		d, err := s.details(ctx, &items[idx], true)
		if err != nil {
			return nil, err
		}
		out = append(out, *d)
	}
	return out, nil
}

// Search matches available items by substring; a blank query returns an
// empty list without touching storage.
func (s *Service) Search(ctx context.Context, text string) ([]domain.Item, error) {
	if strings.TrimSpace(text) == "" {
		return []domain.Item{}, nil
	}
	return s.items.Search(ctx, text)
}

// AddComment accepts a comment only from an author with an APPROVED
// booking of the item that already ended.
func (s *Service) AddComment(ctx context.Context, authorID, itemID int64, req CreateCommentRequest) (*domain.Comment, error) {
	if strings.TrimSpace(req.Text) == "" {
		return nil, ErrValidation
	}

	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	if _, err := s.loadItem(ctx, itemID); err != nil {
		return nil, err
	}

	ok, err := s.bookings.HasFinishedApprovedBooking(ctx, authorID, itemID, time.Now())
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrCommentNotAllowed
	}

	c := &domain.Comment{
		Text:      req.Text,
		ItemID:    itemID,
		AuthorID:  authorID,
		CreatedAt: time.Now(),
	}
	if err := s.comments.Create(ctx, c); err != nil {
		return nil, err
	}
	c.AuthorName = author.Name
	return c, nil
}

func (s *Service) details(ctx context.Context, i *domain.Item, ownerView bool) (*ItemDetails, error) {
	comments, err := s.comments.ListByItem(ctx, i.ID)
	if err != nil {
		return nil, err
	}

	d := &ItemDetails{Item: *i, Comments: comments}
	if !ownerView {
		return d, nil
	}

	now := time.Now()
	if d.LastBooking, err = s.bookings.LastForItem(ctx, i.ID, now); err != nil {
		return nil, err
	}
	if d.NextBooking, err = s.bookings.NextForItem(ctx, i.ID, now); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *Service) loadItem(ctx context.Context, id int64) (*domain.Item, error) {
	i, err := s.items.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return i, nil
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
