package request

import (
	"context"
	"errors"
	"strings"
	"time"

	"shareit/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	requests RequestRepository
	items    ItemFinder
	users    UserDirectory
}

func NewService(requests RequestRepository, items ItemFinder, users UserDirectory) *Service {
	return &Service{
		requests: requests,
		items:    items,
		users:    users,
	}
}

func (s *Service) Create(ctx context.Context, requesterID int64, req CreateRequestRequest) (*domain.ItemRequest, error) {
	if err := s.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(req.Description) == "" {
		return nil, ErrValidation
	}

	r := &domain.ItemRequest{
		Description: req.Description,
		RequesterID: requesterID,
		CreatedAt:   time.Now(),
	}
	if err := s.requests.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// ListOwn returns the caller's requests, newest first, each with the
// items offered against it.
func (s *Service) ListOwn(ctx context.Context, requesterID int64) ([]RequestWithAnswers, error) {
	if err := s.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}

	reqs, err := s.requests.ListByRequester(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return s.withAnswers(ctx, reqs)
}

// ListOthers returns everyone else's requests, newest first.
func (s *Service) ListOthers(ctx context.Context, requesterID int64) ([]RequestWithAnswers, error) {
	if err := s.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}

	reqs, err := s.requests.ListOthers(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return s.withAnswers(ctx, reqs)
}

func (s *Service) GetByID(ctx context.Context, requesterID, requestID int64) (*RequestWithAnswers, error) {
	if err := s.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}

	r, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	out, err := s.withAnswers(ctx, []domain.ItemRequest{*r})
	if err != nil {
		return nil, err
	}
	return &out[0], nil
}

func (s *Service) withAnswers(ctx context.Context, reqs []domain.ItemRequest) ([]RequestWithAnswers, error) {
	ids := make([]int64, 0, len(reqs))
	for _, r := range reqs {
		ids = append(ids, r.ID)
	}

	items, err := s.items.ListByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byRequest := make(map[int64][]domain.Item, len(reqs))
	for _, i := range items {
		if i.RequestID == nil {
			continue
		}
		byRequest[*i.RequestID] = append(byRequest[*i.RequestID], i)
	}

	out := make([]RequestWithAnswers, 0, len(reqs))
	for _, r := range reqs {
		answers := byRequest[r.ID]
		if answers == nil {
			answers = []domain.Item{}
		}
		out = append(out, RequestWithAnswers{ItemRequest: r, Items: answers})
	}
	return out, nil
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
