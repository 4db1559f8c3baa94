package request

import (
	"context"

	"shareit/internal/domain"
)

type RequestRepository interface {
	Create(ctx context.Context, req *domain.ItemRequest) error
	GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error)
	ListOthers(ctx context.Context, requesterID int64) ([]domain.ItemRequest, error)
}

// ItemFinder resolves the items listed as answers to requests.
type ItemFinder interface {
	ListByRequestIDs(ctx context.Context, requestIDs []int64) ([]domain.Item, error)
}

type UserDirectory interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
