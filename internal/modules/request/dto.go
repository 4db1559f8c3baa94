package request

import "shareit/internal/domain"

type CreateRequestRequest struct {
	Description string `json:"description" binding:"required" validate:"required"`
}

// RequestWithAnswers pairs a request with the items offered against it.
type RequestWithAnswers struct {
	domain.ItemRequest
	Items []domain.Item `json:"items"`
}
