package gateway

import "time"

// Request shapes the gateway re-validates before forwarding. They mirror
// the main service DTOs but carry only validation concerns.

type CreateUserRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

type CreateItemRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description" validate:"required"`
	Available   *bool  `json:"available" validate:"required"`
	RequestID   *int64 `json:"request_id,omitempty" validate:"omitempty,gt=0"`
}

type CreateBookingRequest struct {
	ItemID int64     `json:"item_id" validate:"required,gt=0"`
	Start  time.Time `json:"start" validate:"required"`
	End    time.Time `json:"end" validate:"required,gtfield=Start"`
}

type CreateRequestRequest struct {
	Description string `json:"description" validate:"required"`
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}
