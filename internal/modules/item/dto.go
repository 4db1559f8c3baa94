package item

import "shareit/internal/domain"

type CreateItemRequest struct {
	Name        string `json:"name" binding:"required" validate:"required"`
	Description string `json:"description" binding:"required" validate:"required"`
	Available   *bool  `json:"available" binding:"required" validate:"required"`
	RequestID   *int64 `json:"request_id,omitempty"`
}

// UpdateItemRequest is a patch: nil fields are left untouched.
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Available   *bool   `json:"available,omitempty"`
}

type CreateCommentRequest struct {
	Text string `json:"text" binding:"required" validate:"required"`
}

// ItemDetails is the read projection for a single item. Last and next
// bookings are visible to the owner only.
type ItemDetails struct {
	domain.Item
	Comments    []domain.Comment `json:"comments"`
	LastBooking *domain.Booking  `json:"last_booking,omitempty"`
	NextBooking *domain.Booking  `json:"next_booking,omitempty"`
}
