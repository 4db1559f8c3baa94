package domain

import "time"

// ItemRequest is a public ask for an item nobody has listed yet.
// Items answering it point back via Item.RequestID.
type ItemRequest struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequesterID int64     `json:"requester_id"`
	CreatedAt   time.Time `json:"created_at"`
}
