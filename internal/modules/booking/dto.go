package booking

import "time"

type CreateBookingRequest struct {
	ItemID int64     `json:"item_id" binding:"required" validate:"required,gt=0"`
	Start  time.Time `json:"start" binding:"required" validate:"required"`
	End    time.Time `json:"end" binding:"required" validate:"required"`
}
