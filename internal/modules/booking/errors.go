package booking

import "errors"

var (
	ErrInvalidDateRange = errors.New("invalid booking date range")
	ErrSelfBooking      = errors.New("owner cannot book own item")
	ErrItemUnavailable  = errors.New("item is not available")
	ErrUserNotFound     = errors.New("user not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAlreadyDecided   = errors.New("booking already decided")
	ErrNotOwner         = errors.New("caller does not own the item")
	ErrNotBooker        = errors.New("caller is not the booker")
	ErrAccessDenied     = errors.New("access denied")
)
