package item

import "errors"

var (
	ErrValidation        = errors.New("invalid item payload")
	ErrNotFound          = errors.New("item not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrForbidden         = errors.New("caller does not own the item")
	ErrCommentNotAllowed = errors.New("comment requires a finished approved booking")
)
