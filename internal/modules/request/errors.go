package request

import "errors"

var (
	ErrValidation   = errors.New("invalid request payload")
	ErrNotFound     = errors.New("item request not found")
	ErrUserNotFound = errors.New("user not found")
)
