package user

import "errors"

var (
	ErrValidation = errors.New("invalid user payload")
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already in use")
)
