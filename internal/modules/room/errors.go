package room

import "errors"

var (
	ErrNotFound   = errors.New("room not found")
	ErrValidation = errors.New("validation error")
	ErrNoFields   = errors.New("no fields to update")
)
