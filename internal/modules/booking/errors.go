package booking

import "errors"

var (
	ErrNotFound                = errors.New("booking not found")
	ErrValidation              = errors.New("validation error")
	ErrConflict                = errors.New("room already booked for this period")
	ErrInvalidStatusTransition = errors.New("invalid booking status transition")
	ErrNoFields                = errors.New("no fields to update")
)
