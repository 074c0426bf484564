package student

import "errors"

var (
	ErrNotFound   = errors.New("student not found")
	ErrValidation = errors.New("validation error")
	ErrDuplicate  = errors.New("registration number or email already in use")
	ErrNoFields   = errors.New("no fields to update")
)
