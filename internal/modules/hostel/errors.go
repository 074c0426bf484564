package hostel

import "errors"

var (
	ErrNotFound   = errors.New("hostel not found")
	ErrValidation = errors.New("validation error")
	ErrNoFields   = errors.New("no fields to update")
)
