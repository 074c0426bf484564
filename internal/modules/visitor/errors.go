package visitor

import "errors"

var (
	ErrNotFound          = errors.New("visitor not found")
	ErrValidation        = errors.New("validation error")
	ErrAlreadyCheckedOut = errors.New("visitor already checked out")
)
