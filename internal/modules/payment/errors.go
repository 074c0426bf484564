package payment

import "errors"

var (
	ErrNotFound       = errors.New("payment not found")
	ErrValidation     = errors.New("validation error")
	ErrStudentMissing = errors.New("student not found")
	ErrNoFields       = errors.New("no fields to update")
)
