package patient

import "errors"

var (
	ErrPatientNotFound = errors.New("patient not found")
	ErrDuplicateID     = errors.New("duplicate patient id")
	ErrInvalidGender   = errors.New("invalid gender value")
	ErrInvalidAge      = errors.New("age cannot be negative")
)
