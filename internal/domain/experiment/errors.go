package experiment

import "errors"

var (
	ErrExperimentNotFound = errors.New("experiment not found")
	ErrDuplicateID        = errors.New("duplicate experiment id")
	ErrInvalidStatus      = errors.New("invalid experiment status")
)
