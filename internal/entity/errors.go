package entity

import "errors"

var (
	// Request errors
	ErrMissingFields = errors.New("missing required fields")

	// Record errors
	ErrNotFound = errors.New("record not found")
)
