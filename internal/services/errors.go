package services

import "errors"

var (
	// ErrNotFound reports that a referenced entity id does not resolve.
	ErrNotFound = errors.New("not found")

	// ErrConflict reports a rental date-range overlap or a uniqueness
	// violation.
	ErrConflict = errors.New("conflict")
)
