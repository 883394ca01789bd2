package domain

import "errors"

var (
	// ErrInvalidConfiguration is returned when a vectorizer setting cannot be
	// applied, either at construction or to a particular document.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrNotFitted is returned by Transform before any successful Fit.
	ErrNotFitted = errors.New("vectorizer not fitted")
)
