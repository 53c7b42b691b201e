package model

import "errors"

var (
	// ErrNotFound is returned by stores when no matching record exists.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned by stores on a uniqueness violation.
	ErrConflict = errors.New("record already exists")
)
