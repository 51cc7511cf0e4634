package model

import "errors"

var (
	// ErrNotFound is returned when a stored key or a task does not exist.
	ErrNotFound = errors.New("not found")
	// ErrNotValid is returned when a task, a setting or a storage key is not valid.
	ErrNotValid = errors.New("not valid")
)
