package models

import "errors"

var (
	// ErrNotFound is returned when a task id is not in the store.
	ErrNotFound = errors.New("not found")
	// ErrNotValid is returned when user input or stored data is not valid.
	ErrNotValid = errors.New("not valid")
)
