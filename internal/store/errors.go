package store

import "errors"

// ErrNotFound is returned when no reservation exists for the given id.
var ErrNotFound = errors.New("reservation not found")
