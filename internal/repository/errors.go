package repository

import "errors"

var (
	// ErrNotFound is returned when the slot has never been written or was cleared
	ErrNotFound = errors.New("slot not found")

	// ErrCorrupt is returned when the slot exists but its contents cannot be decoded
	ErrCorrupt = errors.New("slot data is corrupt")
)
