package todo

import "errors"

var (
	// ErrEmptyText indicates an Add with blank or whitespace-only text.
	ErrEmptyText = errors.New("todo text is empty")
)
