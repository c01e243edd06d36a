package store

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation covers empty titles, duplicate or empty category
	// names, empty selection sets and malformed import payloads.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound means the referenced id is absent from the store.
	ErrNotFound = errors.New("not found")

	// ErrInvalidOperation means the operation is not permitted in the
	// store's current state, e.g. reordering a filtered view.
	ErrInvalidOperation = errors.New("invalid operation")

	// ErrCategoryInUse blocks deletion of a category that tasks still
	// reference. Unwrapped from CategoryInUseError.
	ErrCategoryInUse = errors.New("category in use")
)

// CategoryInUseError carries the exact number of tasks still
// referencing the category so callers can surface it.
type CategoryInUseError struct {
	Name  string
	Count int
}

func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("category %q is used by %d tasks", e.Name, e.Count)
}

func (e *CategoryInUseError) Unwrap() error { return ErrCategoryInUse }
