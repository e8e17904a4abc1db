// Package apperror holds the sentinel errors shared by the storage and
// transport helpers. Callers wrap them with context and match with errors.Is.
package apperror

import "errors"

var (
	ErrNotFound         = errors.New("record not found")
	ErrConflict         = errors.New("record conflicts with an existing one")
	ErrInvalidReference = errors.New("referenced record does not exist or is still referenced")
	ErrInvalidInput     = errors.New("invalid input")
)
