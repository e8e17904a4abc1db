package model

import "github.com/fekuna/comics-store-service/pkg/apperror"

// Domain code matches against these; they are the same values the postgres
// and response helpers produce and inspect.
var (
	ErrNotFound         = apperror.ErrNotFound
	ErrConflict         = apperror.ErrConflict
	ErrInvalidReference = apperror.ErrInvalidReference
	ErrInvalidInput     = apperror.ErrInvalidInput
)
