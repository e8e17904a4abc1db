package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/comics-store-service/pkg/apperror"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres SQLSTATE codes the service reacts to.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
)

// TranslateError maps driver errors onto apperror sentinels. The driver error
// stays in the chain, so ConstraintName still works on the result.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperror.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %w", apperror.ErrConflict, pgErr)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: %w", apperror.ErrInvalidReference, pgErr)
		case codeCheckViolation:
			return fmt.Errorf("%w: %w", apperror.ErrInvalidInput, pgErr)
		}
	}
	return err
}

// ConstraintName returns the violated constraint, or "" when err is not a
// constraint violation reported by Postgres.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}
