package postgres

import (
	"context"
	"database/sql"
	"strings"

	"github.com/jmoiron/sqlx"
)

// NamedGet runs a named statement that yields at most one row (typically an
// INSERT/UPDATE ... RETURNING) and scans it into dest. No row means
// sql.ErrNoRows. Errors raised by the server while streaming the row are
// surfaced from rows.Err, so constraint violations are not lost.
func NamedGet(ctx context.Context, db sqlx.ExtContext, dest interface{}, query string, arg interface{}) error {
	rows, err := sqlx.NamedQueryContext(ctx, db, query, arg)
	if err != nil {
		return err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return sql.ErrNoRows
	}
	if err := rows.StructScan(dest); err != nil {
		return err
	}
	return rows.Close()
}

// ExecAffected runs a statement and reports sql.ErrNoRows when nothing was
// touched.
func ExecAffected(ctx context.Context, db sqlx.ExecerContext, query string, args ...interface{}) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern turns s into an ILIKE pattern matching any value that
// contains s literally.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
