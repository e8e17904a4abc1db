package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/fekuna/comics-store-service/pkg/apperror"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestTranslateError(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", sql.ErrNoRows, apperror.ErrNotFound},
		{"wrapped no rows", fmt.Errorf("get: %w", sql.ErrNoRows), apperror.ErrNotFound},
		{"unique", &pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"}, apperror.ErrConflict},
		{"foreign key", &pgconn.PgError{Code: "23503"}, apperror.ErrInvalidReference},
		{"check", &pgconn.PgError{Code: "23514"}, apperror.ErrInvalidInput},
		{"unrelated pg error", &pgconn.PgError{Code: "42P01"}, nil},
		{"other", other, other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TranslateError(tt.in)
			switch {
			case tt.in == nil:
				assert.NoError(t, got)
			case tt.want == nil:
				assert.Equal(t, tt.in, got)
			default:
				assert.ErrorIs(t, got, tt.want)
			}
		})
	}
}

func TestConstraintName(t *testing.T) {
	err := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505", ConstraintName: "customers_user_id_key"})

	assert.Equal(t, "customers_user_id_key", ConstraintName(err))
	assert.Empty(t, ConstraintName(errors.New("plain")))
}

func TestTranslateErrorKeepsConstraintName(t *testing.T) {
	err := TranslateError(&pgconn.PgError{Code: "23505", ConstraintName: "customers_user_id_key"})

	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Equal(t, "customers_user_id_key", ConstraintName(err))
	assert.Contains(t, err.Error(), apperror.ErrConflict.Error())
}

func TestDSN(t *testing.T) {
	cfg := &Config{Host: "db", Port: "5432", User: "u", Password: "p", DBName: "comics", SSLMode: "disable"}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=comics sslmode=disable", cfg.DSN())
}
