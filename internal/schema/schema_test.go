package schema

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatementsCoverEveryTable(t *testing.T) {
	stmts := Statements()
	tables := []string{"user_types", "users", "categories", "products", "suppliers", "supplier_orders", "customers", "purchase_details"}

	for _, table := range tables {
		found := false
		for _, s := range stmts {
			if regexp.MustCompile(`CREATE TABLE IF NOT EXISTS ` + table + ` \(`).MatchString(s) {
				found = true
				break
			}
		}
		assert.True(t, found, "missing table %s", table)
	}
	for _, s := range stmts {
		assert.Contains(t, s, "IF NOT EXISTS")
	}
}

func TestApplyRunsAllStatementsInOneTx(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer mockDB.Close()

	mock.ExpectBegin()
	for _, s := range Statements() {
		mock.ExpectExec(s).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectCommit()

	err = Apply(context.Background(), sqlx.NewDb(mockDB, "pgx"))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApplyRollsBackOnFailure(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer mockDB.Close()

	stmts := Statements()
	mock.ExpectBegin()
	mock.ExpectExec(stmts[0]).WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	err = Apply(context.Background(), sqlx.NewDb(mockDB, "pgx"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied")
	assert.NoError(t, mock.ExpectationsWereMet())
}
