package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/fekuna/comics-store-service/internal/model"
	"github.com/fekuna/comics-store-service/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryCreateAndFind(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewPGRepository(db)
	cols := []string{"id", "name", "description"}

	mock.ExpectQuery(`INSERT INTO categories`).WithArgs("Manga", "...").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(4, "Manga", "..."))
	c := &model.Category{Name: "Manga", Description: "..."}
	require.NoError(t, repo.Create(context.Background(), c))
	assert.Equal(t, int64(4), c.ID)

	mock.ExpectQuery(`SELECT id, name, description FROM categories WHERE id = \$1`).WithArgs(int64(4)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(4, "Manga", "..."))
	got, err := repo.FindByID(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestCategoryUpdateAndDeleteMissing(t *testing.T) {
	db, mock := testutil.NewMockDB(t)
	repo := NewPGRepository(db)

	mock.ExpectQuery(`UPDATE categories`).WithArgs("X", "", int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "description"}))
	assert.ErrorIs(t, repo.Update(context.Background(), &model.Category{ID: 8, Name: "X"}), model.ErrNotFound)

	mock.ExpectExec(`DELETE FROM categories WHERE id = \$1`).WithArgs(int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.Delete(context.Background(), 8), model.ErrNotFound)
}
