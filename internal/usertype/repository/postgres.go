package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/comics-store-service/internal/model"
	"github.com/fekuna/comics-store-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, t *model.UserType) error {
	query := `INSERT INTO user_types (name) VALUES (:name) RETURNING id, name`
	if err := postgres.NamedGet(ctx, r.DB, t, query, t); err != nil {
		return fmt.Errorf("insert user type: %w", postgres.TranslateError(err))
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.UserType, error) {
	var t model.UserType
	err := r.DB.GetContext(ctx, &t, `SELECT id, name FROM user_types WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.UserType, error) {
	types := []model.UserType{}
	if err := r.DB.SelectContext(ctx, &types, `SELECT id, name FROM user_types ORDER BY id`); err != nil {
		return nil, err
	}
	return types, nil
}

func (r *PGRepository) Update(ctx context.Context, t *model.UserType) error {
	query := `UPDATE user_types SET name = :name WHERE id = :id RETURNING id, name`
	if err := postgres.NamedGet(ctx, r.DB, t, query, t); err != nil {
		return fmt.Errorf("update user type %d: %w", t.ID, postgres.TranslateError(err))
	}
	return nil
}

// Delete leaves users in place; their user_type_id is set to NULL by the
// foreign key.
func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	if err := postgres.ExecAffected(ctx, r.DB, `DELETE FROM user_types WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user type %d: %w", id, postgres.TranslateError(err))
	}
	return nil
}
