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

const userColumns = `id, name, email, password_hash, user_type_id`

// Create relies on the users_email_key constraint for email uniqueness; a
// violation comes back as model.ErrConflict.
func (r *PGRepository) Create(ctx context.Context, u *model.User) error {
	query := `
        INSERT INTO users (name, email, password_hash, user_type_id)
        VALUES (:name, :email, :password_hash, :user_type_id)
        RETURNING ` + userColumns
	if err := postgres.NamedGet(ctx, r.DB, u, query, u); err != nil {
		return fmt.Errorf("insert user: %w", postgres.TranslateError(err))
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.User, error) {
	var user model.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.User, error) {
	users := []model.User{}
	query := `SELECT ` + userColumns + ` FROM users ORDER BY id`
	if err := r.DB.SelectContext(ctx, &users, query); err != nil {
		return nil, err
	}
	return users, nil
}

// Update overwrites every mutable column in one statement.
func (r *PGRepository) Update(ctx context.Context, u *model.User) error {
	query := `
        UPDATE users
        SET name = :name,
            email = :email,
            password_hash = :password_hash,
            user_type_id = :user_type_id
        WHERE id = :id
        RETURNING ` + userColumns
	if err := postgres.NamedGet(ctx, r.DB, u, query, u); err != nil {
		return fmt.Errorf("update user %d: %w", u.ID, postgres.TranslateError(err))
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	if err := postgres.ExecAffected(ctx, r.DB, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user %d: %w", id, postgres.TranslateError(err))
	}
	return nil
}
