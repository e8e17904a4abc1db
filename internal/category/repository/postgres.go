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

func (r *PGRepository) Create(ctx context.Context, c *model.Category) error {
	query := `
        INSERT INTO categories (name, description)
        VALUES (:name, :description)
        RETURNING id, name, description
    `
	if err := postgres.NamedGet(ctx, r.DB, c, query, c); err != nil {
		return fmt.Errorf("insert category: %w", postgres.TranslateError(err))
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Category, error) {
	var category model.Category
	query := `SELECT id, name, description FROM categories WHERE id = $1`
	err := r.DB.GetContext(ctx, &category, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &category, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Category, error) {
	categories := []model.Category{}
	query := `SELECT id, name, description FROM categories ORDER BY id`
	if err := r.DB.SelectContext(ctx, &categories, query); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *PGRepository) Update(ctx context.Context, c *model.Category) error {
	query := `
        UPDATE categories
        SET name = :name,
            description = :description
        WHERE id = :id
        RETURNING id, name, description
    `
	if err := postgres.NamedGet(ctx, r.DB, c, query, c); err != nil {
		return fmt.Errorf("update category %d: %w", c.ID, postgres.TranslateError(err))
	}
	return nil
}

// Delete detaches the category's products (category_id becomes NULL).
func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	if err := postgres.ExecAffected(ctx, r.DB, "DELETE FROM categories WHERE id = $1", id); err != nil {
		return fmt.Errorf("delete category %d: %w", id, postgres.TranslateError(err))
	}
	return nil
}
