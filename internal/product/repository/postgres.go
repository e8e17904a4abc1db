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

const productColumns = `id, name, description, price, category_id`

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (name, description, price, category_id)
        VALUES (:name, :description, :price, :category_id)
        RETURNING ` + productColumns
	if err := postgres.NamedGet(ctx, r.DB, p, query, p); err != nil {
		return fmt.Errorf("insert product: %w", postgres.TranslateError(err))
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Product, error) {
	var product model.Product
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	err := r.DB.GetContext(ctx, &product, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

// FindByIDs returns the products among ids that still exist, ordered by id.
func (r *PGRepository) FindByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	products := []model.Product{}
	if len(ids) == 0 {
		return products, nil
	}
	query, args, err := sqlx.In(`SELECT `+productColumns+` FROM products WHERE id IN (?) ORDER BY id`, ids)
	if err != nil {
		return nil, err
	}
	if err := r.DB.SelectContext(ctx, &products, r.DB.Rebind(query), args...); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	products := []model.Product{}
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	if err := r.DB.SelectContext(ctx, &products, query); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET name = :name,
            description = :description,
            price = :price,
            category_id = :category_id
        WHERE id = :id
        RETURNING ` + productColumns
	if err := postgres.NamedGet(ctx, r.DB, p, query, p); err != nil {
		return fmt.Errorf("update product %d: %w", p.ID, postgres.TranslateError(err))
	}
	return nil
}

// Delete fails with model.ErrInvalidReference while purchase details still
// point at the product.
func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	if err := postgres.ExecAffected(ctx, r.DB, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product %d: %w", id, postgres.TranslateError(err))
	}
	return nil
}

func (r *PGRepository) SearchByName(ctx context.Context, name string, limit int) ([]model.Product, error) {
	products := []model.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE name ILIKE $1 ORDER BY id LIMIT $2`
	if err := r.DB.SelectContext(ctx, &products, query, postgres.ContainsPattern(name), limit); err != nil {
		return nil, err
	}
	return products, nil
}

func (r *PGRepository) FindByCategory(ctx context.Context, categoryID int64) ([]model.Product, error) {
	products := []model.Product{}
	query := `SELECT ` + productColumns + ` FROM products WHERE category_id = $1 ORDER BY id`
	if err := r.DB.SelectContext(ctx, &products, query, categoryID); err != nil {
		return nil, err
	}
	return products, nil
}
