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

const supplierColumns = `id, name, contact, phone, email`

func (r *PGRepository) Create(ctx context.Context, s *model.Supplier) error {
	query := `
        INSERT INTO suppliers (name, contact, phone, email)
        VALUES (:name, :contact, :phone, :email)
        RETURNING ` + supplierColumns
	if err := postgres.NamedGet(ctx, r.DB, s, query, s); err != nil {
		return fmt.Errorf("insert supplier: %w", postgres.TranslateError(err))
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Supplier, error) {
	var supplier model.Supplier
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE id = $1`
	err := r.DB.GetContext(ctx, &supplier, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &supplier, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Supplier, error) {
	suppliers := []model.Supplier{}
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY id`
	if err := r.DB.SelectContext(ctx, &suppliers, query); err != nil {
		return nil, err
	}
	return suppliers, nil
}

func (r *PGRepository) Update(ctx context.Context, s *model.Supplier) error {
	query := `
        UPDATE suppliers
        SET name = :name,
            contact = :contact,
            phone = :phone,
            email = :email
        WHERE id = :id
        RETURNING ` + supplierColumns
	if err := postgres.NamedGet(ctx, r.DB, s, query, s); err != nil {
		return fmt.Errorf("update supplier %d: %w", s.ID, postgres.TranslateError(err))
	}
	return nil
}

// Delete is refused with model.ErrInvalidReference while orders exist for
// the supplier.
func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	if err := postgres.ExecAffected(ctx, r.DB, `DELETE FROM suppliers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete supplier %d: %w", id, postgres.TranslateError(err))
	}
	return nil
}

func (r *PGRepository) SearchByName(ctx context.Context, name string) ([]model.Supplier, error) {
	suppliers := []model.Supplier{}
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE name ILIKE $1 ORDER BY id`
	if err := r.DB.SelectContext(ctx, &suppliers, query, postgres.ContainsPattern(name)); err != nil {
		return nil, err
	}
	return suppliers, nil
}
