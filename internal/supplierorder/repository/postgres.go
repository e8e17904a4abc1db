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

const orderColumns = `id, supplier_id, purchase_date, status`

func (r *PGRepository) Create(ctx context.Context, o *model.SupplierOrder) error {
	query := `
        INSERT INTO supplier_orders (supplier_id, purchase_date, status)
        VALUES (:supplier_id, :purchase_date, :status)
        RETURNING ` + orderColumns
	if err := postgres.NamedGet(ctx, r.DB, o, query, o); err != nil {
		return fmt.Errorf("insert supplier order: %w", postgres.TranslateError(err))
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.SupplierOrder, error) {
	var order model.SupplierOrder
	query := `SELECT ` + orderColumns + ` FROM supplier_orders WHERE id = $1`
	err := r.DB.GetContext(ctx, &order, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.SupplierOrder, error) {
	orders := []model.SupplierOrder{}
	query := `SELECT ` + orderColumns + ` FROM supplier_orders ORDER BY id`
	if err := r.DB.SelectContext(ctx, &orders, query); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *PGRepository) Update(ctx context.Context, o *model.SupplierOrder) error {
	query := `
        UPDATE supplier_orders
        SET supplier_id = :supplier_id,
            purchase_date = :purchase_date,
            status = :status
        WHERE id = :id
        RETURNING ` + orderColumns
	if err := postgres.NamedGet(ctx, r.DB, o, query, o); err != nil {
		return fmt.Errorf("update supplier order %d: %w", o.ID, postgres.TranslateError(err))
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	if err := postgres.ExecAffected(ctx, r.DB, `DELETE FROM supplier_orders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete supplier order %d: %w", id, postgres.TranslateError(err))
	}
	return nil
}

func (r *PGRepository) FindBySupplierName(ctx context.Context, name string) ([]model.SupplierOrderWithSupplier, error) {
	orders := []model.SupplierOrderWithSupplier{}
	query := `
        SELECT o.id, o.supplier_id, o.purchase_date, o.status, s.name AS supplier_name
        FROM supplier_orders o
        JOIN suppliers s ON s.id = o.supplier_id
        WHERE s.name = $1
        ORDER BY o.id
    `
	if err := r.DB.SelectContext(ctx, &orders, query, name); err != nil {
		return nil, err
	}
	return orders, nil
}
