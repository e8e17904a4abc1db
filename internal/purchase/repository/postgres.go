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

const detailColumns = `id, product_id, quantity, unit_price, customer_id`

func (r *PGRepository) Create(ctx context.Context, d *model.PurchaseDetail) error {
	query := `
        INSERT INTO purchase_details (product_id, quantity, unit_price, customer_id)
        VALUES (:product_id, :quantity, :unit_price, :customer_id)
        RETURNING ` + detailColumns
	if err := postgres.NamedGet(ctx, r.DB, d, query, d); err != nil {
		return fmt.Errorf("insert purchase detail: %w", postgres.TranslateError(err))
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.PurchaseDetail, error) {
	var detail model.PurchaseDetail
	query := `SELECT ` + detailColumns + ` FROM purchase_details WHERE id = $1`
	err := r.DB.GetContext(ctx, &detail, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &detail, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.PurchaseDetail, error) {
	details := []model.PurchaseDetail{}
	query := `SELECT ` + detailColumns + ` FROM purchase_details ORDER BY id`
	if err := r.DB.SelectContext(ctx, &details, query); err != nil {
		return nil, err
	}
	return details, nil
}

func (r *PGRepository) Update(ctx context.Context, d *model.PurchaseDetail) error {
	query := `
        UPDATE purchase_details
        SET product_id = :product_id,
            quantity = :quantity,
            unit_price = :unit_price,
            customer_id = :customer_id
        WHERE id = :id
        RETURNING ` + detailColumns
	if err := postgres.NamedGet(ctx, r.DB, d, query, d); err != nil {
		return fmt.Errorf("update purchase detail %d: %w", d.ID, postgres.TranslateError(err))
	}
	return nil
}

func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	if err := postgres.ExecAffected(ctx, r.DB, `DELETE FROM purchase_details WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete purchase detail %d: %w", id, postgres.TranslateError(err))
	}
	return nil
}

func (r *PGRepository) FindByCustomer(ctx context.Context, customerID int64) ([]model.PurchaseDetail, error) {
	details := []model.PurchaseDetail{}
	query := `SELECT ` + detailColumns + ` FROM purchase_details WHERE customer_id = $1 ORDER BY id`
	if err := r.DB.SelectContext(ctx, &details, query, customerID); err != nil {
		return nil, err
	}
	return details, nil
}
