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

const customerColumns = `id, user_id, phone, address, registration_date`

// Create relies on customers_user_id_key: one customer profile per user.
func (r *PGRepository) Create(ctx context.Context, c *model.Customer) error {
	query := `
        INSERT INTO customers (user_id, phone, address, registration_date)
        VALUES (:user_id, :phone, :address, :registration_date)
        RETURNING ` + customerColumns
	if err := postgres.NamedGet(ctx, r.DB, c, query, c); err != nil {
		return fmt.Errorf("insert customer: %w", postgres.TranslateError(err))
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Customer, error) {
	var customer model.Customer
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1`
	err := r.DB.GetContext(ctx, &customer, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Customer, error) {
	customers := []model.Customer{}
	query := `SELECT ` + customerColumns + ` FROM customers ORDER BY id`
	if err := r.DB.SelectContext(ctx, &customers, query); err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *PGRepository) Update(ctx context.Context, c *model.Customer) error {
	query := `
        UPDATE customers
        SET user_id = :user_id,
            phone = :phone,
            address = :address,
            registration_date = :registration_date
        WHERE id = :id
        RETURNING ` + customerColumns
	if err := postgres.NamedGet(ctx, r.DB, c, query, c); err != nil {
		return fmt.Errorf("update customer %d: %w", c.ID, postgres.TranslateError(err))
	}
	return nil
}

// Delete leaves the customer's purchase details in place with customer_id
// cleared.
func (r *PGRepository) Delete(ctx context.Context, id int64) error {
	if err := postgres.ExecAffected(ctx, r.DB, `DELETE FROM customers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete customer %d: %w", id, postgres.TranslateError(err))
	}
	return nil
}
