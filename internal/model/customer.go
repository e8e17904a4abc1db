package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Customer struct {
	ID               int64     `db:"id" json:"id"`
	UserID           int64     `db:"user_id" json:"user_id"`
	Phone            string    `db:"phone" json:"phone"`
	Address          string    `db:"address" json:"address"`
	RegistrationDate time.Time `db:"registration_date" json:"registration_date"`
}

// PurchaseDetail is one sold line: a product, how many, at what unit price.
type PurchaseDetail struct {
	ID         int64           `db:"id" json:"id"`
	ProductID  int64           `db:"product_id" json:"product_id"`
	Quantity   int             `db:"quantity" json:"quantity"`
	UnitPrice  decimal.Decimal `db:"unit_price" json:"unit_price"`
	CustomerID *int64          `db:"customer_id" json:"customer_id"` // Nullable
}
