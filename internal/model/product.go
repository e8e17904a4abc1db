package model

import "github.com/shopspring/decimal"

func init() {
	// Prices go out as JSON numbers (9.99), not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID          int64           `db:"id" json:"id"`
	Name        string          `db:"name" json:"name"`
	Description string          `db:"description" json:"description"`
	Price       decimal.Decimal `db:"price" json:"price"`
	CategoryID  *int64          `db:"category_id" json:"category_id"` // Nullable
}
