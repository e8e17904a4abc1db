package dto

import "github.com/shopspring/decimal"

type CreateProductInput struct {
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  *int64
}

type UpdateProductInput struct {
	ID          int64
	Name        string
	Description string
	Price       decimal.Decimal
	CategoryID  *int64
}
