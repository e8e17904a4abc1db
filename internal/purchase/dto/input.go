package dto

import "github.com/shopspring/decimal"

type PurchaseInput struct {
	ProductID  int64
	Quantity   int
	UnitPrice  decimal.Decimal
	CustomerID *int64
}
