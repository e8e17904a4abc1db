package model

import "time"

type Supplier struct {
	ID      int64  `db:"id" json:"id"`
	Name    string `db:"name" json:"name"`
	Contact string `db:"contact" json:"contact"`
	Phone   string `db:"phone" json:"phone"`
	Email   string `db:"email" json:"email"`
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pendiente"
	OrderStatusReceived  OrderStatus = "recibido"
	OrderStatusCancelled OrderStatus = "cancelado"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusReceived, OrderStatusCancelled:
		return true
	}
	return false
}

type SupplierOrder struct {
	ID           int64       `db:"id" json:"id"`
	SupplierID   int64       `db:"supplier_id" json:"supplier_id"`
	PurchaseDate time.Time   `db:"purchase_date" json:"purchase_date"`
	Status       OrderStatus `db:"status" json:"status"`
}

// SupplierOrderWithSupplier is a row of the orders ⋈ suppliers join.
type SupplierOrderWithSupplier struct {
	SupplierOrder
	SupplierName string `db:"supplier_name" json:"supplier_name"`
}
