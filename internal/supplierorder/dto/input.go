package dto

import (
	"time"

	"github.com/fekuna/comics-store-service/internal/model"
)

// OrderInput carries a supplier order write. A nil PurchaseDate means now and
// an empty Status means pendiente.
type OrderInput struct {
	SupplierID   int64
	PurchaseDate *time.Time
	Status       model.OrderStatus
}
