package interfaces

import (
	"context"

	"loja_xpto/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for Order.
//
// Lookup misses return a zero Order and a nil error; callers check ID == "".
// UpdatePayment replaces the whole payment sub-document in a single write so
// there is never a partially merged payment on disk.

type IOrderRepository interface {
	GetByID(ctx context.Context, id string) (entities.Order, error)
	GetByOrderNumber(ctx context.Context, orderNumber string) (entities.Order, error)
	UpdatePayment(ctx context.Context, orderID string, payment entities.Payment) (entities.Order, error)
}
