package usecase

import (
	"context"
	"errors"
	"strings"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"
)

var ErrInvalidOrderNumber = errors.New("invalid order number")

// IOrderPaymentUseCase exposes the payment-state read the storefront polls
// after redirecting the customer to the gateway.

type IOrderPaymentUseCase interface {
	GetByOrderNumber(ctx context.Context, orderNumber string) (entities.Order, error)
}

type OrderPaymentUseCase struct {
	orders interfaces.IOrderRepository
}

var _ IOrderPaymentUseCase = (*OrderPaymentUseCase)(nil)

func NewOrderPaymentUseCase(orders interfaces.IOrderRepository) *OrderPaymentUseCase {
	return &OrderPaymentUseCase{orders: orders}
}

func (u *OrderPaymentUseCase) GetByOrderNumber(ctx context.Context, orderNumber string) (entities.Order, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return entities.Order{}, ErrInvalidOrderNumber
	}

	order, err := u.orders.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return entities.Order{}, err
	}
	if order.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return order, nil
}
