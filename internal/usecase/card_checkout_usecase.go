package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidCardPayload  = errors.New("invalid card payment payload")
	ErrCardGatewayRejected = errors.New("card gateway rejected payment")
)

const cardProviderID = "mercadopago"

// ICardCheckoutUseCase charges an order on the card rail. Unlike the crypto
// flow the provider answers synchronously, so the provider response is folded
// straight through the same settlement merge the webhook path uses.

type ICardCheckoutUseCase interface {
	PayOrder(ctx context.Context, orderID string, payload json.RawMessage) (SettlementResult, error)
}

type CardCheckoutUseCase struct {
	orders  interfaces.IOrderRepository
	gateway interfaces.ICardGateway
}

var _ ICardCheckoutUseCase = (*CardCheckoutUseCase)(nil)

func NewCardCheckoutUseCase(orders interfaces.IOrderRepository, gateway interfaces.ICardGateway) *CardCheckoutUseCase {
	return &CardCheckoutUseCase{orders: orders, gateway: gateway}
}

func (u *CardCheckoutUseCase) PayOrder(ctx context.Context, orderID string, payload json.RawMessage) (SettlementResult, error) {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		return SettlementResult{}, ErrInvalidCheckoutOrder
	}
	if len(payload) == 0 || !json.Valid(payload) {
		log.Printf("[card][usecase] invalid payload order_id=%s payload_len=%d", orderID, len(payload))
		return SettlementResult{}, ErrInvalidCardPayload
	}
	if u.gateway == nil {
		log.Printf("[card][usecase] card gateway not configured order_id=%s", orderID)
		return SettlementResult{}, errors.New("card gateway not configured")
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[card][usecase] order lookup failed order_id=%s err=%v", orderID, err)
		return SettlementResult{}, err
	}
	if order.ID == "" {
		return SettlementResult{}, ErrOrderNotFound
	}
	if order.Payment.Status == entities.PaymentStatusCompleted {
		log.Printf("[card][usecase] order already settled order_id=%s", order.ID)
		return SettlementResult{}, ErrOrderAlreadyPaid
	}

	payload = enrichCardPayload(order, payload)

	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[card][usecase] card gateway failed order_id=%s err=%v", order.ID, err)
		return SettlementResult{}, ErrCardGatewayRejected
	}
	log.Printf("[card][usecase] card gateway answered order_id=%s provider_payment_id=%s provider_status=%s",
		order.ID, providerPaymentID, providerStatus)

	// The provider result goes through the same merge path as a webhook
	// callback, translated into the callback status vocabulary first.
	fields := callbackFields{
		Status:   mapCardProviderStatus(providerStatus),
		TxIn:     providerPaymentID,
		Provider: cardProviderID,
	}
	nextStatus := classifyCallbackStatus(fields)
	if !settlementNeedsUpdate(order, nextStatus, fields) {
		return SettlementResult{
			Updated:       false,
			OrderID:       order.ID,
			OrderNumber:   order.OrderNumber,
			PaymentStatus: order.Payment.Status,
		}, nil
	}

	merged := mergePayment(order, nextStatus, fields, time.Now().UTC())
	if _, err := u.orders.UpdatePayment(ctx, order.ID, merged); err != nil {
		log.Printf("[card][usecase] payment update failed order_id=%s err=%v", order.ID, err)
		return SettlementResult{}, err
	}

	return SettlementResult{
		Updated:       true,
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		PaymentStatus: nextStatus,
	}, nil
}

// enrichCardPayload links the provider request to the order. The amount
// charged always comes from the persisted order, never from the client.
func enrichCardPayload(order entities.Order, payload json.RawMessage) json.RawMessage {
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err != nil {
		return payload
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = order.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Order %s", order.OrderNumber)
	}
	reqMap["transaction_amount"] = float64(order.TotalCents) / 100

	if b, err := json.Marshal(reqMap); err == nil {
		return b
	}
	return payload
}

func mapCardProviderStatus(providerStatus string) string {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved":
		return "paid"
	case "rejected", "cancelled", "charged_back":
		return "failed"
	case "refunded":
		return "refunded"
	case "in_process", "authorized":
		return "processing"
	default:
		return "pending"
	}
}
