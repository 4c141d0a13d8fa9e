package usecase

import (
	"context"
	"errors"
	"log"
	"regexp"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"
)

var (
	ErrEmptyCallbackPayload = errors.New("empty callback payload")
	ErrOrderNotFound        = errors.New("order not found")
)

// fallbackGatewayID is used when a callback carries no address and the order
// has no previously recorded gateway identity.
const fallbackGatewayID = "paygate"

// Some paygate flows only echo an opaque session token like
// "cs_session_9f2ab31c"; the trailing token is the order document id.
var sessionTokenPattern = regexp.MustCompile(`(?i)session_([a-z0-9]+)`)

// SettlementResult is the outcome of folding one callback into an order.
//
// Updated is false when the callback carried no new information; replays of
// an already-applied callback are safe no-ops.
type SettlementResult struct {
	Updated       bool
	OrderID       string
	OrderNumber   string
	PaymentStatus entities.PaymentStatus
}

// IPaygateSettlementUseCase reconciles asynchronous paygate callbacks into
// persisted order payment state.

type IPaygateSettlementUseCase interface {
	SettleCallback(ctx context.Context, payload map[string]any) (SettlementResult, error)
}

type PaygateSettlementUseCase struct {
	orders interfaces.IOrderRepository
}

var _ IPaygateSettlementUseCase = (*PaygateSettlementUseCase)(nil)

func NewPaygateSettlementUseCase(orders interfaces.IOrderRepository) *PaygateSettlementUseCase {
	return &PaygateSettlementUseCase{orders: orders}
}

// SettleCallback locates the order referenced by the callback, classifies the
// callback's payment status, and persists the merged payment sub-document in
// a single write. Callbacks that change nothing are acknowledged without a
// write, which is what makes webhook redelivery safe.
func (u *PaygateSettlementUseCase) SettleCallback(ctx context.Context, payload map[string]any) (SettlementResult, error) {
	if len(payload) == 0 {
		log.Printf("[settlement][usecase] rejected empty callback payload")
		return SettlementResult{}, ErrEmptyCallbackPayload
	}

	fields := normalizeCallback(payload)
	order, found := u.locateOrder(ctx, fields)
	if !found {
		log.Printf("[settlement][usecase] no order matched callback order_number=%q order_doc_id=%q session_id=%q",
			fields.OrderNumber, fields.OrderDocID, fields.SessionID)
		return SettlementResult{}, ErrOrderNotFound
	}

	nextStatus := classifyCallbackStatus(fields)
	if !settlementNeedsUpdate(order, nextStatus, fields) {
		log.Printf("[settlement][usecase] no-op callback order_id=%s order_number=%s status=%s",
			order.ID, order.OrderNumber, order.Payment.Status)
		return SettlementResult{
			Updated:       false,
			OrderID:       order.ID,
			OrderNumber:   order.OrderNumber,
			PaymentStatus: order.Payment.Status,
		}, nil
	}

	merged := mergePayment(order, nextStatus, fields, time.Now().UTC())
	if _, err := u.orders.UpdatePayment(ctx, order.ID, merged); err != nil {
		log.Printf("[settlement][usecase] payment update failed order_id=%s err=%v", order.ID, err)
		return SettlementResult{}, err
	}
	log.Printf("[settlement][usecase] settled callback order_id=%s order_number=%s status=%s->%s tx_in=%q",
		order.ID, order.OrderNumber, order.Payment.Status, nextStatus, fields.TxIn)

	return SettlementResult{
		Updated:       true,
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		PaymentStatus: nextStatus,
	}, nil
}

// locateOrder tries the lookup strategies in priority order: document id
// (least ambiguous), order number, then the id embedded in the session token.
// Lookup failures are swallowed so a malformed id from one rail never blocks
// resolution through another.
func (u *PaygateSettlementUseCase) locateOrder(ctx context.Context, f callbackFields) (entities.Order, bool) {
	if f.OrderDocID != "" {
		order, err := u.orders.GetByID(ctx, f.OrderDocID)
		if err != nil {
			log.Printf("[settlement][usecase] doc-id lookup failed, trying next strategy order_doc_id=%s err=%v", f.OrderDocID, err)
		} else if order.ID != "" {
			return order, true
		}
	}

	if f.OrderNumber != "" {
		order, err := u.orders.GetByOrderNumber(ctx, f.OrderNumber)
		if err != nil {
			log.Printf("[settlement][usecase] order-number lookup failed, trying next strategy order_number=%s err=%v", f.OrderNumber, err)
		} else if order.ID != "" {
			return order, true
		}
	}

	if f.SessionID != "" {
		if m := sessionTokenPattern.FindStringSubmatch(f.SessionID); m != nil {
			order, err := u.orders.GetByID(ctx, m[1])
			if err == nil && order.ID != "" {
				return order, true
			}
		}
	}

	return entities.Order{}, false
}

// settlementNeedsUpdate reports whether the classified callback carries any
// information not already persisted on the order.
func settlementNeedsUpdate(order entities.Order, nextStatus entities.PaymentStatus, f callbackFields) bool {
	p := order.Payment
	if nextStatus != p.Status {
		return true
	}
	if f.TxIn != "" && f.TxIn != p.TransactionID {
		return true
	}
	if f.TxOut != "" && f.TxOut != p.Gateway.TransactionID {
		return true
	}

	meta := p.Gateway.Metadata
	if f.ValueCoin != nil && (meta.ValueCoin == nil || *meta.ValueCoin != *f.ValueCoin) {
		return true
	}
	if f.ValueForwardedCoin != nil && (meta.ValueForwardedCoin == nil || *meta.ValueForwardedCoin != *f.ValueForwardedCoin) {
		return true
	}
	if f.Coin != "" && f.Coin != meta.Coin {
		return true
	}
	return false
}

// mergePayment computes the next payment sub-document. Fields absent from
// this callback keep their stored values; PaidAt is set once and never
// cleared. Pure except for the receivedAt stamp the caller supplies.
func mergePayment(order entities.Order, nextStatus entities.PaymentStatus, f callbackFields, receivedAt time.Time) entities.Payment {
	p := order.Payment

	meta := p.Gateway.Metadata
	if f.ValueCoin != nil {
		meta.ValueCoin = f.ValueCoin
	}
	if f.ValueForwardedCoin != nil {
		meta.ValueForwardedCoin = f.ValueForwardedCoin
	}
	if f.Coin != "" {
		meta.Coin = f.Coin
	}
	if f.TxIn != "" {
		meta.TxidIn = f.TxIn
	}
	if f.TxOut != "" {
		meta.TxidOut = f.TxOut
	}
	if f.AddressIn != "" {
		meta.AddressIn = f.AddressIn
	}
	if f.Status != "" {
		meta.PaygateStatus = f.Status
	}
	if f.IpnToken != "" {
		meta.IpnToken = f.IpnToken
	}
	stamp := receivedAt
	meta.CallbackReceivedAt = &stamp

	gw := p.Gateway
	gw.Metadata = meta
	switch {
	case f.AddressIn != "":
		gw.ID = f.AddressIn
	case gw.ID != "":
	case p.GatewayID != "":
		gw.ID = p.GatewayID
	default:
		gw.ID = fallbackGatewayID
	}
	if f.Provider != "" {
		gw.Provider = f.Provider
	} else if gw.Provider == "" {
		gw.Provider = fallbackGatewayID
	}
	gw.Status = nextStatus

	session := f.IpnToken
	if session == "" {
		session = f.SessionID
	}
	if session != "" {
		gw.SessionID = session
	}
	if f.TxOut != "" {
		gw.TransactionID = f.TxOut
	}

	p.Gateway = gw
	p.Status = nextStatus
	if f.TxIn != "" {
		p.TransactionID = f.TxIn
	}
	if p.PaidAt == nil && nextStatus == entities.PaymentStatusCompleted {
		paidAt := receivedAt
		p.PaidAt = &paidAt
	}
	if session != "" {
		p.GatewayID = session
	}
	return p
}
