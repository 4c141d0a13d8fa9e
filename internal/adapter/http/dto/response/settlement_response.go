package response

import "loja_xpto/internal/usecase"

// SettlementResponse acknowledges a paygate callback. The webhook sender
// retries on non-2xx, so this body is returned for applied callbacks and
// no-op replays alike.
type SettlementResponse struct {
	OK            bool   `json:"ok"`
	Updated       bool   `json:"updated"`
	OrderID       string `json:"orderId"`
	OrderNumber   string `json:"orderNumber"`
	PaymentStatus string `json:"paymentStatus"`
}

func FromSettlementResult(r usecase.SettlementResult) SettlementResponse {
	return SettlementResponse{
		OK:            true,
		Updated:       r.Updated,
		OrderID:       r.OrderID,
		OrderNumber:   r.OrderNumber,
		PaymentStatus: string(r.PaymentStatus),
	}
}
