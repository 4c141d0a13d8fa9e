package response

import (
	"time"

	"loja_xpto/internal/domain/entities"
)

// OrderPaymentResponse is the payment snapshot the storefront polls while the
// customer sits on the "waiting for payment" page.
type OrderPaymentResponse struct {
	OrderID       string     `json:"orderId"`
	OrderNumber   string     `json:"orderNumber"`
	PaymentStatus string     `json:"paymentStatus"`
	TransactionID string     `json:"transactionId,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	Provider      string     `json:"provider,omitempty"`
	PaymentURL    string     `json:"paymentUrl,omitempty"`
}

func FromOrderPayment(o entities.Order) OrderPaymentResponse {
	return OrderPaymentResponse{
		OrderID:       o.ID,
		OrderNumber:   o.OrderNumber,
		PaymentStatus: string(o.Payment.Status),
		TransactionID: o.Payment.TransactionID,
		PaidAt:        o.Payment.PaidAt,
		Provider:      o.Payment.Gateway.Provider,
		PaymentURL:    o.Payment.Gateway.PaymentURL,
	}
}
