package interfaces

import (
	"context"
	"encoding/json"
)

// ICardGateway abstracts the card-rail payment provider (Mercado Pago).
//
// The raw request/response payloads are kept as JSON because provider
// schemas vary between integrations; callers persist what they need.
type ICardGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
