package request

import "encoding/json"

// CardPaymentRequest wraps the raw provider payload for the card rail.
//
// `card_payload` is forwarded as-is (raw JSON) to support varying Mercado
// Pago schemas; amount and order linkage are filled in server-side.
type CardPaymentRequest struct {
	CardPayload json.RawMessage `json:"card_payload"`
}
