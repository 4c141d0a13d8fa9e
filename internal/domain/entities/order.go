package entities

import "time"

// PaymentStatus represents the lifecycle of an order's payment.
//
// Transitions driven by this service:
//   - checkout initiation moves pending -> processing
//   - gateway callbacks may move the payment to any status; the settlement
//     use case applies "last delivery wins" and only guards PaidAt.
//
//go:generate stringer -type=PaymentStatus

type PaymentStatus string

const (
	PaymentStatusPending    PaymentStatus = "pending"
	PaymentStatusProcessing PaymentStatus = "processing"
	PaymentStatusCompleted  PaymentStatus = "completed"
	PaymentStatusFailed     PaymentStatus = "failed"
	PaymentStatusRefunded   PaymentStatus = "refunded"
)

// GatewayMetadata is the gateway-specific detail attached to a payment.
//
// Every field is optional. Callbacks rarely carry the full set, so the merge
// in the settlement use case overwrites a field only when the incoming
// callback carries a value for it; absent fields keep their stored value.
// Numeric fields are pointers so "absent" and "zero" stay distinguishable.
type GatewayMetadata struct {
	ValueCoin          *float64   `json:"value_coin,omitempty" dynamodbav:"value_coin,omitempty"`
	ValueForwardedCoin *float64   `json:"value_forwarded_coin,omitempty" dynamodbav:"value_forwarded_coin,omitempty"`
	Coin               string     `json:"coin,omitempty" dynamodbav:"coin,omitempty"`
	TxidIn             string     `json:"txid_in,omitempty" dynamodbav:"txid_in,omitempty"`
	TxidOut            string     `json:"txid_out,omitempty" dynamodbav:"txid_out,omitempty"`
	AddressIn          string     `json:"address_in,omitempty" dynamodbav:"address_in,omitempty"`
	PaygateStatus      string     `json:"paygate_status,omitempty" dynamodbav:"paygate_status,omitempty"`
	IpnToken           string     `json:"ipn_token,omitempty" dynamodbav:"ipn_token,omitempty"`
	CallbackURL        string     `json:"callback_url,omitempty" dynamodbav:"callback_url,omitempty"`
	ClientReference    string     `json:"client_reference,omitempty" dynamodbav:"client_reference,omitempty"`
	WalletAddress      string     `json:"wallet_address,omitempty" dynamodbav:"wallet_address,omitempty"`
	CallbackReceivedAt *time.Time `json:"callback_received_at,omitempty" dynamodbav:"callback_received_at,omitempty"`
	InitializedAt      *time.Time `json:"initialized_at,omitempty" dynamodbav:"initialized_at,omitempty"`
}

// PaymentGateway tracks the external processor session bound to a payment.
//
// Status mirrors Payment.Status 1:1 after every settlement merge.
type PaymentGateway struct {
	Name          string          `json:"name,omitempty" dynamodbav:"name,omitempty"`
	ID            string          `json:"id,omitempty" dynamodbav:"id,omitempty"`
	Provider      string          `json:"provider,omitempty" dynamodbav:"provider,omitempty"`
	Status        PaymentStatus   `json:"status,omitempty" dynamodbav:"status,omitempty"`
	SessionID     string          `json:"session_id,omitempty" dynamodbav:"session_id,omitempty"`
	TransactionID string          `json:"transaction_id,omitempty" dynamodbav:"transaction_id,omitempty"`
	PaymentURL    string          `json:"payment_url,omitempty" dynamodbav:"payment_url,omitempty"`
	Metadata      GatewayMetadata `json:"metadata" dynamodbav:"metadata"`
}

// Payment is the order sub-document owned by this service.
//
//   - TransactionID is the incoming transaction (funds arriving at the
//     gateway-generated collection address).
//   - PaidAt is set once when the status first reaches completed and is never
//     cleared afterwards, regardless of later callbacks.
//   - GatewayID is the opaque session/ipn token used for status polling.
type Payment struct {
	Status        PaymentStatus  `json:"status" dynamodbav:"status"`
	TransactionID string         `json:"transaction_id,omitempty" dynamodbav:"transaction_id,omitempty"`
	PaidAt        *time.Time     `json:"paid_at,omitempty" dynamodbav:"paid_at,omitempty"`
	GatewayID     string         `json:"gateway_id,omitempty" dynamodbav:"gateway_id,omitempty"`
	Gateway       PaymentGateway `json:"gateway" dynamodbav:"gateway"`
}

// Order is the storefront order as read/written by this service.
//
// Orders are created by the storefront; this service only mutates the
// Payment sub-document, always as a single whole-document write.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (order_number-index): order_number
type Order struct {
	ID           string    `json:"id"`
	OrderNumber  string    `json:"order_number"`
	TotalCents   int64     `json:"total_cents"`
	ContactEmail string    `json:"contact_email"`
	Payment      Payment   `json:"payment"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
