package entities

import "time"

// MerchantAccount is the merchant-side payout configuration used when
// initiating a crypto checkout.
//
// Providers is the merchant's pre-approved allow-list of payment
// sub-providers; an explicit provider requested at checkout is honored only
// when it appears here.
//
// Storage model (DynamoDB):
//   - PK: id
type MerchantAccount struct {
	ID              string    `json:"id"`
	WalletAddress   string    `json:"wallet_address"`
	Chain           string    `json:"chain,omitempty"`
	DefaultProvider string    `json:"default_provider,omitempty"`
	Providers       []string  `json:"providers,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
