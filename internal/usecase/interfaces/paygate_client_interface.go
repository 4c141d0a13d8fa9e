package interfaces

import "context"

// WalletCreateRequest carries everything the paygate wallet-creation endpoint
// needs to allocate a one-time receiving address for an order.
type WalletCreateRequest struct {
	MerchantAddress  string
	Provider         string
	Coin             string
	CallbackURL      string
	FeeBps           int
	AffiliateAddress string
	ClientReference  string
}

// WalletCreateResponse is the subset of the wallet-creation response this
// service persists. AddressIn is mandatory for a usable wallet; the checkout
// use case treats its absence as an upstream failure.
type WalletCreateResponse struct {
	AddressIn  string
	AddressOut string
	IpnToken   string
}

// IPaygateClient abstracts the external paygate REST API (crypto rail).
type IPaygateClient interface {
	CreateWallet(ctx context.Context, req WalletCreateRequest) (WalletCreateResponse, error)
}
