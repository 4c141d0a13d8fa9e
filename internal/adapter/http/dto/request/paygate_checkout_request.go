package request

// PaygateCheckoutRequest is the storefront payload initiating a crypto
// checkout. Field names follow the storefront client's camelCase convention.
type PaygateCheckoutRequest struct {
	OrderID    string `json:"orderId" binding:"required"`
	ProviderID string `json:"providerId"`
	Currency   string `json:"currency"`
}
