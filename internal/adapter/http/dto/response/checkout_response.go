package response

import "loja_xpto/internal/usecase"

// CheckoutResponse is returned to the storefront, which redirects the
// customer to PaymentURL.
type CheckoutResponse struct {
	Success     bool   `json:"success"`
	PaymentURL  string `json:"paymentUrl"`
	Provider    string `json:"provider"`
	OrderNumber string `json:"orderNumber"`
}

func FromCheckoutResult(r usecase.CheckoutResult) CheckoutResponse {
	return CheckoutResponse{
		Success:     true,
		PaymentURL:  r.PaymentURL,
		Provider:    r.Provider,
		OrderNumber: r.OrderNumber,
	}
}
