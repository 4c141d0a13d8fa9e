package usecase

import (
	"context"
	"errors"
	"log"
	"net/url"
	"strings"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidCheckoutOrder  = errors.New("invalid checkout order id")
	ErrOrderAlreadyPaid      = errors.New("order already paid")
	ErrMerchantWalletMissing = errors.New("merchant wallet not configured")
	ErrPaygateUnavailable    = errors.New("paygate unavailable")
)

// FeePolicy is the platform fee and affiliate payout configuration. It is
// injected explicitly instead of read from the environment inside business
// code, so tests can exercise the fee split without env juggling.
type FeePolicy struct {
	FeeBps                    int
	AffiliateAddressesByChain map[string]string
}

// PaygateCheckoutConfig carries the URLs the checkout flow constructs.
//
// CallbackBaseURL is where the paygate will deliver settlement callbacks; the
// query parameters appended to it (order_number, order_doc_id, provider) are
// the same synonym groups the settlement normalizer parses later.
type PaygateCheckoutConfig struct {
	CallbackBaseURL string
	PaymentPageURL  string
	Fee             FeePolicy
}

type CheckoutRequest struct {
	OrderID    string
	ProviderID string
	Currency   string
}

type CheckoutResult struct {
	PaymentURL  string
	Provider    string
	OrderNumber string
}

// IPaygateCheckoutUseCase initiates crypto checkouts. It only ever moves a
// payment from pending to processing; completion/failure is the settlement
// use case's job once the callback arrives.

type IPaygateCheckoutUseCase interface {
	InitiateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutResult, error)
}

type PaygateCheckoutUseCase struct {
	orders   interfaces.IOrderRepository
	accounts interfaces.IMerchantAccountRepository
	paygate  interfaces.IPaygateClient
	cfg      PaygateCheckoutConfig
}

var _ IPaygateCheckoutUseCase = (*PaygateCheckoutUseCase)(nil)

func NewPaygateCheckoutUseCase(
	orders interfaces.IOrderRepository,
	accounts interfaces.IMerchantAccountRepository,
	paygate interfaces.IPaygateClient,
	cfg PaygateCheckoutConfig,
) *PaygateCheckoutUseCase {
	return &PaygateCheckoutUseCase{orders: orders, accounts: accounts, paygate: paygate, cfg: cfg}
}

func (u *PaygateCheckoutUseCase) InitiateCheckout(ctx context.Context, req CheckoutRequest) (CheckoutResult, error) {
	orderID := strings.TrimSpace(req.OrderID)
	if orderID == "" {
		return CheckoutResult{}, ErrInvalidCheckoutOrder
	}
	if u.paygate == nil {
		log.Printf("[checkout][usecase] paygate client not configured order_id=%s", orderID)
		return CheckoutResult{}, errors.New("paygate client not configured")
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		log.Printf("[checkout][usecase] order lookup failed order_id=%s err=%v", orderID, err)
		return CheckoutResult{}, err
	}
	if order.ID == "" {
		return CheckoutResult{}, ErrOrderNotFound
	}
	if order.Payment.Status == entities.PaymentStatusCompleted {
		log.Printf("[checkout][usecase] order already settled order_id=%s", order.ID)
		return CheckoutResult{}, ErrOrderAlreadyPaid
	}

	account, err := u.accounts.GetDefault(ctx)
	if err != nil {
		log.Printf("[checkout][usecase] merchant account lookup failed order_id=%s err=%v", order.ID, err)
		return CheckoutResult{}, err
	}
	if strings.TrimSpace(account.WalletAddress) == "" {
		log.Printf("[checkout][usecase] merchant wallet missing order_id=%s account_id=%s", order.ID, account.ID)
		return CheckoutResult{}, ErrMerchantWalletMissing
	}

	provider := resolveProvider(req.ProviderID, account)
	coin := strings.ToUpper(strings.TrimSpace(req.Currency))
	callbackURL := u.buildCallbackURL(order, provider)
	clientRef := uuid.NewString()

	log.Printf("[checkout][usecase] creating wallet order_id=%s provider=%s coin=%s", order.ID, provider, coin)
	wallet, err := u.paygate.CreateWallet(ctx, interfaces.WalletCreateRequest{
		MerchantAddress:  account.WalletAddress,
		Provider:         provider,
		Coin:             coin,
		CallbackURL:      callbackURL,
		FeeBps:           u.cfg.Fee.FeeBps,
		AffiliateAddress: u.cfg.Fee.AffiliateAddressesByChain[account.Chain],
		ClientReference:  clientRef,
	})
	if err != nil {
		log.Printf("[checkout][usecase] wallet creation failed order_id=%s err=%v", order.ID, err)
		return CheckoutResult{}, ErrPaygateUnavailable
	}
	if wallet.AddressIn == "" {
		log.Printf("[checkout][usecase] wallet response missing address_in order_id=%s", order.ID)
		return CheckoutResult{}, ErrPaygateUnavailable
	}

	now := time.Now().UTC()
	payment := order.Payment
	payment.Status = entities.PaymentStatusProcessing
	payment.GatewayID = wallet.IpnToken
	payment.Gateway = entities.PaymentGateway{
		Name:       fallbackGatewayID,
		ID:         wallet.AddressIn,
		Provider:   provider,
		Status:     entities.PaymentStatusProcessing,
		SessionID:  wallet.IpnToken,
		PaymentURL: u.buildPaymentURL(order, provider, wallet.AddressIn),
		Metadata: entities.GatewayMetadata{
			Coin:            coin,
			AddressIn:       wallet.AddressIn,
			IpnToken:        wallet.IpnToken,
			CallbackURL:     callbackURL,
			ClientReference: clientRef,
			WalletAddress:   account.WalletAddress,
			InitializedAt:   &now,
		},
	}

	if _, err := u.orders.UpdatePayment(ctx, order.ID, payment); err != nil {
		log.Printf("[checkout][usecase] payment update failed order_id=%s err=%v", order.ID, err)
		return CheckoutResult{}, err
	}
	log.Printf("[checkout][usecase] checkout initiated order_id=%s order_number=%s provider=%s address_in=%s",
		order.ID, order.OrderNumber, provider, wallet.AddressIn)

	return CheckoutResult{
		PaymentURL:  payment.Gateway.PaymentURL,
		Provider:    provider,
		OrderNumber: order.OrderNumber,
	}, nil
}

// resolveProvider picks the payment sub-provider: an explicitly requested one
// only when pre-approved, then the account default, then the first
// pre-approved entry, then the hard-coded fallback.
func resolveProvider(requested string, account entities.MerchantAccount) string {
	requested = strings.TrimSpace(requested)
	if requested != "" {
		for _, p := range account.Providers {
			if strings.EqualFold(p, requested) {
				return p
			}
		}
	}
	if account.DefaultProvider != "" {
		return account.DefaultProvider
	}
	if len(account.Providers) > 0 {
		return account.Providers[0]
	}
	return fallbackGatewayID
}

func (u *PaygateCheckoutUseCase) buildCallbackURL(order entities.Order, provider string) string {
	q := url.Values{}
	q.Set("order_number", order.OrderNumber)
	q.Set("order_doc_id", order.ID)
	q.Set("provider", provider)
	return u.cfg.CallbackBaseURL + "?" + q.Encode()
}

func (u *PaygateCheckoutUseCase) buildPaymentURL(order entities.Order, provider, addressIn string) string {
	q := url.Values{}
	q.Set("address", addressIn)
	q.Set("order", order.OrderNumber)
	q.Set("provider", provider)
	return u.cfg.PaymentPageURL + "?" + q.Encode()
}
