package paygate

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"loja_xpto/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

var ErrMissingPaygateBaseURL = errors.New("missing PAYGATE_BASE_URL")

// Client talks to the paygate REST API.
//
// Supported env vars:
//   - PAYGATE_BASE_URL (required; e.g. https://api.paygate.example)
//   - PAYGATE_API_KEY  (optional bearer token)
type Client struct {
	http *resty.Client
}

var _ interfaces.IPaygateClient = (*Client)(nil)

func NewClientFromEnv() (*Client, error) {
	baseURL := strings.TrimSpace(os.Getenv("PAYGATE_BASE_URL"))
	if baseURL == "" {
		log.Printf("[paygate][client] missing PAYGATE_BASE_URL")
		return nil, ErrMissingPaygateBaseURL
	}

	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(15 * time.Second).
		SetHeader("Accept", "application/json")
	if key := strings.TrimSpace(os.Getenv("PAYGATE_API_KEY")); key != "" {
		httpClient.SetAuthToken(key)
	}
	log.Printf("[paygate][client] initialized base_url=%s", baseURL)

	return &Client{http: httpClient}, nil
}

type walletCreateBody struct {
	Address          string `json:"address"`
	Provider         string `json:"provider"`
	Coin             string `json:"coin,omitempty"`
	CallbackURL      string `json:"callback_url"`
	FeeBps           int    `json:"fee_bps,omitempty"`
	AffiliateAddress string `json:"affiliate_address,omitempty"`
	ClientReference  string `json:"client_reference,omitempty"`
}

type walletCreateResponse struct {
	AddressIn  string `json:"address_in"`
	AddressOut string `json:"address_out"`
	IpnToken   string `json:"ipn_token"`
}

func (c *Client) CreateWallet(ctx context.Context, req interfaces.WalletCreateRequest) (interfaces.WalletCreateResponse, error) {
	var out walletCreateResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(walletCreateBody{
			Address:          req.MerchantAddress,
			Provider:         req.Provider,
			Coin:             req.Coin,
			CallbackURL:      req.CallbackURL,
			FeeBps:           req.FeeBps,
			AffiliateAddress: req.AffiliateAddress,
			ClientReference:  req.ClientReference,
		}).
		SetResult(&out).
		Post("/wallet/create")
	if err != nil {
		log.Printf("[paygate][client] wallet create request failed provider=%s err=%v", req.Provider, err)
		return interfaces.WalletCreateResponse{}, err
	}
	if resp.IsError() {
		log.Printf("[paygate][client] wallet create rejected provider=%s status=%d body=%s",
			req.Provider, resp.StatusCode(), resp.String())
		return interfaces.WalletCreateResponse{}, fmt.Errorf("paygate wallet create failed: status=%d", resp.StatusCode())
	}
	log.Printf("[paygate][client] wallet created provider=%s address_in=%s", req.Provider, out.AddressIn)

	return interfaces.WalletCreateResponse{
		AddressIn:  out.AddressIn,
		AddressOut: out.AddressOut,
		IpnToken:   out.IpnToken,
	}, nil
}
