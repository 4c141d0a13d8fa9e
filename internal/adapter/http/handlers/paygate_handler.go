package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"net/url"
	"strings"

	request "loja_xpto/internal/adapter/http/dto/request"
	response "loja_xpto/internal/adapter/http/dto/response"
	"loja_xpto/internal/usecase"
	"loja_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// PaygateHandler handles the paygate webhook callback and the crypto
// checkout initiation.

type PaygateHandler struct {
	settlement usecase.IPaygateSettlementUseCase
	checkout   usecase.IPaygateCheckoutUseCase
}

func NewPaygateHandler(settlement usecase.IPaygateSettlementUseCase, checkout usecase.IPaygateCheckoutUseCase) *PaygateHandler {
	return &PaygateHandler{settlement: settlement, checkout: checkout}
}

// HandleCallback receives one webhook delivery from the paygate.
//
// The vendor delivers fields in the query string (our own callback URL
// parameters ride along there) and, depending on the rail, a JSON or form
// body. Everything is merged into one bag before normalization; body values
// win over query values on key collision.
//
// @Summary  Paygate settlement callback
// @Tags     paygate
// @Accept   json
// @Produce  json
// @Success  200 {object} response.SettlementResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Router   /paygate/callback [post]
func (h *PaygateHandler) HandleCallback(c *gin.Context) {
	payload := readCallbackPayload(c)
	log.Printf("[settlement][handler] callback received keys=%d", len(payload))

	result, err := h.settlement.SettleCallback(c.Request.Context(), payload)
	if err != nil {
		log.Printf("[settlement][handler] callback failed err=%v", err)
		appErr := mapSettlementError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[settlement][handler] callback handled order_id=%s updated=%t status=%s",
		result.OrderID, result.Updated, result.PaymentStatus)

	c.JSON(http.StatusOK, response.FromSettlementResult(result))
}

// InitiateCheckout starts a crypto checkout for an order.
//
// @Summary  Initiate crypto checkout
// @Tags     paygate
// @Accept   json
// @Produce  json
// @Param    payload body request.PaygateCheckoutRequest true "checkout request"
// @Success  200 {object} response.CheckoutResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /paygate/checkout [post]
func (h *PaygateHandler) InitiateCheckout(c *gin.Context) {
	var payload request.PaygateCheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[checkout][handler] invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] checkout start order_id=%s provider_id=%q", payload.OrderID, payload.ProviderID)

	result, err := h.checkout.InitiateCheckout(c.Request.Context(), usecase.CheckoutRequest{
		OrderID:    payload.OrderID,
		ProviderID: payload.ProviderID,
		Currency:   payload.Currency,
	})
	if err != nil {
		log.Printf("[checkout][handler] checkout failed order_id=%s err=%v", payload.OrderID, err)
		appErr := mapCheckoutError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[checkout][handler] checkout success order_number=%s provider=%s", result.OrderNumber, result.Provider)

	c.JSON(http.StatusOK, response.FromCheckoutResult(result))
}

// readCallbackPayload flattens query parameters, form fields and a JSON body
// object into a single key-value bag.
func readCallbackPayload(c *gin.Context) map[string]any {
	payload := map[string]any{}

	for key, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			payload[key] = values[0]
		}
	}

	raw, err := c.GetRawData()
	if err != nil || len(strings.TrimSpace(string(raw))) == 0 {
		return payload
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err == nil {
		for key, value := range body {
			payload[key] = value
		}
		return payload
	}

	// Not JSON: some rails deliver form-encoded bodies.
	if form, err := url.ParseQuery(string(raw)); err == nil {
		for key, values := range form {
			if len(values) > 0 {
				payload[key] = values[0]
			}
		}
	}
	return payload
}

func mapSettlementError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyCallbackPayload):
		return pkg.NewDomainErrorSimple("EMPTY_CALLBACK", "Callback payload is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapCheckoutError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCheckoutOrder):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMerchantWalletMissing):
		return pkg.NewDomainErrorSimple("MERCHANT_WALLET_MISSING", "Merchant wallet not configured", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Order payment already completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaygateUnavailable):
		return pkg.NewDomainErrorSimple("PAYGATE_UNAVAILABLE", "Payment gateway unavailable", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
