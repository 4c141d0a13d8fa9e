package handlers

import (
	"errors"
	"log"
	"net/http"

	request "loja_xpto/internal/adapter/http/dto/request"
	response "loja_xpto/internal/adapter/http/dto/response"
	"loja_xpto/internal/usecase"
	"loja_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// OrderPaymentHandler exposes the payment sub-resource of orders: the card
// payment action and the status poll the storefront uses.

type OrderPaymentHandler struct {
	card    usecase.ICardCheckoutUseCase
	payment usecase.IOrderPaymentUseCase
}

func NewOrderPaymentHandler(card usecase.ICardCheckoutUseCase, payment usecase.IOrderPaymentUseCase) *OrderPaymentHandler {
	return &OrderPaymentHandler{card: card, payment: payment}
}

// PayWithCard charges an order on the card rail.
//
// @Summary  Pay order by card
// @Tags     orders
// @Accept   json
// @Produce  json
// @Param    order_id path string true "order id"
// @Param    payload body request.CardPaymentRequest true "card payment payload"
// @Success  200 {object} response.SettlementResponse
// @Failure  400 {object} pkg.HTTPError
// @Failure  404 {object} pkg.HTTPError
// @Failure  409 {object} pkg.HTTPError
// @Failure  502 {object} pkg.HTTPError
// @Router   /orders/{order_id}/card-payment [post]
func (h *OrderPaymentHandler) PayWithCard(c *gin.Context) {
	orderID := c.Param("order_id")
	log.Printf("[card][handler] pay start order_id=%s", orderID)

	var payload request.CardPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[card][handler] invalid payload order_id=%s err=%v", orderID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	result, err := h.card.PayOrder(c.Request.Context(), orderID, payload.CardPayload)
	if err != nil {
		log.Printf("[card][handler] pay failed order_id=%s err=%v", orderID, err)
		appErr := mapCardPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[card][handler] pay success order_id=%s status=%s", result.OrderID, result.PaymentStatus)

	c.JSON(http.StatusOK, response.FromSettlementResult(result))
}

// GetPaymentByOrderNumber returns the payment snapshot for an order.
//
// @Summary  Get order payment state
// @Tags     orders
// @Produce  json
// @Param    order_number path string true "order number"
// @Success  200 {object} response.OrderPaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /payments/{order_number} [get]
func (h *OrderPaymentHandler) GetPaymentByOrderNumber(c *gin.Context) {
	orderNumber := c.Param("order_number")

	order, err := h.payment.GetByOrderNumber(c.Request.Context(), orderNumber)
	if err != nil {
		appErr := mapOrderPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrderPayment(order))
}

func mapCardPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCheckoutOrder), errors.Is(err, usecase.ErrInvalidCardPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderAlreadyPaid):
		return pkg.NewDomainErrorSimple("ORDER_ALREADY_PAID", "Order payment already completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrCardGatewayRejected):
		return pkg.NewDomainErrorSimple("CARD_GATEWAY_REJECTED", "Card payment was not accepted", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapOrderPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderNumber):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
