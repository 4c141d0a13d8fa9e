package routes

import (
	"loja_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPaygate  = "/paygate"
	PathOrders   = "/orders"
	PathPayments = "/payments"
)

func addPaygateRoutes(rg *gin.RouterGroup, paygateHandler *handlers.PaygateHandler) {
	paygateGroup := rg.Group(PathPaygate)
	{
		// The vendor redelivers on non-2xx; both verbs are accepted because
		// the raw address-forwarding rail calls back with GET.
		paygateGroup.POST("/callback", paygateHandler.HandleCallback)
		paygateGroup.GET("/callback", paygateHandler.HandleCallback)
		paygateGroup.POST("/checkout", paygateHandler.InitiateCheckout)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, orderPaymentHandler *handlers.OrderPaymentHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.POST("/:order_id/card-payment", orderPaymentHandler.PayWithCard)
	}

	payments := rg.Group(PathPayments)
	{
		// Status poll is keyed by the human-facing order number.
		payments.GET("/:order_number", orderPaymentHandler.GetPaymentByOrderNumber)
	}
}
