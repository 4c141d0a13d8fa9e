package routes

import (
	"encoding/json"
	"log"
	"os"
	"strconv"

	_ "loja_xpto/docs" // This will be auto-generated
	"loja_xpto/internal/adapter/http/handlers"
	repository2 "loja_xpto/internal/adapter/persistence/repository"
	"loja_xpto/internal/infrastructure/database"
	"loja_xpto/internal/infrastructure/paygate"
	"loja_xpto/internal/infrastructure/payments"
	"loja_xpto/internal/usecase"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	orderRepo := repository2.NewOrderDynamoRepository(ddb)
	accountRepo := repository2.NewMerchantAccountDynamoRepository(ddb)

	var paygateClient interfaces.IPaygateClient
	if client, err := paygate.NewClientFromEnv(); err != nil {
		log.Printf("Paygate client not configured: %v", err)
	} else {
		paygateClient = client
	}

	var cardGateway interfaces.ICardGateway
	if mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")); err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		cardGateway = mpGateway
	}

	settlementUseCase := usecase.NewPaygateSettlementUseCase(orderRepo)
	checkoutUseCase := usecase.NewPaygateCheckoutUseCase(orderRepo, accountRepo, paygateClient, checkoutConfigFromEnv())
	cardUseCase := usecase.NewCardCheckoutUseCase(orderRepo, cardGateway)
	orderPaymentUseCase := usecase.NewOrderPaymentUseCase(orderRepo)

	paygateHandler := handlers.NewPaygateHandler(settlementUseCase, checkoutUseCase)
	orderPaymentHandler := handlers.NewOrderPaymentHandler(cardUseCase, orderPaymentUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPaygateRoutes(v1, paygateHandler)
	addOrderRoutes(v1, orderPaymentHandler)
}

// checkoutConfigFromEnv assembles the explicit checkout configuration. The
// fee/affiliate policy is built here once and injected, never read from the
// environment inside business code.
func checkoutConfigFromEnv() usecase.PaygateCheckoutConfig {
	feeBps, err := strconv.Atoi(getenvDefault("PAYGATE_FEE_BPS", "0"))
	if err != nil {
		log.Printf("Invalid PAYGATE_FEE_BPS, using 0: %v", err)
		feeBps = 0
	}

	affiliates := map[string]string{}
	if raw := os.Getenv("PAYGATE_AFFILIATE_ADDRESSES"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &affiliates); err != nil {
			log.Printf("Invalid PAYGATE_AFFILIATE_ADDRESSES, ignoring: %v", err)
			affiliates = map[string]string{}
		}
	}

	return usecase.PaygateCheckoutConfig{
		CallbackBaseURL: getenvDefault("PAYGATE_CALLBACK_BASE_URL", "http://localhost:8080/v1/paygate/callback"),
		PaymentPageURL:  getenvDefault("PAYGATE_PAYMENT_PAGE_URL", "https://pay.paygate.example/checkout"),
		Fee: usecase.FeePolicy{
			FeeBps:                    feeBps,
			AffiliateAddressesByChain: affiliates,
		},
	}
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
