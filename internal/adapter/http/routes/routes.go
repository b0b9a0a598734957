package routes

import (
	"context"
	"fmt"
	"log"

	"checkout_xpto/internal/adapter/http/handlers"
	"checkout_xpto/internal/infrastructure/config"
	"checkout_xpto/internal/infrastructure/database"
	"checkout_xpto/internal/infrastructure/payments"
	"checkout_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

// Run will start the server
func Run() {
	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(cfg); err != nil {
		log.Fatalf("Failed to wire routes: %v", err)
	}

	if err := router.Run(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg *config.Config) error {
	// The datastore is configuration-validated at boot even though the
	// checkout flows are stateless (see database.ConnectDynamoDB).
	if _, err := database.ConnectDynamoDB(context.Background()); err != nil {
		return fmt.Errorf("datastore configuration: %w", err)
	}

	gateway, err := payments.NewMercadoPagoGateway(cfg.AccessToken)
	if err != nil {
		return fmt.Errorf("mercado pago gateway: %w", err)
	}

	paymentUseCase := usecase.NewPaymentUseCase(
		gateway,
		gateway,
		payments.BackURLsFromBase(cfg.CallbackBaseURL),
		payments.DefaultPreferencePolicy(),
	)
	webhookUseCase := usecase.NewWebhookUseCase(gateway)

	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)
	callbackHandler := handlers.NewCallbackHandler()

	// Rotas publicas
	root := &router.RouterGroup
	addPingRoutes(root)
	addCheckoutRoutes(root, paymentHandler, webhookHandler, callbackHandler)
	return nil
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(corsMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

// corsMiddleware mirrors the permissive policy expected by the checkout
// front-ends: any origin, credentials off.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
