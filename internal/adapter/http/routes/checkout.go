package routes

import (
	"checkout_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathPayments = "/payments"
	PathWebhook  = "/webhook"
)

func addCheckoutRoutes(rg *gin.RouterGroup, paymentHandler *handlers.PaymentHandler, webhookHandler *handlers.WebhookHandler, callbackHandler *handlers.CallbackHandler) {
	payments := rg.Group(PathPayments)
	{
		payments.POST("/preferences", paymentHandler.CreatePreference)
		payments.POST("/order", paymentHandler.CreateOrder)
		payments.GET("/:id", paymentHandler.GetPaymentByID)
	}

	rg.POST(PathWebhook, webhookHandler.Handle)

	// Checkout Pro redirect targets.
	rg.GET("/success", callbackHandler.Success)
	rg.GET("/failure", callbackHandler.Failure)
	rg.GET("/pending", callbackHandler.Pending)
}
