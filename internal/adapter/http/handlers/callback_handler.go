package handlers

import (
	"log"
	"net/http"
	"time"

	request "checkout_xpto/internal/adapter/http/dto/request"
	response "checkout_xpto/internal/adapter/http/dto/response"
	"checkout_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// CallbackHandler serves the Checkout Pro redirect targets. These routes only
// echo the query string back with a static message; they never call the
// provider.

type CallbackHandler struct{}

func NewCallbackHandler() *CallbackHandler {
	return &CallbackHandler{}
}

func (h *CallbackHandler) Success(c *gin.Context) {
	h.echo(c, "success", "Payment approved successfully!")
}

func (h *CallbackHandler) Failure(c *gin.Context) {
	h.echo(c, "failure", "Payment was rejected. Try again with a different payment method.")
}

func (h *CallbackHandler) Pending(c *gin.Context) {
	h.echo(c, "pending", "Payment is being processed. You will be notified once it is confirmed.")
}

func (h *CallbackHandler) echo(c *gin.Context, route, message string) {
	var query request.CallbackQuery
	// Unknown or malformed params are ignored; every field is optional.
	_ = c.ShouldBindQuery(&query)

	log.Printf("[callback][handler] %s payment_id=%s status=%s external_reference=%s merchant_order_id=%s",
		route, query.PaymentID, query.Status, query.ExternalReference, query.MerchantOrderID)

	c.JSON(http.StatusOK, response.CallbackResponse{
		Message:           message,
		PaymentID:         query.PaymentID,
		Status:            query.Status,
		ExternalReference: query.ExternalReference,
		MerchantOrderID:   query.MerchantOrderID,
		Timestamp:         pkg.FormatTimestamp(time.Now()),
	})
}
