package handlers

import (
	"errors"
	"log"
	"net/http"

	request "checkout_xpto/internal/adapter/http/dto/request"
	response "checkout_xpto/internal/adapter/http/dto/response"
	"checkout_xpto/internal/usecase"
	"checkout_xpto/pkg"

	"github.com/gin-gonic/gin"
)

// WebhookHandler receives provider payment notifications and answers with the
// resolved payment outcome.

type WebhookHandler struct {
	usecase usecase.IWebhookUseCase
}

func NewWebhookHandler(uc usecase.IWebhookUseCase) *WebhookHandler {
	return &WebhookHandler{usecase: uc}
}

func (h *WebhookHandler) Handle(c *gin.Context) {
	var payload request.WebhookRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[webhook][handler] payload invalid err=%v", err)
		appErr := bindingAppError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[webhook][handler] received type=%s payment_id=%s", payload.Type, payload.Data.ID)

	if !h.usecase.ValidateType(payload.Type) {
		log.Printf("[webhook][handler] unsupported type=%s", payload.Type)
		appErr := pkg.NewValidationError("Unsupported webhook type", map[string][]string{
			"type": {"unsupported webhook type " + payload.Type},
		})
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	outcome, err := h.usecase.ProcessPayment(c.Request.Context(), payload.Data.ID)
	if err != nil {
		log.Printf("[webhook][handler] process failed payment_id=%s err=%v", payload.Data.ID, err)
		appErr := mapWebhookError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[webhook][handler] process success payment_id=%s status=%s", outcome.PaymentID, outcome.Status)

	c.JSON(http.StatusOK, response.FromWebhookOutcome(outcome))
}

func mapWebhookError(err error) *pkg.AppError {
	var appErr *pkg.AppError
	switch {
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple(pkg.CodePaymentNotFound, "Payment not found", http.StatusNotFound)
	case errors.As(err, &appErr):
		// Already classified upstream; propagate unchanged.
		return appErr
	default:
		return pkg.NewDomainError(pkg.CodeInternalError, "An internal error occurred", err, http.StatusInternalServerError)
	}
}
