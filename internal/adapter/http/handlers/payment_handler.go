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

// PaymentHandler handles HTTP requests for checkout preferences and
// transparent-checkout orders.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreatePreference creates a Checkout Pro preference and returns the redirect
// URLs.
func (h *PaymentHandler) CreatePreference(c *gin.Context) {
	var payload request.PreferenceCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] preference payload invalid err=%v", err)
		appErr := bindingAppError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	summary, err := h.usecase.CreatePreference(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[payment][handler] preference create failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] preference create success preference_id=%s", summary.ID)

	c.JSON(http.StatusCreated, response.FromPreferenceSummary(summary))
}

// CreateOrder submits a transparent-checkout order and returns the created
// payment summary.
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] order payload invalid err=%v", err)
		appErr := bindingAppError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if fieldErrors := payload.AmountFieldErrors(); fieldErrors != nil {
		log.Printf("[payment][handler] order amount validation failed external_reference=%s", payload.ExternalReference)
		appErr := pkg.NewValidationError("Invalid request data", fieldErrors)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	record, err := h.usecase.CreateOrder(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[payment][handler] order create failed external_reference=%s err=%v", payload.ExternalReference, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] order create success external_reference=%s payment_id=%s status=%s", payload.ExternalReference, record.ID, record.Status)

	c.JSON(http.StatusCreated, response.OrderCreatedFrom(record))
}

// GetPaymentByID returns the live provider state of a payment.
func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	id := c.Param("id")
	log.Printf("[payment][handler] get start payment_id=%s", id)

	record, err := h.usecase.GetPaymentByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] get failed payment_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] get success payment_id=%s status=%s", record.ID, record.Status)

	c.JSON(http.StatusOK, response.FromPaymentRecord(record))
}

func mapPaymentError(err error) *pkg.AppError {
	var apiErr *usecase.MercadoPagoAPIError
	switch {
	case errors.Is(err, usecase.ErrAmountTooHigh):
		return pkg.NewDomainErrorSimple(pkg.CodeAmountTooHigh, "Total amount cannot exceed "+pkg.FormatCurrencyBRL(usecase.MaxPreferenceTotal), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInsufficientAmount):
		return pkg.NewDomainErrorSimple(pkg.CodeInsufficientAmount, "Payment amount must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentData):
		return pkg.NewDomainErrorSimple(pkg.CodeInvalidPaymentData, "Invalid payment data", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple(pkg.CodePaymentNotFound, "Payment not found", http.StatusNotFound)
	case errors.As(err, &apiErr):
		return pkg.NewDomainErrorSimple(pkg.CodeMercadoPagoAPI, apiErr.Message, http.StatusBadRequest)
	default:
		return pkg.NewDomainError(pkg.CodeInternalError, "An internal error occurred", err, http.StatusInternalServerError)
	}
}
