package request

import (
	"fmt"
	"strconv"
	"strings"

	"checkout_xpto/internal/domain/entities"
)

const maxOrderItemAmount = 999999.99

// OrderCreateRequest is the payload for the transparent-checkout order route.
//
// Amounts arrive as decimal strings; numeric range checks happen in
// AmountFieldErrors so they can be reported per field alongside the binding
// validations.

type OrderCreateRequest struct {
	Type              string                    `json:"type" binding:"required,oneof=online"`
	ExternalReference string                    `json:"external_reference" binding:"required,max=200"`
	Payer             OrderPayerRequest         `json:"payer" binding:"required"`
	Payments          []OrderPaymentItemRequest `json:"payments" binding:"required,min=1,max=5,dive"`
}

type OrderPayerRequest struct {
	Email string `json:"email" binding:"required,email,max=255"`
}

type OrderPaymentItemRequest struct {
	Amount          string `json:"amount" binding:"required"`
	PaymentMethodID string `json:"payment_method_id" binding:"required,max=50"`
	Token           string `json:"token" binding:"required,min=10,max=500"`
	Installments    int    `json:"installments" binding:"omitempty,gte=1,lte=12"`
}

// AmountFieldErrors validates the decimal amount of every payment item.
// An empty map means all amounts are well-formed.
func (r OrderCreateRequest) AmountFieldErrors() map[string][]string {
	fieldErrors := map[string][]string{}
	for i, item := range r.Payments {
		field := fmt.Sprintf("payments[%d].amount", i)
		v, err := strconv.ParseFloat(strings.TrimSpace(item.Amount), 64)
		if err != nil {
			fieldErrors[field] = append(fieldErrors[field], "must be a decimal number")
			continue
		}
		if v <= 0 {
			fieldErrors[field] = append(fieldErrors[field], "must be greater than zero")
		}
		if v > maxOrderItemAmount {
			fieldErrors[field] = append(fieldErrors[field], fmt.Sprintf("must not exceed %.2f", maxOrderItemAmount))
		}
	}
	if len(fieldErrors) == 0 {
		return nil
	}
	return fieldErrors
}

func (r OrderCreateRequest) ToEntity() entities.PaymentOrder {
	items := make([]entities.PaymentItem, 0, len(r.Payments))
	for _, p := range r.Payments {
		installments := p.Installments
		if installments == 0 {
			installments = 1
		}
		items = append(items, entities.PaymentItem{
			Amount:          strings.TrimSpace(p.Amount),
			PaymentMethodID: strings.TrimSpace(p.PaymentMethodID),
			Token:           strings.TrimSpace(p.Token),
			Installments:    installments,
		})
	}
	return entities.PaymentOrder{
		Type:              r.Type,
		ExternalReference: strings.TrimSpace(r.ExternalReference),
		PayerEmail:        strings.ToLower(strings.TrimSpace(r.Payer.Email)),
		Payments:          items,
	}
}
