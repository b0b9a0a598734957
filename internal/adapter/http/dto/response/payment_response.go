package response

import (
	"time"

	"checkout_xpto/internal/domain/entities"
)

// PaymentRecordResponse mirrors the provider payment read model. Optional
// provider fields are omitted when absent.

type PaymentRecordResponse struct {
	ID                string         `json:"id"`
	Status            string         `json:"status"`
	StatusDetail      string         `json:"status_detail,omitempty"`
	TransactionAmount float64        `json:"transaction_amount"`
	PaymentMethodID   string         `json:"payment_method_id,omitempty"`
	PaymentTypeID     string         `json:"payment_type_id,omitempty"`
	DateCreated       string         `json:"date_created"`
	DateApproved      string         `json:"date_approved,omitempty"`
	ExternalReference string         `json:"external_reference,omitempty"`
	Installments      int            `json:"installments,omitempty"`
	Payer             *PayerResponse `json:"payer,omitempty"`
}

type PayerResponse struct {
	Email          string                  `json:"email,omitempty"`
	Identification *IdentificationResponse `json:"identification,omitempty"`
}

type IdentificationResponse struct {
	Type   string `json:"type,omitempty"`
	Number string `json:"number,omitempty"`
}

// OrderCreateResponse is the created-order summary: the first sub-payment's
// provider response plus a static confirmation message.

type OrderCreateResponse struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	CreatedAt         string `json:"created_at"`
	ExternalReference string `json:"external_reference"`
	Message           string `json:"message"`
}

func FromPaymentRecord(r entities.PaymentRecord) PaymentRecordResponse {
	resp := PaymentRecordResponse{
		ID:                r.ID,
		Status:            string(r.Status),
		StatusDetail:      r.StatusDetail,
		TransactionAmount: r.TransactionAmount,
		PaymentMethodID:   r.PaymentMethodID,
		PaymentTypeID:     r.PaymentTypeID,
		DateCreated:       formatDate(r.DateCreated),
		DateApproved:      formatDate(r.DateApproved),
		ExternalReference: r.ExternalReference,
		Installments:      r.Installments,
	}
	if r.Payer != nil {
		payer := &PayerResponse{Email: r.Payer.Email}
		if r.Payer.Identification != nil {
			payer.Identification = &IdentificationResponse{
				Type:   r.Payer.Identification.Type,
				Number: r.Payer.Identification.Number,
			}
		}
		resp.Payer = payer
	}
	return resp
}

func OrderCreatedFrom(r entities.PaymentRecord) OrderCreateResponse {
	return OrderCreateResponse{
		ID:                r.ID,
		Status:            string(r.Status),
		CreatedAt:         formatDate(r.DateCreated),
		ExternalReference: r.ExternalReference,
		Message:           "Payment order created successfully",
	}
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
