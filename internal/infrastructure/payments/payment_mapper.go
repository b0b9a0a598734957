package payments

import (
	"fmt"

	"checkout_xpto/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

// NewIdempotencyKey returns a fresh unique key for a single provider mutation
// call. Keys are never reused, so retrying the same logical call produces a
// new submission rather than a deduplicated one.
func NewIdempotencyKey() string {
	return uuid.NewString()
}

// ToPaymentRequest builds the provider payment request for one sub-payment of
// an order. The amount is passed pre-parsed so validation happens exactly once.
func ToPaymentRequest(order entities.PaymentOrder, item entities.PaymentItem, amount float64) payment.Request {
	return payment.Request{
		TransactionAmount: amount,
		Token:             item.Token,
		Description:       fmt.Sprintf("payment ref: %s", order.ExternalReference),
		Installments:      item.Installments,
		PaymentMethodID:   item.PaymentMethodID,
		Payer: &payment.PayerRequest{
			Email: order.PayerEmail,
		},
		ExternalReference: order.ExternalReference,
	}
}

// ToPaymentRecord maps a provider payment response to the read model.
// Optional provider fields stay as zero values when absent.
func ToPaymentRecord(resp *payment.Response) entities.PaymentRecord {
	record := entities.PaymentRecord{
		ID:                fmt.Sprintf("%d", resp.ID),
		Status:            entities.PaymentStatus(resp.Status),
		StatusDetail:      resp.StatusDetail,
		TransactionAmount: resp.TransactionAmount,
		PaymentMethodID:   resp.PaymentMethodID,
		PaymentTypeID:     resp.PaymentTypeID,
		DateCreated:       resp.DateCreated,
		DateApproved:      resp.DateApproved,
		ExternalReference: resp.ExternalReference,
		Installments:      resp.Installments,
	}

	if resp.Payer.Email != "" || resp.Payer.Identification.Type != "" || resp.Payer.Identification.Number != "" {
		payer := &entities.PaymentPayer{Email: resp.Payer.Email}
		if resp.Payer.Identification.Type != "" || resp.Payer.Identification.Number != "" {
			payer.Identification = &entities.PayerIdentification{
				Type:   resp.Payer.Identification.Type,
				Number: resp.Payer.Identification.Number,
			}
		}
		record.Payer = payer
	}

	return record
}
