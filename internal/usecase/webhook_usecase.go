package usecase

import (
	"context"
	"errors"
	"log"

	"checkout_xpto/internal/domain/entities"
	"checkout_xpto/internal/infrastructure/payments"
	"checkout_xpto/internal/usecase/interfaces"
)

//go:generate mockgen -source=webhook_usecase.go -destination=../adapter/http/handlers/mocks/webhook_usecase_mock.go -package=mocks

// IWebhookUseCase resolves provider webhook notifications: the event payload
// carries only a payment id, so current state is re-fetched and classified.

type IWebhookUseCase interface {
	ValidateType(webhookType string) bool
	ProcessPayment(ctx context.Context, paymentID string) (entities.WebhookOutcome, error)
}

type WebhookUseCase struct {
	payments interfaces.IPaymentGateway
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

func NewWebhookUseCase(paymentsGateway interfaces.IPaymentGateway) *WebhookUseCase {
	return &WebhookUseCase{payments: paymentsGateway}
}

// ValidateType reports whether this notification type is processed at all.
func (u *WebhookUseCase) ValidateType(webhookType string) bool {
	return webhookType == entities.WebhookTypePayment
}

// ProcessPayment fetches the payment's current state and classifies it.
// Fetch failures other than not-found propagate unchanged.
func (u *WebhookUseCase) ProcessPayment(ctx context.Context, paymentID string) (entities.WebhookOutcome, error) {
	if u.payments == nil {
		return entities.WebhookOutcome{}, errors.New("payment gateway not configured")
	}
	log.Printf("[webhook][usecase] process start payment_id=%s", paymentID)

	resp, err := u.payments.GetPayment(ctx, paymentID)
	if err != nil {
		log.Printf("[webhook][usecase] payment fetch failed payment_id=%s err=%v", paymentID, err)
		if payments.IsNotFound(err) {
			return entities.WebhookOutcome{}, ErrPaymentNotFound
		}
		return entities.WebhookOutcome{}, err
	}

	outcome := ClassifyPayment(payments.ToPaymentRecord(resp))
	log.Printf("[webhook][usecase] process success payment_id=%s status=%s", paymentID, outcome.Status)
	return outcome, nil
}

// ClassifyPayment maps a fetched payment record into the user-facing webhook
// outcome. Pure: no provider calls, no side effects.
func ClassifyPayment(record entities.PaymentRecord) entities.WebhookOutcome {
	switch record.Status {
	case entities.PaymentStatusApproved:
		amount := record.TransactionAmount
		return entities.WebhookOutcome{
			Message:   "Payment approved successfully",
			Status:    string(entities.PaymentStatusApproved),
			PaymentID: record.ID,
			Amount:    &amount,
		}
	case entities.PaymentStatusRejected:
		reason := record.StatusDetail
		return entities.WebhookOutcome{
			Message:   "Payment rejected",
			Status:    string(entities.PaymentStatusRejected),
			PaymentID: record.ID,
			Reason:    &reason,
		}
	case entities.PaymentStatusCancelled:
		return entities.WebhookOutcome{
			Message:   "Payment cancelled",
			Status:    string(entities.PaymentStatusCancelled),
			PaymentID: record.ID,
		}
	default:
		return entities.WebhookOutcome{
			Message:   "Unknown payment status",
			Status:    string(record.Status),
			PaymentID: record.ID,
		}
	}
}
