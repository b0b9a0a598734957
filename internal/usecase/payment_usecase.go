package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"checkout_xpto/internal/domain/entities"
	"checkout_xpto/internal/infrastructure/payments"
	"checkout_xpto/internal/usecase/interfaces"
)

var (
	ErrInvalidPaymentData = errors.New("invalid payment data")
	ErrAmountTooHigh      = errors.New("preference total exceeds the allowed ceiling")
	ErrInsufficientAmount = errors.New("payment amount must be greater than zero")
	ErrPaymentNotFound    = errors.New("payment not found")
)

//go:generate mockgen -source=payment_usecase.go -destination=../adapter/http/handlers/mocks/payment_usecase_mock.go -package=mocks

// MaxPreferenceTotal caps price * quantity for a preference, in BRL.
const MaxPreferenceTotal = 100000.0

// MercadoPagoAPIError is a structured rejection from the provider, with the
// message composed from the provider-supplied text.
type MercadoPagoAPIError struct {
	Message string
}

func (e *MercadoPagoAPIError) Error() string {
	return e.Message
}

// IPaymentUseCase exposes the checkout operations:
//   - CreatePreference: Checkout Pro session yielding a redirect URL
//   - CreateOrder: transparent checkout, one provider call per sub-payment
//   - GetPaymentByID: live lookup against the provider

type IPaymentUseCase interface {
	CreatePreference(ctx context.Context, pref entities.PaymentPreference) (entities.PreferenceSummary, error)
	CreateOrder(ctx context.Context, order entities.PaymentOrder) (entities.PaymentRecord, error)
	GetPaymentByID(ctx context.Context, id string) (entities.PaymentRecord, error)
}

type PaymentUseCase struct {
	preferences interfaces.IPreferenceGateway
	payments    interfaces.IPaymentGateway
	backURLs    payments.BackURLs
	policy      payments.PreferencePolicy
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	preferences interfaces.IPreferenceGateway,
	paymentsGateway interfaces.IPaymentGateway,
	backURLs payments.BackURLs,
	policy payments.PreferencePolicy,
) *PaymentUseCase {
	return &PaymentUseCase{
		preferences: preferences,
		payments:    paymentsGateway,
		backURLs:    backURLs,
		policy:      policy,
	}
}

func (u *PaymentUseCase) CreatePreference(ctx context.Context, pref entities.PaymentPreference) (entities.PreferenceSummary, error) {
	log.Printf("[payment][usecase] preference create start title=%q quantity=%d price=%.2f", pref.Title, pref.Quantity, pref.Price)

	if pref.Price <= 0 {
		log.Printf("[payment][usecase] invalid preference price=%.2f", pref.Price)
		return entities.PreferenceSummary{}, fmt.Errorf("price must be greater than zero: %w", ErrInvalidPaymentData)
	}
	if pref.Quantity <= 0 {
		log.Printf("[payment][usecase] invalid preference quantity=%d", pref.Quantity)
		return entities.PreferenceSummary{}, fmt.Errorf("quantity must be greater than zero: %w", ErrInvalidPaymentData)
	}
	if pref.Total() > MaxPreferenceTotal {
		log.Printf("[payment][usecase] preference total too high total=%.2f", pref.Total())
		return entities.PreferenceSummary{}, ErrAmountTooHigh
	}
	if u.preferences == nil {
		return entities.PreferenceSummary{}, errors.New("preference gateway not configured")
	}

	req := payments.ToPreferenceRequest(pref, u.backURLs, u.policy)
	resp, err := u.preferences.CreatePreference(ctx, req)
	if err != nil {
		log.Printf("[payment][usecase] preference create failed err=%v", err)
		return entities.PreferenceSummary{}, err
	}

	log.Printf("[payment][usecase] preference create success preference_id=%s", resp.ID)
	return payments.ToPreferenceSummary(resp, u.policy), nil
}

func (u *PaymentUseCase) CreateOrder(ctx context.Context, order entities.PaymentOrder) (entities.PaymentRecord, error) {
	log.Printf("[payment][usecase] order create start external_reference=%s items=%d", order.ExternalReference, len(order.Payments))

	if len(order.Payments) == 0 {
		log.Printf("[payment][usecase] order has no payment items external_reference=%s", order.ExternalReference)
		return entities.PaymentRecord{}, fmt.Errorf("at least one payment item is required: %w", ErrInvalidPaymentData)
	}
	if u.payments == nil {
		return entities.PaymentRecord{}, errors.New("payment gateway not configured")
	}

	results := make([]entities.PaymentRecord, 0, len(order.Payments))

	// Items are submitted sequentially; a failure on item N aborts items N+1..k.
	for i, item := range order.Payments {
		if strings.TrimSpace(item.Token) == "" {
			log.Printf("[payment][usecase] missing payment token item=%d external_reference=%s", i, order.ExternalReference)
			return entities.PaymentRecord{}, fmt.Errorf("payment token is required: %w", ErrInvalidPaymentData)
		}

		amount, err := item.AmountValue()
		if err != nil {
			log.Printf("[payment][usecase] invalid payment amount item=%d amount=%q", i, item.Amount)
			return entities.PaymentRecord{}, fmt.Errorf("%v: %w", err, ErrInvalidPaymentData)
		}
		if amount <= 0 {
			log.Printf("[payment][usecase] non-positive payment amount item=%d amount=%.2f", i, amount)
			return entities.PaymentRecord{}, ErrInsufficientAmount
		}

		idempotencyKey := payments.NewIdempotencyKey()
		log.Printf("[payment][usecase] submitting payment item=%d amount=%.2f idempotency_key=%s", i, amount, idempotencyKey)

		resp, err := u.payments.CreatePayment(ctx, payments.ToPaymentRequest(order, item, amount), idempotencyKey)
		if err != nil {
			if pe, ok := payments.AsProviderError(err); ok {
				log.Printf("[payment][usecase] provider rejected payment item=%d err=%v", i, err)
				return entities.PaymentRecord{}, &MercadoPagoAPIError{
					Message: "Failed to process payment: " + pe.ComposedMessage(),
				}
			}
			log.Printf("[payment][usecase] payment gateway failed item=%d err=%v", i, err)
			return entities.PaymentRecord{}, err
		}

		results = append(results, payments.ToPaymentRecord(resp))
	}

	// Only the first provider response is returned; the remaining items were
	// still submitted and billed.
	first := results[0]
	log.Printf("[payment][usecase] order create success external_reference=%s payment_id=%s status=%s", order.ExternalReference, first.ID, first.Status)
	return first, nil
}

func (u *PaymentUseCase) GetPaymentByID(ctx context.Context, id string) (entities.PaymentRecord, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentRecord{}, fmt.Errorf("payment id is required: %w", ErrInvalidPaymentData)
	}
	if u.payments == nil {
		return entities.PaymentRecord{}, errors.New("payment gateway not configured")
	}
	log.Printf("[payment][usecase] payment get start payment_id=%s", id)

	resp, err := u.payments.GetPayment(ctx, id)
	if err != nil {
		log.Printf("[payment][usecase] payment get failed payment_id=%s err=%v", id, err)
		if payments.IsNotFound(err) {
			return entities.PaymentRecord{}, ErrPaymentNotFound
		}
		return entities.PaymentRecord{}, err
	}

	record := payments.ToPaymentRecord(resp)
	log.Printf("[payment][usecase] payment get success payment_id=%s status=%s", record.ID, record.Status)
	return record, nil
}
