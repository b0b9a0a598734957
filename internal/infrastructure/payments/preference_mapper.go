package payments

import (
	"checkout_xpto/internal/domain/entities"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// PreferencePolicy is the checkout policy applied to every preference:
// currency, which payment types/methods are excluded, and the descriptive
// string advertised back to callers.
type PreferencePolicy struct {
	CurrencyID             string
	ExcludedPaymentTypes   []string
	ExcludedPaymentMethods []string
	AvailableMethods       string
}

// DefaultPreferencePolicy is the reference configuration: BRL only, boleto and
// credit card excluded, leaving PIX and debit card.
func DefaultPreferencePolicy() PreferencePolicy {
	return PreferencePolicy{
		CurrencyID:           "BRL",
		ExcludedPaymentTypes: []string{"credit_card", "ticket"},
		AvailableMethods:     "PIX e Cartão de débito",
	}
}

// BackURLs are the callback URLs the provider redirects the payer to after a
// Checkout Pro session.
type BackURLs struct {
	Success string
	Failure string
	Pending string
}

// BackURLsFromBase derives the three callback URLs from the configured base
// URL (no trailing slash).
func BackURLsFromBase(baseURL string) BackURLs {
	return BackURLs{
		Success: baseURL + "/success",
		Failure: baseURL + "/failure",
		Pending: baseURL + "/pending",
	}
}

// ToPreferenceRequest builds the provider preference request for a single
// line item. The item id is synthetic; the provider only requires uniqueness.
func ToPreferenceRequest(p entities.PaymentPreference, urls BackURLs, policy PreferencePolicy) preference.Request {
	excludedTypes := make([]preference.ExcludedPaymentTypeRequest, 0, len(policy.ExcludedPaymentTypes))
	for _, id := range policy.ExcludedPaymentTypes {
		excludedTypes = append(excludedTypes, preference.ExcludedPaymentTypeRequest{ID: id})
	}
	excludedMethods := make([]preference.ExcludedPaymentMethodRequest, 0, len(policy.ExcludedPaymentMethods))
	for _, id := range policy.ExcludedPaymentMethods {
		excludedMethods = append(excludedMethods, preference.ExcludedPaymentMethodRequest{ID: id})
	}

	return preference.Request{
		Items: []preference.ItemRequest{
			{
				ID:         uuid.NewString(),
				Title:      p.Title,
				Quantity:   p.Quantity,
				UnitPrice:  p.Price,
				CurrencyID: policy.CurrencyID,
			},
		},
		BackURLs: &preference.BackURLsRequest{
			Success: urls.Success,
			Failure: urls.Failure,
			Pending: urls.Pending,
		},
		PaymentMethods: &preference.PaymentMethodsRequest{
			ExcludedPaymentMethods: excludedMethods,
			ExcludedPaymentTypes:   excludedTypes,
		},
	}
}

// ToPreferenceSummary maps the provider response to the created-preference
// read model. AvailableMethods comes from the policy, not the response.
func ToPreferenceSummary(resp *preference.Response, policy PreferencePolicy) entities.PreferenceSummary {
	return entities.PreferenceSummary{
		ID:               resp.ID,
		InitPoint:        resp.InitPoint,
		SandboxInitPoint: resp.SandboxInitPoint,
		AvailableMethods: policy.AvailableMethods,
	}
}
