package response

import "checkout_xpto/internal/domain/entities"

type WebhookOutcomeResponse struct {
	Message   string   `json:"message"`
	Status    string   `json:"status"`
	PaymentID string   `json:"payment_id"`
	Amount    *float64 `json:"amount,omitempty"`
	Reason    *string  `json:"reason,omitempty"`
}

func FromWebhookOutcome(o entities.WebhookOutcome) WebhookOutcomeResponse {
	return WebhookOutcomeResponse{
		Message:   o.Message,
		Status:    o.Status,
		PaymentID: o.PaymentID,
		Amount:    o.Amount,
		Reason:    o.Reason,
	}
}

// CallbackResponse echoes the redirect query back with a static message and a
// formatted timestamp. Callback routes never touch the provider.

type CallbackResponse struct {
	Message           string `json:"message"`
	PaymentID         string `json:"payment_id,omitempty"`
	Status            string `json:"status,omitempty"`
	ExternalReference string `json:"external_reference,omitempty"`
	MerchantOrderID   string `json:"merchant_order_id,omitempty"`
	Timestamp         string `json:"timestamp"`
}
