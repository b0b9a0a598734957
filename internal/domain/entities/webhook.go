package entities

// WebhookTypePayment is the only notification type this service processes.
const WebhookTypePayment = "payment"

// WebhookEvent is the provider-initiated notification payload. It carries only
// a type and a payment id; current state is always re-fetched from the
// provider rather than trusted from the event.

type WebhookEvent struct {
	Type      string
	PaymentID string
}

// WebhookOutcome is the user-facing classification of a payment's current
// status after a webhook-triggered lookup.
//
// Amount is set only for approved payments, Reason only for rejected ones.

type WebhookOutcome struct {
	Message   string
	Status    string
	PaymentID string
	Amount    *float64
	Reason    *string
}
