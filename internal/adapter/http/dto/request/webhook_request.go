package request

// WebhookRequest is the provider notification payload. The type literal is
// checked by the webhook use case, not by binding, so unsupported types get a
// dedicated response instead of a generic validation failure.

type WebhookRequest struct {
	Type string             `json:"type" binding:"required"`
	Data WebhookDataRequest `json:"data" binding:"required"`
}

type WebhookDataRequest struct {
	ID string `json:"id" binding:"required"`
}

// CallbackQuery is the redirect query string Mercado Pago appends when
// sending the payer back to the success/failure/pending routes.

type CallbackQuery struct {
	PaymentID         string `form:"payment_id"`
	Status            string `form:"status"`
	ExternalReference string `form:"external_reference"`
	MerchantOrderID   string `form:"merchant_order_id"`
}
