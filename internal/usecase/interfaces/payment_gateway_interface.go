package interfaces

import (
	"context"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/payment_gateway_interface_mock.go -package=mocks

// IPreferenceGateway abstracts Checkout Pro preference creation at the
// payment provider.
type IPreferenceGateway interface {
	CreatePreference(ctx context.Context, req preference.Request) (*preference.Response, error)
}

// IPaymentGateway abstracts transparent-checkout payment submission and
// payment lookup at the payment provider.
//
// CreatePayment attaches the given idempotency key to the outbound call, not
// to the payload.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, req payment.Request, idempotencyKey string) (*payment.Response, error)
	GetPayment(ctx context.Context, id string) (*payment.Response, error)
}
