package payments

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway implements the preference and payment gateways on top of
// the official Mercado Pago SDK. It is constructed once at startup and shared
// by all requests; the SDK clients are safe for concurrent use.
type MercadoPagoGateway struct {
	preferences preference.Client
	payments    payment.Client
}

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if strings.TrimSpace(accessToken) == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}

	// Every mutation call goes out with the idempotency key carried in its
	// context (see WithIdempotencyKey).
	cfg.Requester = &idempotencyRequester{next: cfg.Requester}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{
		preferences: preference.NewClient(cfg),
		payments:    payment.NewClient(cfg),
	}, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, req preference.Request) (*preference.Response, error) {
	if g == nil || g.preferences == nil {
		return nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] preference create start items=%d", len(req.Items))

	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		log.Printf("[payment][gateway] preference create failed err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] preference create success preference_id=%s", resp.ID)
	return resp, nil
}

func (g *MercadoPagoGateway) CreatePayment(ctx context.Context, req payment.Request, idempotencyKey string) (*payment.Response, error) {
	if g == nil || g.payments == nil {
		return nil, ErrMercadoPagoGatewayNotConfigured
	}
	log.Printf("[payment][gateway] payment create start amount=%.2f idempotency_key=%s", req.TransactionAmount, idempotencyKey)

	resp, err := g.payments.Create(WithIdempotencyKey(ctx, idempotencyKey), req)
	if err != nil {
		log.Printf("[payment][gateway] payment create failed err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] payment create success provider_payment_id=%d provider_status=%s", resp.ID, resp.Status)
	return resp, nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, id string) (*payment.Response, error) {
	if g == nil || g.payments == nil {
		return nil, ErrMercadoPagoGatewayNotConfigured
	}

	// Provider payment ids are numeric; anything else cannot exist there.
	numericID, err := strconv.Atoi(strings.TrimSpace(id))
	if err != nil {
		log.Printf("[payment][gateway] payment get rejected non-numeric id=%q", id)
		return nil, &ProviderError{Status: http.StatusNotFound, Message: "Payment not found"}
	}
	log.Printf("[payment][gateway] payment get start payment_id=%d", numericID)

	resp, err := g.payments.Get(ctx, numericID)
	if err != nil {
		log.Printf("[payment][gateway] payment get failed payment_id=%d err=%v", numericID, err)
		return nil, err
	}
	log.Printf("[payment][gateway] payment get success payment_id=%d status=%s", numericID, resp.Status)
	return resp, nil
}

type idempotencyKeyContextKey struct{}

// WithIdempotencyKey stores an idempotency key in the context so the requester
// wrapper can attach it to the outgoing HTTP call.
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, idempotencyKeyContextKey{}, key)
}

// idempotencyRequester decorates the SDK requester, setting X-Idempotency-Key
// from the request context when one is present.
type idempotencyRequester struct {
	next interface {
		Do(req *http.Request) (*http.Response, error)
	}
}

func (r *idempotencyRequester) Do(req *http.Request) (*http.Response, error) {
	if key, ok := req.Context().Value(idempotencyKeyContextKey{}).(string); ok && key != "" {
		req.Header.Set("X-Idempotency-Key", key)
	}
	return r.next.Do(req)
}
