package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"checkout_xpto/internal/domain/entities"
	"checkout_xpto/internal/infrastructure/payments"
	mock_interfaces "checkout_xpto/internal/usecase/interfaces/mocks"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/mock/gomock"
)

func newPaymentUseCaseForTest(prefs *mock_interfaces.MockIPreferenceGateway, pays *mock_interfaces.MockIPaymentGateway) *PaymentUseCase {
	return NewPaymentUseCase(
		prefs,
		pays,
		payments.BackURLsFromBase("http://localhost:3333"),
		payments.DefaultPreferencePolicy(),
	)
}

func validOrder(items ...entities.PaymentItem) entities.PaymentOrder {
	return entities.PaymentOrder{
		Type:              "online",
		ExternalReference: "order-42",
		PayerEmail:        "payer@test.com",
		Payments:          items,
	}
}

func validItem(amount string) entities.PaymentItem {
	return entities.PaymentItem{
		Amount:          amount,
		PaymentMethodID: "pix",
		Token:           "tok-0123456789",
		Installments:    1,
	}
}

func TestPaymentUseCase_CreatePreference_Validations(t *testing.T) {
	t.Run("non-positive price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prefs := mock_interfaces.NewMockIPreferenceGateway(ctrl)
		uc := newPaymentUseCaseForTest(prefs, nil)

		_, err := uc.CreatePreference(context.Background(), entities.PaymentPreference{Title: "Course", Quantity: 1, Price: 0})
		if !errors.Is(err, ErrInvalidPaymentData) {
			t.Fatalf("expected ErrInvalidPaymentData, got %v", err)
		}
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prefs := mock_interfaces.NewMockIPreferenceGateway(ctrl)
		uc := newPaymentUseCaseForTest(prefs, nil)

		_, err := uc.CreatePreference(context.Background(), entities.PaymentPreference{Title: "Course", Quantity: -1, Price: 10})
		if !errors.Is(err, ErrInvalidPaymentData) {
			t.Fatalf("expected ErrInvalidPaymentData, got %v", err)
		}
	})

	t.Run("total above ceiling issues no provider call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prefs := mock_interfaces.NewMockIPreferenceGateway(ctrl)
		uc := newPaymentUseCaseForTest(prefs, nil)

		_, err := uc.CreatePreference(context.Background(), entities.PaymentPreference{Title: "Course", Quantity: 11, Price: 10000})
		if !errors.Is(err, ErrAmountTooHigh) {
			t.Fatalf("expected ErrAmountTooHigh, got %v", err)
		}
	})

	t.Run("total at ceiling is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		prefs := mock_interfaces.NewMockIPreferenceGateway(ctrl)
		uc := newPaymentUseCaseForTest(prefs, nil)

		prefs.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(&preference.Response{ID: "pref-1"}, nil)

		_, err := uc.CreatePreference(context.Background(), entities.PaymentPreference{Title: "Course", Quantity: 10, Price: 10000})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_CreatePreference_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	prefs := mock_interfaces.NewMockIPreferenceGateway(ctrl)
	uc := newPaymentUseCaseForTest(prefs, nil)

	var captured preference.Request
	prefs.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req preference.Request) (*preference.Response, error) {
			captured = req
			return &preference.Response{
				ID:               "pref-1",
				InitPoint:        "https://mp/init",
				SandboxInitPoint: "https://mp/sandbox",
			}, nil
		})

	summary, err := uc.CreatePreference(context.Background(), entities.PaymentPreference{Title: "Course", Quantity: 2, Price: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if summary.ID != "pref-1" || summary.InitPoint != "https://mp/init" || summary.SandboxInitPoint != "https://mp/sandbox" {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.AvailableMethods != "PIX e Cartão de débito" {
		t.Fatalf("expected static available methods, got %q", summary.AvailableMethods)
	}

	if len(captured.Items) != 1 {
		t.Fatalf("expected a single item, got %d", len(captured.Items))
	}
	item := captured.Items[0]
	if item.Title != "Course" || item.Quantity != 2 || item.UnitPrice != 50 || item.CurrencyID != "BRL" {
		t.Fatalf("unexpected item: %+v", item)
	}
	if _, err := uuid.Parse(item.ID); err != nil {
		t.Fatalf("expected synthetic uuid item id, got %q", item.ID)
	}
	if captured.BackURLs == nil || captured.BackURLs.Success != "http://localhost:3333/success" ||
		captured.BackURLs.Failure != "http://localhost:3333/failure" ||
		captured.BackURLs.Pending != "http://localhost:3333/pending" {
		t.Fatalf("unexpected back urls: %+v", captured.BackURLs)
	}
	if captured.PaymentMethods == nil || len(captured.PaymentMethods.ExcludedPaymentTypes) != 2 {
		t.Fatalf("unexpected payment methods: %+v", captured.PaymentMethods)
	}
}

func TestPaymentUseCase_CreateOrder_Validations(t *testing.T) {
	t.Run("empty payments list issues no provider call", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pays := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newPaymentUseCaseForTest(nil, pays)

		_, err := uc.CreateOrder(context.Background(), validOrder())
		if !errors.Is(err, ErrInvalidPaymentData) {
			t.Fatalf("expected ErrInvalidPaymentData, got %v", err)
		}
	})

	t.Run("missing token", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pays := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newPaymentUseCaseForTest(nil, pays)

		item := validItem("10.00")
		item.Token = "  "
		_, err := uc.CreateOrder(context.Background(), validOrder(item))
		if !errors.Is(err, ErrInvalidPaymentData) {
			t.Fatalf("expected ErrInvalidPaymentData, got %v", err)
		}
	})

	t.Run("non-numeric amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pays := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newPaymentUseCaseForTest(nil, pays)

		_, err := uc.CreateOrder(context.Background(), validOrder(validItem("abc")))
		if !errors.Is(err, ErrInvalidPaymentData) {
			t.Fatalf("expected ErrInvalidPaymentData, got %v", err)
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pays := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newPaymentUseCaseForTest(nil, pays)

		_, err := uc.CreateOrder(context.Background(), validOrder(validItem("0")))
		if !errors.Is(err, ErrInsufficientAmount) {
			t.Fatalf("expected ErrInsufficientAmount, got %v", err)
		}
	})
}

func TestPaymentUseCase_CreateOrder_SubmitsEveryItemReturnsFirst(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	pays := mock_interfaces.NewMockIPaymentGateway(ctrl)
	uc := newPaymentUseCaseForTest(nil, pays)

	var keys []string
	nextID := 100
	pays.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).Times(3).DoAndReturn(
		func(_ context.Context, req payment.Request, idempotencyKey string) (*payment.Response, error) {
			if req.Description != "payment ref: order-42" {
				t.Fatalf("unexpected description %q", req.Description)
			}
			if req.Payer == nil || req.Payer.Email != "payer@test.com" {
				t.Fatalf("unexpected payer: %+v", req.Payer)
			}
			keys = append(keys, idempotencyKey)
			nextID++
			return &payment.Response{ID: nextID, Status: "approved", TransactionAmount: req.TransactionAmount, DateCreated: time.Now().UTC()}, nil
		})

	record, err := uc.CreateOrder(context.Background(), validOrder(validItem("10.00"), validItem("20.00"), validItem("30.00")))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Only the first sub-payment's response is surfaced.
	if record.ID != "101" {
		t.Fatalf("expected first provider response, got id=%s", record.ID)
	}
	if record.TransactionAmount != 10 {
		t.Fatalf("expected first item amount, got %.2f", record.TransactionAmount)
	}

	if len(keys) != 3 {
		t.Fatalf("expected 3 idempotency keys, got %d", len(keys))
	}
	seen := map[string]bool{}
	for _, k := range keys {
		if _, err := uuid.Parse(k); err != nil {
			t.Fatalf("idempotency key %q is not a uuid", k)
		}
		if seen[k] {
			t.Fatalf("idempotency key %q reused", k)
		}
		seen[k] = true
	}
}

func TestPaymentUseCase_CreateOrder_ProviderFailures(t *testing.T) {
	t.Run("structured provider error becomes MercadoPagoAPIError", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pays := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newPaymentUseCaseForTest(nil, pays)

		providerBody := `{"message":"cc_rejected_bad_filled","status":400,"cause":[{"code":"2067","description":"invalid card number"}]}`
		pays.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("api error: %s", providerBody))

		_, err := uc.CreateOrder(context.Background(), validOrder(validItem("10.00")))
		var apiErr *MercadoPagoAPIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected MercadoPagoAPIError, got %v", err)
		}
		if apiErr.Message != "Failed to process payment: cc_rejected_bad_filled: invalid card number" {
			t.Fatalf("unexpected composed message %q", apiErr.Message)
		}
	})

	t.Run("unstructured error propagates unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pays := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newPaymentUseCaseForTest(nil, pays)

		boom := errors.New("connection reset")
		pays.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom)

		_, err := uc.CreateOrder(context.Background(), validOrder(validItem("10.00")))
		if !errors.Is(err, boom) {
			t.Fatalf("expected underlying error, got %v", err)
		}
	})

	t.Run("failure on first item aborts the remaining items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pays := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newPaymentUseCaseForTest(nil, pays)

		pays.EXPECT().CreatePayment(gomock.Any(), gomock.Any(), gomock.Any()).Times(1).Return(nil, errors.New("down"))

		_, err := uc.CreateOrder(context.Background(), validOrder(validItem("10.00"), validItem("20.00")))
		if err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestPaymentUseCase_GetPaymentByID(t *testing.T) {
	t.Run("blank id", func(t *testing.T) {
		uc := newPaymentUseCaseForTest(nil, nil)
		_, err := uc.GetPaymentByID(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidPaymentData) {
			t.Fatalf("expected ErrInvalidPaymentData, got %v", err)
		}
	})

	t.Run("provider not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pays := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newPaymentUseCaseForTest(nil, pays)

		pays.EXPECT().GetPayment(gomock.Any(), "123").Return(nil, &payments.ProviderError{Status: 404, Message: "Payment not found"})

		_, err := uc.GetPaymentByID(context.Background(), "123")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("other provider failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pays := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newPaymentUseCaseForTest(nil, pays)

		boom := errors.New("timeout")
		pays.EXPECT().GetPayment(gomock.Any(), "123").Return(nil, boom)

		_, err := uc.GetPaymentByID(context.Background(), "123")
		if !errors.Is(err, boom) {
			t.Fatalf("expected underlying error, got %v", err)
		}
	})

	t.Run("success maps provider fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pays := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := newPaymentUseCaseForTest(nil, pays)

		created := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		pays.EXPECT().GetPayment(gomock.Any(), "123").Return(&payment.Response{
			ID:                123,
			Status:            "approved",
			StatusDetail:      "accredited",
			TransactionAmount: 99.9,
			PaymentMethodID:   "pix",
			DateCreated:       created,
			ExternalReference: "order-42",
			Installments:      1,
		}, nil)

		record, err := uc.GetPaymentByID(context.Background(), "123")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if record.ID != "123" || record.Status != entities.PaymentStatusApproved || record.TransactionAmount != 99.9 {
			t.Fatalf("unexpected record: %+v", record)
		}
		if !record.DateCreated.Equal(created) {
			t.Fatalf("unexpected date_created: %v", record.DateCreated)
		}
		if record.Payer != nil {
			t.Fatalf("expected absent payer, got %+v", record.Payer)
		}
	})
}
