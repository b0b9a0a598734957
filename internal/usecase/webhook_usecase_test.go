package usecase

import (
	"context"
	"errors"
	"testing"

	"checkout_xpto/internal/domain/entities"
	"checkout_xpto/internal/infrastructure/payments"
	mock_interfaces "checkout_xpto/internal/usecase/interfaces/mocks"

	"github.com/mercadopago/sdk-go/pkg/payment"
	"go.uber.org/mock/gomock"
)

func TestWebhookUseCase_ValidateType(t *testing.T) {
	uc := NewWebhookUseCase(nil)

	if !uc.ValidateType("payment") {
		t.Fatalf("expected payment type to be accepted")
	}
	for _, unsupported := range []string{"merchant_order", "plan", "", "PAYMENT"} {
		if uc.ValidateType(unsupported) {
			t.Fatalf("expected type %q to be refused", unsupported)
		}
	}
}

func TestWebhookUseCase_ProcessPayment(t *testing.T) {
	t.Run("approved payment yields outcome with amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pays := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewWebhookUseCase(pays)

		pays.EXPECT().GetPayment(gomock.Any(), "55").Return(&payment.Response{
			ID:                55,
			Status:            "approved",
			TransactionAmount: 150.5,
		}, nil)

		outcome, err := uc.ProcessPayment(context.Background(), "55")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if outcome.Status != "approved" || outcome.PaymentID != "55" {
			t.Fatalf("unexpected outcome: %+v", outcome)
		}
		if outcome.Amount == nil || *outcome.Amount != 150.5 {
			t.Fatalf("expected amount 150.5, got %+v", outcome.Amount)
		}
	})

	t.Run("unknown payment maps to not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pays := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewWebhookUseCase(pays)

		pays.EXPECT().GetPayment(gomock.Any(), "55").Return(nil, &payments.ProviderError{Status: 404, Message: "Payment not found"})

		_, err := uc.ProcessPayment(context.Background(), "55")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("other fetch failures propagate unchanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pays := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewWebhookUseCase(pays)

		boom := errors.New("gateway timeout")
		pays.EXPECT().GetPayment(gomock.Any(), "55").Return(nil, boom)

		_, err := uc.ProcessPayment(context.Background(), "55")
		if !errors.Is(err, boom) {
			t.Fatalf("expected underlying error, got %v", err)
		}
	})
}

func TestClassifyPayment(t *testing.T) {
	tests := []struct {
		name        string
		record      entities.PaymentRecord
		wantMessage string
		wantStatus  string
		wantAmount  *float64
		wantReason  *string
	}{
		{
			name:        "approved carries amount",
			record:      entities.PaymentRecord{ID: "1", Status: entities.PaymentStatusApproved, TransactionAmount: 99.9},
			wantMessage: "Payment approved successfully",
			wantStatus:  "approved",
			wantAmount:  floatPtr(99.9),
		},
		{
			name:        "rejected carries reason",
			record:      entities.PaymentRecord{ID: "2", Status: entities.PaymentStatusRejected, StatusDetail: "cc_rejected_bad_filled"},
			wantMessage: "Payment rejected",
			wantStatus:  "rejected",
			wantReason:  strPtr("cc_rejected_bad_filled"),
		},
		{
			name:        "cancelled carries neither",
			record:      entities.PaymentRecord{ID: "3", Status: entities.PaymentStatusCancelled, TransactionAmount: 10},
			wantMessage: "Payment cancelled",
			wantStatus:  "cancelled",
		},
		{
			name:        "unrecognized status is echoed",
			record:      entities.PaymentRecord{ID: "4", Status: "in_mediation"},
			wantMessage: "Unknown payment status",
			wantStatus:  "in_mediation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := ClassifyPayment(tt.record)
			if outcome.Message != tt.wantMessage {
				t.Fatalf("message = %q, want %q", outcome.Message, tt.wantMessage)
			}
			if outcome.Status != tt.wantStatus {
				t.Fatalf("status = %q, want %q", outcome.Status, tt.wantStatus)
			}
			if outcome.PaymentID != tt.record.ID {
				t.Fatalf("payment id = %q, want %q", outcome.PaymentID, tt.record.ID)
			}
			if (outcome.Amount == nil) != (tt.wantAmount == nil) {
				t.Fatalf("amount = %v, want %v", outcome.Amount, tt.wantAmount)
			}
			if tt.wantAmount != nil && *outcome.Amount != *tt.wantAmount {
				t.Fatalf("amount = %v, want %v", *outcome.Amount, *tt.wantAmount)
			}
			if (outcome.Reason == nil) != (tt.wantReason == nil) {
				t.Fatalf("reason = %v, want %v", outcome.Reason, tt.wantReason)
			}
			if tt.wantReason != nil && *outcome.Reason != *tt.wantReason {
				t.Fatalf("reason = %q, want %q", *outcome.Reason, *tt.wantReason)
			}
		})
	}
}

func floatPtr(v float64) *float64 { return &v }

func strPtr(v string) *string { return &v }
