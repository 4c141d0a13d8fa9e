package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"loja_xpto/internal/domain/entities"
	mock_interfaces "loja_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCardCheckoutUseCase_PayOrder_Validations(t *testing.T) {
	t.Run("empty order id", func(t *testing.T) {
		uc := NewCardCheckoutUseCase(nil, nil)
		_, err := uc.PayOrder(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidCheckoutOrder) {
			t.Fatalf("expected ErrInvalidCheckoutOrder, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewCardCheckoutUseCase(nil, nil)
		_, err := uc.PayOrder(context.Background(), "doc-1", nil)
		if !errors.Is(err, ErrInvalidCardPayload) {
			t.Fatalf("expected ErrInvalidCardPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewCardCheckoutUseCase(nil, nil)
		_, err := uc.PayOrder(context.Background(), "doc-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidCardPayload) {
			t.Fatalf("expected ErrInvalidCardPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewCardCheckoutUseCase(nil, nil)
		_, err := uc.PayOrder(context.Background(), "doc-1", json.RawMessage(`{}`))
		if err == nil || err.Error() != "card gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("order not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockICardGateway(ctrl)
		uc := NewCardCheckoutUseCase(orders, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "doc-404").Return(entities.Order{}, nil)

		_, err := uc.PayOrder(context.Background(), "doc-404", json.RawMessage(`{}`))
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("order already paid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockICardGateway(ctrl)
		uc := NewCardCheckoutUseCase(orders, gateway)

		paid := entities.Order{ID: "doc-1", Payment: entities.Payment{Status: entities.PaymentStatusCompleted}}
		orders.EXPECT().GetByID(gomock.Any(), "doc-1").Return(paid, nil)

		_, err := uc.PayOrder(context.Background(), "doc-1", json.RawMessage(`{}`))
		if !errors.Is(err, ErrOrderAlreadyPaid) {
			t.Fatalf("expected ErrOrderAlreadyPaid, got %v", err)
		}
	})
}

func TestCardCheckoutUseCase_PayOrder_Success(t *testing.T) {
	cases := []struct {
		name           string
		providerStatus string
		want           entities.PaymentStatus
	}{
		{name: "approved", providerStatus: "approved", want: entities.PaymentStatusCompleted},
		{name: "rejected", providerStatus: "rejected", want: entities.PaymentStatusFailed},
		{name: "in process", providerStatus: "in_process", want: entities.PaymentStatusProcessing},
		{name: "refunded", providerStatus: "refunded", want: entities.PaymentStatusRefunded},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			orders := mock_interfaces.NewMockIOrderRepository(ctrl)
			gateway := mock_interfaces.NewMockICardGateway(ctrl)
			uc := NewCardCheckoutUseCase(orders, gateway)

			order := entities.Order{ID: "doc-1", OrderNumber: "ORD-1", TotalCents: 7720}
			orders.EXPECT().GetByID(gomock.Any(), "doc-1").Return(order, nil)

			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != "doc-1" {
						t.Fatalf("external_reference not set")
					}
					if body["description"] != "Order ORD-1" {
						t.Fatalf("description not set")
					}
					if body["transaction_amount"] != float64(77.2) {
						t.Fatalf("transaction_amount must come from the stored order, got %v", body["transaction_amount"])
					}
					return "mp-1", tc.providerStatus, json.RawMessage(`{"id":1}`), nil
				},
			)

			orders.EXPECT().UpdatePayment(gomock.Any(), "doc-1", gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, p entities.Payment) (entities.Order, error) {
					if p.Status != tc.want {
						t.Fatalf("expected %s, got %s", tc.want, p.Status)
					}
					if p.TransactionID != "mp-1" {
						t.Fatalf("expected provider payment id recorded, got %q", p.TransactionID)
					}
					if p.Gateway.Provider != "mercadopago" {
						t.Fatalf("expected card provider, got %q", p.Gateway.Provider)
					}
					return entities.Order{}, nil
				},
			)

			// Client-supplied amount must be ignored.
			res, err := uc.PayOrder(context.Background(), "doc-1", json.RawMessage(`{"payment_method_id":"visa","transaction_amount":1}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !res.Updated || res.PaymentStatus != tc.want {
				t.Fatalf("unexpected result: %+v", res)
			}
		})
	}

	t.Run("gateway error maps to rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockICardGateway(ctrl)
		uc := NewCardCheckoutUseCase(orders, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Order{ID: "doc-1"}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.PayOrder(context.Background(), "doc-1", json.RawMessage(`{"payment_method_id":"visa"}`))
		if !errors.Is(err, ErrCardGatewayRejected) {
			t.Fatalf("expected ErrCardGatewayRejected, got %v", err)
		}
	})

	t.Run("repository update error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockICardGateway(ctrl)
		uc := NewCardCheckoutUseCase(orders, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Order{ID: "doc-1"}, nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("mp-1", "approved", nil, nil)
		orders.EXPECT().UpdatePayment(gomock.Any(), "doc-1", gomock.Any()).Return(entities.Order{}, errors.New("db"))

		_, err := uc.PayOrder(context.Background(), "doc-1", json.RawMessage(`{"payment_method_id":"visa"}`))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestMapCardProviderStatus(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "approved", want: "paid"},
		{in: " APPROVED ", want: "paid"},
		{in: "rejected", want: "failed"},
		{in: "cancelled", want: "failed"},
		{in: "charged_back", want: "failed"},
		{in: "refunded", want: "refunded"},
		{in: "in_process", want: "processing"},
		{in: "authorized", want: "processing"},
		{in: "anything_else", want: "pending"},
		{in: "", want: "pending"},
	}

	for _, tc := range cases {
		if got := mapCardProviderStatus(tc.in); got != tc.want {
			t.Fatalf("mapCardProviderStatus(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
