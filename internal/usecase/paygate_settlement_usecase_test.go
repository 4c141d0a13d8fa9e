package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"loja_xpto/internal/domain/entities"
	mock_interfaces "loja_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestPaygateSettlementUseCase_SettleCallback_Validations(t *testing.T) {
	t.Run("nil payload", func(t *testing.T) {
		uc := NewPaygateSettlementUseCase(nil)
		_, err := uc.SettleCallback(context.Background(), nil)
		if !errors.Is(err, ErrEmptyCallbackPayload) {
			t.Fatalf("expected ErrEmptyCallbackPayload, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewPaygateSettlementUseCase(nil)
		_, err := uc.SettleCallback(context.Background(), map[string]any{})
		if !errors.Is(err, ErrEmptyCallbackPayload) {
			t.Fatalf("expected ErrEmptyCallbackPayload, got %v", err)
		}
	})

	t.Run("no order matched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaygateSettlementUseCase(repo)

		repo.EXPECT().GetByOrderNumber(gomock.Any(), "ORD-404").Return(entities.Order{}, nil)

		_, err := uc.SettleCallback(context.Background(), map[string]any{"order_number": "ORD-404"})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestPaygateSettlementUseCase_SettleCallback_OrderLocation(t *testing.T) {
	t.Run("doc id wins", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaygateSettlementUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Order{ID: "doc-1", OrderNumber: "ORD-1"}, nil)
		repo.EXPECT().UpdatePayment(gomock.Any(), "doc-1", gomock.Any()).Return(entities.Order{}, nil)

		res, err := uc.SettleCallback(context.Background(), map[string]any{
			"order_doc_id": "doc-1",
			"order_number": "ORD-1",
			"txid_in":      "0xabc",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Updated || res.OrderID != "doc-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("doc id lookup error falls back to order number", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaygateSettlementUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "mangled").Return(entities.Order{}, errors.New("ValidationException"))
		repo.EXPECT().GetByOrderNumber(gomock.Any(), "ORD-1").Return(entities.Order{ID: "doc-1", OrderNumber: "ORD-1"}, nil)
		repo.EXPECT().UpdatePayment(gomock.Any(), "doc-1", gomock.Any()).Return(entities.Order{}, nil)

		res, err := uc.SettleCallback(context.Background(), map[string]any{
			"order_doc_id": "mangled",
			"order_number": "ORD-1",
			"status":       "paid",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.OrderID != "doc-1" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("session token extraction is last resort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaygateSettlementUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "9f2ab31c").Return(entities.Order{ID: "9f2ab31c", OrderNumber: "ORD-7"}, nil)
		repo.EXPECT().UpdatePayment(gomock.Any(), "9f2ab31c", gomock.Any()).Return(entities.Order{}, nil)

		res, err := uc.SettleCallback(context.Background(), map[string]any{
			"session_id": "cs_SESSION_9f2ab31c",
			"status":     "paid",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.OrderNumber != "ORD-7" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("session token without match is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaygateSettlementUseCase(repo)

		_, err := uc.SettleCallback(context.Background(), map[string]any{
			"session_id": "opaque-token-without-marker",
			"status":     "paid",
		})
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestPaygateSettlementUseCase_SettleCallback_FreshSuccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewPaygateSettlementUseCase(repo)

	stored := entities.Order{
		ID:          "doc-1",
		OrderNumber: "ORD-1",
		Payment: entities.Payment{
			Status:    entities.PaymentStatusProcessing,
			GatewayID: "ipn-stored",
			Gateway: entities.PaymentGateway{
				Name:      "paygate",
				ID:        "0xaddr-stored",
				Provider:  "paygate",
				Status:    entities.PaymentStatusProcessing,
				SessionID: "ipn-stored",
				Metadata: entities.GatewayMetadata{
					Coin:            "ETH",
					AddressIn:       "0xaddr-stored",
					CallbackURL:     "https://shop.example/v1/paygate/callback?order_doc_id=doc-1",
					ClientReference: "ref-1",
				},
			},
		},
	}

	repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(stored, nil)
	repo.EXPECT().UpdatePayment(gomock.Any(), "doc-1", gomock.AssignableToTypeOf(entities.Payment{})).DoAndReturn(
		func(_ context.Context, _ string, p entities.Payment) (entities.Order, error) {
			if p.Status != entities.PaymentStatusCompleted {
				t.Fatalf("expected completed, got %s", p.Status)
			}
			if p.TransactionID != "0xtx-in" {
				t.Fatalf("expected tx recorded, got %q", p.TransactionID)
			}
			if p.PaidAt == nil {
				t.Fatalf("expected PaidAt set")
			}
			if p.Gateway.Status != entities.PaymentStatusCompleted {
				t.Fatalf("gateway status must mirror payment status")
			}
			meta := p.Gateway.Metadata
			if meta.ValueCoin == nil || *meta.ValueCoin != 10.5 {
				t.Fatalf("expected value_coin 10.5, got %v", meta.ValueCoin)
			}
			if meta.Coin != "ETH" {
				t.Fatalf("expected coin preserved, got %q", meta.Coin)
			}
			if meta.TxidIn != "0xtx-in" {
				t.Fatalf("expected txid_in recorded, got %q", meta.TxidIn)
			}
			if meta.CallbackReceivedAt == nil {
				t.Fatalf("expected callback receipt stamped")
			}
			// Fields the callback did not carry keep their stored values.
			if meta.ClientReference != "ref-1" || meta.AddressIn != "0xaddr-stored" {
				t.Fatalf("stored metadata must be preserved: %+v", meta)
			}
			return entities.Order{}, nil
		},
	)

	res, err := uc.SettleCallback(context.Background(), map[string]any{
		"order_doc_id": "doc-1",
		"txid_in":      "0xtx-in",
		"value_coin":   "10.5",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.Updated || res.PaymentStatus != entities.PaymentStatusCompleted {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestPaygateSettlementUseCase_SettleCallback_Idempotency(t *testing.T) {
	t.Run("replay of applied callback is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaygateSettlementUseCase(repo)

		paidAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
		settled := entities.Order{
			ID:          "doc-1",
			OrderNumber: "ORD-1",
			Payment: entities.Payment{
				Status:        entities.PaymentStatusCompleted,
				TransactionID: "0xtx-in",
				PaidAt:        &paidAt,
				Gateway: entities.PaymentGateway{
					Status: entities.PaymentStatusCompleted,
					Metadata: entities.GatewayMetadata{
						ValueCoin: floatPtr(10.5),
						Coin:      "ETH",
						TxidIn:    "0xtx-in",
					},
				},
			},
		}

		// Same delivery twice; UpdatePayment must not be called.
		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(settled, nil).Times(2)

		payload := map[string]any{
			"order_doc_id": "doc-1",
			"txid_in":      "0xtx-in",
			"value_coin":   10.5,
			"coin":         "ETH",
		}
		for i := 0; i < 2; i++ {
			res, err := uc.SettleCallback(context.Background(), payload)
			if err != nil {
				t.Fatalf("unexpected error on delivery %d: %v", i+1, err)
			}
			if res.Updated {
				t.Fatalf("delivery %d should be a no-op", i+1)
			}
			if res.PaymentStatus != entities.PaymentStatusCompleted {
				t.Fatalf("unexpected status: %s", res.PaymentStatus)
			}
		}
	})

	t.Run("new transaction hash forces a write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaygateSettlementUseCase(repo)

		settled := entities.Order{
			ID: "doc-1",
			Payment: entities.Payment{
				Status:        entities.PaymentStatusCompleted,
				TransactionID: "0xold",
				Gateway: entities.PaymentGateway{
					Status:   entities.PaymentStatusCompleted,
					Metadata: entities.GatewayMetadata{TxidIn: "0xold"},
				},
			},
		}

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(settled, nil)
		repo.EXPECT().UpdatePayment(gomock.Any(), "doc-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, p entities.Payment) (entities.Order, error) {
				if p.TransactionID != "0xnew" {
					t.Fatalf("expected new tx recorded, got %q", p.TransactionID)
				}
				return entities.Order{}, nil
			},
		)

		res, err := uc.SettleCallback(context.Background(), map[string]any{
			"order_doc_id": "doc-1",
			"txid_in":      "0xnew",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Updated {
			t.Fatalf("expected a write")
		}
	})
}

func TestPaygateSettlementUseCase_SettleCallback_PaidAtSetOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewPaygateSettlementUseCase(repo)

	firstPaidAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	settled := entities.Order{
		ID: "doc-1",
		Payment: entities.Payment{
			Status:        entities.PaymentStatusCompleted,
			TransactionID: "0xold",
			PaidAt:        &firstPaidAt,
			Gateway: entities.PaymentGateway{
				Status:   entities.PaymentStatusCompleted,
				Metadata: entities.GatewayMetadata{TxidIn: "0xold"},
			},
		},
	}

	repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(settled, nil)
	repo.EXPECT().UpdatePayment(gomock.Any(), "doc-1", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, p entities.Payment) (entities.Order, error) {
			if p.PaidAt == nil || !p.PaidAt.Equal(firstPaidAt) {
				t.Fatalf("PaidAt must never move once set, got %v", p.PaidAt)
			}
			return entities.Order{}, nil
		},
	)

	// Later callback with a new hash still completed; PaidAt stays put.
	_, err := uc.SettleCallback(context.Background(), map[string]any{
		"order_doc_id": "doc-1",
		"txid_in":      "0xnew",
		"status":       "paid",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestPaygateSettlementUseCase_SettleCallback_GatewayIdentity(t *testing.T) {
	t.Run("address in becomes gateway id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaygateSettlementUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Order{ID: "doc-1"}, nil)
		repo.EXPECT().UpdatePayment(gomock.Any(), "doc-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, p entities.Payment) (entities.Order, error) {
				if p.Gateway.ID != "0xaddr" {
					t.Fatalf("expected gateway id from address_in, got %q", p.Gateway.ID)
				}
				if p.Gateway.Provider != "paygate" {
					t.Fatalf("expected provider fallback, got %q", p.Gateway.Provider)
				}
				return entities.Order{}, nil
			},
		)

		_, err := uc.SettleCallback(context.Background(), map[string]any{
			"order_doc_id": "doc-1",
			"address_in":   "0xaddr",
			"status":       "processing",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("bare order with no identity gets fallback", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaygateSettlementUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Order{ID: "doc-1"}, nil)
		repo.EXPECT().UpdatePayment(gomock.Any(), "doc-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, p entities.Payment) (entities.Order, error) {
				if p.Gateway.ID != "paygate" {
					t.Fatalf("expected fallback gateway id, got %q", p.Gateway.ID)
				}
				return entities.Order{}, nil
			},
		)

		_, err := uc.SettleCallback(context.Background(), map[string]any{
			"order_doc_id": "doc-1",
			"status":       "failed",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("ipn token becomes session and polling id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewPaygateSettlementUseCase(repo)

		repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Order{ID: "doc-1"}, nil)
		repo.EXPECT().UpdatePayment(gomock.Any(), "doc-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, p entities.Payment) (entities.Order, error) {
				if p.Gateway.SessionID != "ipn-1" || p.GatewayID != "ipn-1" {
					t.Fatalf("expected ipn token as session, got session=%q gateway_id=%q", p.Gateway.SessionID, p.GatewayID)
				}
				return entities.Order{}, nil
			},
		)

		_, err := uc.SettleCallback(context.Background(), map[string]any{
			"order_doc_id": "doc-1",
			"ipn_token":    "ipn-1",
			"status":       "processing",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaygateSettlementUseCase_SettleCallback_UpdateError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewPaygateSettlementUseCase(repo)

	repo.EXPECT().GetByID(gomock.Any(), "doc-1").Return(entities.Order{ID: "doc-1"}, nil)
	repo.EXPECT().UpdatePayment(gomock.Any(), "doc-1", gomock.Any()).Return(entities.Order{}, errors.New("throttled"))

	_, err := uc.SettleCallback(context.Background(), map[string]any{
		"order_doc_id": "doc-1",
		"status":       "paid",
	})
	if err == nil || err.Error() != "throttled" {
		t.Fatalf("expected throttled, got %v", err)
	}
}
