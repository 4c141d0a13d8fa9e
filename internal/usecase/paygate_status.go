package usecase

import (
	"strings"

	"loja_xpto/internal/domain/entities"
)

// classifyCallbackStatus maps one callback to exactly one PaymentStatus.
//
// An explicit status string always wins. When the vendor sends none (the raw
// address-forwarding flow often doesn't), the status is inferred from
// transaction evidence: a pending flag means the funds are still moving, any
// transaction hash or positive received amount means the payment landed.
func classifyCallbackStatus(f callbackFields) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(f.Status)) {
	case "paid", "completed", "success":
		return entities.PaymentStatusCompleted
	case "failed", "error", "canceled", "cancelled":
		return entities.PaymentStatusFailed
	case "refunded":
		return entities.PaymentStatusRefunded
	case "processing":
		return entities.PaymentStatusProcessing
	case "pending":
		return entities.PaymentStatusPending
	}

	if f.Pending != nil && *f.Pending {
		return entities.PaymentStatusProcessing
	}
	if f.TxIn != "" || f.TxOut != "" || (f.ValueCoin != nil && *f.ValueCoin > 0) {
		return entities.PaymentStatusCompleted
	}
	return entities.PaymentStatusPending
}
