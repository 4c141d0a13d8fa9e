package interfaces

import (
	"context"

	"loja_xpto/internal/domain/entities"
)

// IMerchantAccountRepository abstracts DynamoDB persistence for MerchantAccount.

type IMerchantAccountRepository interface {
	GetDefault(ctx context.Context) (entities.MerchantAccount, error)
}
