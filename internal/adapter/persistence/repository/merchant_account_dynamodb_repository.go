package repository

import (
	"context"
	"time"

	"loja_xpto/internal/domain/entities"
	"loja_xpto/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultMerchantAccountsTableName = "merchant_accounts"
	defaultMerchantAccountID         = "default"
)

type merchantAccountItem struct {
	ID              string   `dynamodbav:"id"`
	WalletAddress   string   `dynamodbav:"wallet_address"`
	Chain           string   `dynamodbav:"chain,omitempty"`
	DefaultProvider string   `dynamodbav:"default_provider,omitempty"`
	Providers       []string `dynamodbav:"providers,omitempty"`
	CreatedAt       string   `dynamodbav:"created_at"`
	UpdatedAt       string   `dynamodbav:"updated_at"`
}

// MerchantAccountDynamoRepository reads the merchant payout configuration.
//
// Table requirements:
//   - PK: id (string)
//
// The account row used at checkout is selected by MERCHANT_ACCOUNT_ID
// (default: "default"); staff edit it through the admin console.

type MerchantAccountDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
	accountID string
}

var _ interfaces.IMerchantAccountRepository = (*MerchantAccountDynamoRepository)(nil)

func NewMerchantAccountDynamoRepository(ddb *dynamodb.Client) *MerchantAccountDynamoRepository {
	return &MerchantAccountDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("MERCHANT_ACCOUNTS_TABLE", defaultMerchantAccountsTableName),
		accountID: getenvDefault("MERCHANT_ACCOUNT_ID", defaultMerchantAccountID),
	}
}

func (r *MerchantAccountDynamoRepository) GetDefault(ctx context.Context) (entities.MerchantAccount, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: r.accountID},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.MerchantAccount{}, err
	}
	if len(out.Item) == 0 {
		return entities.MerchantAccount{}, nil
	}

	var it merchantAccountItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.MerchantAccount{}, err
	}
	return fromMerchantAccountItem(it), nil
}

func fromMerchantAccountItem(it merchantAccountItem) entities.MerchantAccount {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.MerchantAccount{
		ID:              it.ID,
		WalletAddress:   it.WalletAddress,
		Chain:           it.Chain,
		DefaultProvider: it.DefaultProvider,
		Providers:       it.Providers,
		CreatedAt:       createdAt,
		UpdatedAt:       updatedAt,
	}
}
