package repository

import (
	"context"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
	"github.com/umeshgehlot/SolanaMarket/internal/usecase/interfaces"
)

const (
	defaultTransactionsTableName = "transactions"
	transactionNFTIDIndex        = "nft_id-index"
	transactionFromIDIndex       = "from_id-index"
	transactionToIDIndex         = "to_id-index"
)

type transactionItem struct {
	ID        string `dynamodbav:"id"`
	Type      string `dynamodbav:"type"`
	NFTID     string `dynamodbav:"nft_id"`
	FromID    string `dynamodbav:"from_id,omitempty"`
	ToID      string `dynamodbav:"to_id,omitempty"`
	Price     string `dynamodbav:"price,omitempty"`
	Signature string `dynamodbav:"signature"`
	Timestamp string `dynamodbav:"timestamp"`
}

// TransactionDynamoRepository is the append-only audit log in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: nft_id-index (PK: nft_id)
//   - GSI: from_id-index (PK: from_id)
//   - GSI: to_id-index (PK: to_id)

type TransactionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ITransactionRepository = (*TransactionDynamoRepository)(nil)

func NewTransactionDynamoRepository(ddb *dynamodb.Client) *TransactionDynamoRepository {
	return &TransactionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *TransactionDynamoRepository) Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error) {
	av, err := attributevalue.MarshalMap(toTransactionItem(t))
	if err != nil {
		return entities.Transaction{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Transaction{}, err
	}
	return t, nil
}

func (r *TransactionDynamoRepository) ListByNFTID(ctx context.Context, nftID string) ([]entities.Transaction, error) {
	return r.queryIndex(ctx, transactionNFTIDIndex, "nft_id", nftID)
}

// ListByUserID returns transactions where the user is either side. Two index
// queries merged and deduplicated; self-transfers would otherwise show twice.
func (r *TransactionDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Transaction, error) {
	from, err := r.queryIndex(ctx, transactionFromIDIndex, "from_id", userID)
	if err != nil {
		return nil, err
	}
	to, err := r.queryIndex(ctx, transactionToIDIndex, "to_id", userID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(from))
	merged := make([]entities.Transaction, 0, len(from)+len(to))
	for _, t := range append(from, to...) {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		merged = append(merged, t)
	}
	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Timestamp.After(merged[j].Timestamp)
	})
	return merged, nil
}

func (r *TransactionDynamoRepository) queryIndex(ctx context.Context, index, key, value string) ([]entities.Transaction, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(index),
		KeyConditionExpression: aws.String(key + " = :v"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":v": &types.AttributeValueMemberS{Value: value},
		},
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Transaction, 0, len(out.Items))
	for _, raw := range out.Items {
		var it transactionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromTransactionItem(it))
	}
	return items, nil
}

func toTransactionItem(t entities.Transaction) transactionItem {
	it := transactionItem{
		ID:        t.ID,
		Type:      string(t.Type),
		NFTID:     t.NFTID,
		FromID:    t.FromID,
		ToID:      t.ToID,
		Signature: t.Signature,
		Timestamp: formatTime(t.Timestamp),
	}
	if t.Price != nil {
		it.Price = t.Price.String()
	}
	return it
}

func fromTransactionItem(it transactionItem) entities.Transaction {
	return entities.Transaction{
		ID:        it.ID,
		Type:      entities.TransactionType(it.Type),
		NFTID:     it.NFTID,
		FromID:    it.FromID,
		ToID:      it.ToID,
		Price:     parseDecimalPtr(it.Price),
		Signature: it.Signature,
		Timestamp: parseTime(it.Timestamp),
	}
}
