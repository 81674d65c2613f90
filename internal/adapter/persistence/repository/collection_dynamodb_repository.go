package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
	"github.com/umeshgehlot/SolanaMarket/internal/usecase/interfaces"
)

const defaultCollectionsTableName = "collections"

type collectionItem struct {
	ID          string `dynamodbav:"id"`
	Name        string `dynamodbav:"name"`
	Description string `dynamodbav:"description,omitempty"`
	Image       string `dynamodbav:"image,omitempty"`
	CreatorID   string `dynamodbav:"creator_id"`
	CreatedAt   string `dynamodbav:"created_at"`
	UpdatedAt   string `dynamodbav:"updated_at"`
}

// CollectionDynamoRepository persists collections in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type CollectionDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ICollectionRepository = (*CollectionDynamoRepository)(nil)

func NewCollectionDynamoRepository(ddb *dynamodb.Client) *CollectionDynamoRepository {
	return &CollectionDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("COLLECTIONS_TABLE", defaultCollectionsTableName),
	}
}

func (r *CollectionDynamoRepository) Create(ctx context.Context, c entities.Collection) (entities.Collection, error) {
	av, err := attributevalue.MarshalMap(toCollectionItem(c))
	if err != nil {
		return entities.Collection{}, err
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
		return entities.Collection{}, err
	}
	return c, nil
}

func (r *CollectionDynamoRepository) GetByID(ctx context.Context, id string) (entities.Collection, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Collection{}, err
	}
	if len(out.Item) == 0 {
		return entities.Collection{}, nil
	}

	var it collectionItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Collection{}, err
	}
	return fromCollectionItem(it), nil
}

func (r *CollectionDynamoRepository) List(ctx context.Context) ([]entities.Collection, error) {
	out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}

	items := make([]entities.Collection, 0, len(out.Items))
	for _, raw := range out.Items {
		var it collectionItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromCollectionItem(it))
	}
	return items, nil
}

func toCollectionItem(c entities.Collection) collectionItem {
	return collectionItem{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
		CreatorID:   c.CreatorID,
		CreatedAt:   formatTime(c.CreatedAt),
		UpdatedAt:   formatTime(c.UpdatedAt),
	}
}

func fromCollectionItem(it collectionItem) entities.Collection {
	return entities.Collection{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		Image:       it.Image,
		CreatorID:   it.CreatorID,
		CreatedAt:   parseTime(it.CreatedAt),
		UpdatedAt:   parseTime(it.UpdatedAt),
	}
}
