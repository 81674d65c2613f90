package repository

import (
	"context"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/shopspring/decimal"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
	"github.com/umeshgehlot/SolanaMarket/internal/usecase/interfaces"
)

const (
	defaultNFTsTableName = "nfts"
	nftOwnerIDIndex      = "owner_id-index"
	nftMintAddressIndex  = "mint_address-index"
)

type nftItem struct {
	ID                string  `dynamodbav:"id"`
	Name              string  `dynamodbav:"name"`
	Description       string  `dynamodbav:"description,omitempty"`
	Image             string  `dynamodbav:"image"`
	CollectionID      string  `dynamodbav:"collection_id,omitempty"`
	CreatorID         string  `dynamodbav:"creator_id"`
	OwnerID           string  `dynamodbav:"owner_id"`
	MintAddress       string  `dynamodbav:"mint_address"`
	RoyaltyPercentage float64 `dynamodbav:"royalty_percentage,omitempty"`
	Listed            bool    `dynamodbav:"listed"`
	Price             string  `dynamodbav:"price,omitempty"`
	CreatedAt         string  `dynamodbav:"created_at"`
	UpdatedAt         string  `dynamodbav:"updated_at"`
}

// NFTDynamoRepository persists NFTs in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: owner_id-index (PK: owner_id)
//   - GSI: mint_address-index (PK: mint_address)

type NFTDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.INFTRepository = (*NFTDynamoRepository)(nil)

func NewNFTDynamoRepository(ddb *dynamodb.Client) *NFTDynamoRepository {
	return &NFTDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("NFTS_TABLE", defaultNFTsTableName),
	}
}

func (r *NFTDynamoRepository) Create(ctx context.Context, n entities.NFT) (entities.NFT, error) {
	av, err := attributevalue.MarshalMap(toNFTItem(n))
	if err != nil {
		return entities.NFT{}, err
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
		return entities.NFT{}, err
	}
	return n, nil
}

func (r *NFTDynamoRepository) GetByID(ctx context.Context, id string) (entities.NFT, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.NFT{}, err
	}
	if len(out.Item) == 0 {
		return entities.NFT{}, nil
	}

	var it nftItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.NFT{}, err
	}
	return fromNFTItem(it), nil
}

func (r *NFTDynamoRepository) GetByMintAddress(ctx context.Context, mintAddress string) (entities.NFT, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(nftMintAddressIndex),
		KeyConditionExpression: aws.String("mint_address = :ma"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ma": &types.AttributeValueMemberS{Value: mintAddress},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.NFT{}, err
	}
	if len(out.Items) == 0 {
		return entities.NFT{}, nil
	}

	var it nftItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.NFT{}, err
	}
	return fromNFTItem(it), nil
}

// List browses NFTs. An owner constraint uses the owner GSI; anything else
// falls back to a filtered scan, which is fine at marketplace-catalog scale.
func (r *NFTDynamoRepository) List(ctx context.Context, f interfaces.NFTFilter) ([]entities.NFT, error) {
	if f.OwnerID != "" {
		return r.listByOwner(ctx, f)
	}

	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	expr, names, values := buildNFTFilter(f)
	if expr != "" {
		in.FilterExpression = aws.String(expr)
		if len(names) > 0 {
			in.ExpressionAttributeNames = names
		}
		in.ExpressionAttributeValues = values
	}

	out, err := r.ddb.Scan(ctx, in)
	if err != nil {
		return nil, err
	}
	return unmarshalNFTs(out.Items)
}

func (r *NFTDynamoRepository) listByOwner(ctx context.Context, f interfaces.NFTFilter) ([]entities.NFT, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(nftOwnerIDIndex),
		KeyConditionExpression: aws.String("owner_id = :oid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":oid": &types.AttributeValueMemberS{Value: f.OwnerID},
		},
	}

	f.OwnerID = ""
	expr, names, values := buildNFTFilter(f)
	if expr != "" {
		in.FilterExpression = aws.String(expr)
		if len(names) > 0 {
			in.ExpressionAttributeNames = names
		}
		for k, v := range values {
			in.ExpressionAttributeValues[k] = v
		}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}
	return unmarshalNFTs(out.Items)
}

// UpdateListing sets or clears the sale state, conditioned on the current
// owner so a stale owner cannot flip a token they no longer hold.
func (r *NFTDynamoRepository) UpdateListing(ctx context.Context, id, ownerID string, listed bool, price *decimal.Decimal, updatedAt time.Time) (entities.NFT, error) {
	update := "SET listed = :listed, updated_at = :ua"
	values := map[string]types.AttributeValue{
		":listed": &types.AttributeValueMemberBOOL{Value: listed},
		":ua":     &types.AttributeValueMemberS{Value: formatTime(updatedAt)},
		":owner":  &types.AttributeValueMemberS{Value: ownerID},
	}
	if price != nil {
		update += ", price = :price"
		values[":price"] = &types.AttributeValueMemberS{Value: price.String()}
	} else {
		update += " REMOVE price"
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(update),
		ConditionExpression:       aws.String("attribute_exists(id) AND owner_id = :owner"),
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.NFT{}, interfaces.ErrConditionFailed
		}
		return entities.NFT{}, err
	}

	var it nftItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.NFT{}, err
	}
	return fromNFTItem(it), nil
}

func buildNFTFilter(f interfaces.NFTFilter) (string, map[string]string, map[string]types.AttributeValue) {
	var parts []string
	names := map[string]string{}
	values := map[string]types.AttributeValue{}

	if f.CollectionID != "" {
		parts = append(parts, "collection_id = :cid")
		values[":cid"] = &types.AttributeValueMemberS{Value: f.CollectionID}
	}
	if f.Listed != nil {
		parts = append(parts, "listed = :listed")
		values[":listed"] = &types.AttributeValueMemberBOOL{Value: *f.Listed}
	}
	if len(parts) == 0 {
		return "", nil, nil
	}
	return strings.Join(parts, " AND "), names, values
}

func unmarshalNFTs(raws []map[string]types.AttributeValue) ([]entities.NFT, error) {
	items := make([]entities.NFT, 0, len(raws))
	for _, raw := range raws {
		var it nftItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromNFTItem(it))
	}
	return items, nil
}

func toNFTItem(n entities.NFT) nftItem {
	it := nftItem{
		ID:                n.ID,
		Name:              n.Name,
		Description:       n.Description,
		Image:             n.Image,
		CollectionID:      n.CollectionID,
		CreatorID:         n.CreatorID,
		OwnerID:           n.OwnerID,
		MintAddress:       n.MintAddress,
		RoyaltyPercentage: n.RoyaltyPercentage,
		Listed:            n.Listed,
		CreatedAt:         formatTime(n.CreatedAt),
		UpdatedAt:         formatTime(n.UpdatedAt),
	}
	if n.Price != nil {
		it.Price = n.Price.String()
	}
	return it
}

func fromNFTItem(it nftItem) entities.NFT {
	return entities.NFT{
		ID:                it.ID,
		Name:              it.Name,
		Description:       it.Description,
		Image:             it.Image,
		CollectionID:      it.CollectionID,
		CreatorID:         it.CreatorID,
		OwnerID:           it.OwnerID,
		MintAddress:       it.MintAddress,
		RoyaltyPercentage: it.RoyaltyPercentage,
		Listed:            it.Listed,
		Price:             parseDecimalPtr(it.Price),
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
