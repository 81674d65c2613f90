package repository

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
	"github.com/umeshgehlot/SolanaMarket/internal/usecase/interfaces"
)

const (
	defaultOffersTableName = "offers"
	defaultBidsTableName   = "bids"
	proposalNFTIDIndex     = "nft_id-index"
)

type proposalItem struct {
	ID                  string `dynamodbav:"id"`
	Kind                string `dynamodbav:"kind"`
	NFTID               string `dynamodbav:"nft_id"`
	ProposerID          string `dynamodbav:"proposer_id"`
	Price               string `dynamodbav:"price"`
	Status              string `dynamodbav:"status"`
	ExpiresAt           string `dynamodbav:"expires_at"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
	EscrowAccount       string `dynamodbav:"escrow_account,omitempty"`
	SettlementSignature string `dynamodbav:"settlement_signature,omitempty"`
}

// ProposalDynamoRepository persists offers and bids in DynamoDB, one table
// per kind.
//
// Table requirements (both tables):
//   - PK: id (string)
//   - GSI: nft_id-index (PK: nft_id)

type ProposalDynamoRepository struct {
	ddb        *dynamodb.Client
	offersName string
	bidsName   string
}

var _ interfaces.IProposalRepository = (*ProposalDynamoRepository)(nil)

func NewProposalDynamoRepository(ddb *dynamodb.Client) *ProposalDynamoRepository {
	return &ProposalDynamoRepository{
		ddb:        ddb,
		offersName: getenvDefault("OFFERS_TABLE", defaultOffersTableName),
		bidsName:   getenvDefault("BIDS_TABLE", defaultBidsTableName),
	}
}

func (r *ProposalDynamoRepository) tableFor(kind entities.ProposalKind) string {
	if kind == entities.ProposalKindBid {
		return r.bidsName
	}
	return r.offersName
}

func (r *ProposalDynamoRepository) Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error) {
	av, err := attributevalue.MarshalMap(toProposalItem(p))
	if err != nil {
		return entities.Proposal{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableFor(p.Kind)),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	return p, nil
}

func (r *ProposalDynamoRepository) GetByID(ctx context.Context, kind entities.ProposalKind, id string) (entities.Proposal, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableFor(kind)),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Proposal{}, err
	}
	if len(out.Item) == 0 {
		return entities.Proposal{}, nil
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func (r *ProposalDynamoRepository) ListByNFTID(ctx context.Context, kind entities.ProposalKind, nftID string, status entities.ProposalStatus) ([]entities.Proposal, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableFor(kind)),
		IndexName:              aws.String(proposalNFTIDIndex),
		KeyConditionExpression: aws.String("nft_id = :nid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":nid": &types.AttributeValueMemberS{Value: nftID},
		},
	}
	if status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues[":status"] = &types.AttributeValueMemberS{Value: string(status)}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, err
	}

	items := make([]entities.Proposal, 0, len(out.Items))
	for _, raw := range out.Items {
		var it proposalItem
		if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
			return nil, err
		}
		items = append(items, fromProposalItem(it))
	}
	return items, nil
}

// UpdateStatus is the compare-and-set terminal transition: the write lands
// only when the stored status still equals `from`.
func (r *ProposalDynamoRepository) UpdateStatus(ctx context.Context, kind entities.ProposalKind, id string, from, to entities.ProposalStatus, signature string, updatedAt time.Time) (entities.Proposal, error) {
	update := "SET #status = :to, updated_at = :ua"
	values := map[string]types.AttributeValue{
		":from": &types.AttributeValueMemberS{Value: string(from)},
		":to":   &types.AttributeValueMemberS{Value: string(to)},
		":ua":   &types.AttributeValueMemberS{Value: formatTime(updatedAt)},
	}
	if signature != "" {
		update += ", settlement_signature = :sig"
		values[":sig"] = &types.AttributeValueMemberS{Value: signature}
	}

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableFor(kind)),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		UpdateExpression:          aws.String(update),
		ConditionExpression:       aws.String("attribute_exists(id) AND #status = :from"),
		ExpressionAttributeNames:  map[string]string{"#status": "status"},
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return entities.Proposal{}, interfaces.ErrConditionFailed
		}
		return entities.Proposal{}, err
	}

	var it proposalItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Proposal{}, err
	}
	return fromProposalItem(it), nil
}

func toProposalItem(p entities.Proposal) proposalItem {
	return proposalItem{
		ID:                  p.ID,
		Kind:                string(p.Kind),
		NFTID:               p.NFTID,
		ProposerID:          p.ProposerID,
		Price:               p.Price.String(),
		Status:              string(p.Status),
		ExpiresAt:           formatTime(p.ExpiresAt),
		CreatedAt:           formatTime(p.CreatedAt),
		UpdatedAt:           formatTime(p.UpdatedAt),
		EscrowAccount:       p.EscrowAccount,
		SettlementSignature: p.SettlementSignature,
	}
}

func fromProposalItem(it proposalItem) entities.Proposal {
	return entities.Proposal{
		ID:                  it.ID,
		Kind:                entities.ProposalKind(it.Kind),
		NFTID:               it.NFTID,
		ProposerID:          it.ProposerID,
		Price:               parseDecimal(it.Price),
		Status:              entities.ProposalStatus(it.Status),
		ExpiresAt:           parseTime(it.ExpiresAt),
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
		EscrowAccount:       it.EscrowAccount,
		SettlementSignature: it.SettlementSignature,
	}
}
