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

// SettlementDynamoRepository commits the cross-entity writes via DynamoDB
// TransactWriteItems: either every item in the settlement lands or none
// does. Both mutations condition on the state the use case observed, so a
// concurrent accept, cancel or sale makes the whole transaction fail with
// ErrConditionFailed instead of half-applying.

type SettlementDynamoRepository struct {
	ddb        *dynamodb.Client
	offersName string
	bidsName   string
	nftsName   string
	txsName    string
}

var _ interfaces.ISettlementRepository = (*SettlementDynamoRepository)(nil)

func NewSettlementDynamoRepository(ddb *dynamodb.Client) *SettlementDynamoRepository {
	return &SettlementDynamoRepository{
		ddb:        ddb,
		offersName: getenvDefault("OFFERS_TABLE", defaultOffersTableName),
		bidsName:   getenvDefault("BIDS_TABLE", defaultBidsTableName),
		nftsName:   getenvDefault("NFTS_TABLE", defaultNFTsTableName),
		txsName:    getenvDefault("TRANSACTIONS_TABLE", defaultTransactionsTableName),
	}
}

func (r *SettlementDynamoRepository) AcceptProposal(ctx context.Context, s interfaces.AcceptSettlement) error {
	proposalTable := r.offersName
	if s.Kind == entities.ProposalKindBid {
		proposalTable = r.bidsName
	}

	txItem, err := attributevalue.MarshalMap(toTransactionItem(s.Transaction))
	if err != nil {
		return err
	}

	updatedAt := &types.AttributeValueMemberS{Value: formatTime(s.UpdatedAt)}
	items := []types.TransactWriteItem{
		{
			Update: &types.Update{
				TableName: aws.String(proposalTable),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: s.ProposalID},
				},
				UpdateExpression:    aws.String("SET #status = :accepted, settlement_signature = :sig, updated_at = :ua"),
				ConditionExpression: aws.String("attribute_exists(id) AND #status = :active"),
				ExpressionAttributeNames: map[string]string{
					"#status": "status",
				},
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":active":   &types.AttributeValueMemberS{Value: string(entities.ProposalStatusActive)},
					":accepted": &types.AttributeValueMemberS{Value: string(entities.ProposalStatusAccepted)},
					":sig":      &types.AttributeValueMemberS{Value: s.SettlementSignature},
					":ua":       updatedAt,
				},
			},
		},
		ownershipTransferItem(r.nftsName, s.NFTID, s.FromOwnerID, s.ToOwnerID, updatedAt),
		transactionPutItem(r.txsName, txItem),
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return interfaces.ErrConditionFailed
		}
		return err
	}
	return nil
}

func (r *SettlementDynamoRepository) TransferNFT(ctx context.Context, s interfaces.TransferSettlement) error {
	txItem, err := attributevalue.MarshalMap(toTransactionItem(s.Transaction))
	if err != nil {
		return err
	}

	updatedAt := &types.AttributeValueMemberS{Value: formatTime(s.UpdatedAt)}
	items := []types.TransactWriteItem{
		ownershipTransferItem(r.nftsName, s.NFTID, s.FromOwnerID, s.ToOwnerID, updatedAt),
		transactionPutItem(r.txsName, txItem),
	}

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		if isConditionalCheckFailed(err) {
			return interfaces.ErrConditionFailed
		}
		return err
	}
	return nil
}

// ownershipTransferItem moves an NFT to its new owner and delists it,
// conditioned on the seller still holding it.
func ownershipTransferItem(table, nftID, fromOwnerID, toOwnerID string, updatedAt types.AttributeValue) types.TransactWriteItem {
	return types.TransactWriteItem{
		Update: &types.Update{
			TableName: aws.String(table),
			Key: map[string]types.AttributeValue{
				"id": &types.AttributeValueMemberS{Value: nftID},
			},
			UpdateExpression:    aws.String("SET owner_id = :to, listed = :unlisted, updated_at = :ua REMOVE price"),
			ConditionExpression: aws.String("attribute_exists(id) AND owner_id = :from"),
			ExpressionAttributeValues: map[string]types.AttributeValue{
				":from":     &types.AttributeValueMemberS{Value: fromOwnerID},
				":to":       &types.AttributeValueMemberS{Value: toOwnerID},
				":unlisted": &types.AttributeValueMemberBOOL{Value: false},
				":ua":       updatedAt,
			},
		},
	}
}

func transactionPutItem(table string, item map[string]types.AttributeValue) types.TransactWriteItem {
	return types.TransactWriteItem{
		Put: &types.Put{
			TableName:           aws.String(table),
			Item:                item,
			ConditionExpression: aws.String("attribute_not_exists(#id)"),
			ExpressionAttributeNames: map[string]string{
				"#id": "id",
			},
		},
	}
}
