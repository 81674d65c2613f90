package interfaces

import (
	"context"
	"time"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
)

// AcceptSettlement is the atomic commit of a proposal acceptance: the
// proposal flips ACTIVE -> ACCEPTED, the NFT changes owner and is delisted,
// and the transaction record is appended. All three land together or not at
// all (DynamoDB TransactWriteItems); both mutations are conditioned on the
// state the use case read, so a racing accept or cancel loses with
// ErrConditionFailed.

type AcceptSettlement struct {
	Kind                entities.ProposalKind
	ProposalID          string
	SettlementSignature string
	NFTID               string
	FromOwnerID         string
	ToOwnerID           string
	Transaction         entities.Transaction
	UpdatedAt           time.Time
}

// TransferSettlement is the atomic commit of a direct sale or transfer:
// NFT ownership moves (conditioned on the current owner), the token is
// delisted, and the transaction record is appended.

type TransferSettlement struct {
	NFTID       string
	FromOwnerID string
	ToOwnerID   string
	Transaction entities.Transaction
	UpdatedAt   time.Time
}

// ISettlementRepository performs the cross-entity transactional writes the
// single-table repositories cannot.

type ISettlementRepository interface {
	AcceptProposal(ctx context.Context, s AcceptSettlement) error
	TransferNFT(ctx context.Context, s TransferSettlement) error
}
