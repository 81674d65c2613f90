package interfaces

import (
	"context"
	"errors"
	"time"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
)

// ErrConditionFailed is returned by repositories when a guarded write loses
// its condition (compare-and-set on status or ownership). Use cases translate
// it into the state-conflict error of the operation at hand.
var ErrConditionFailed = errors.New("conditional write failed")

// IProposalRepository abstracts DynamoDB persistence for offers and bids.
// The proposal kind selects the backing table; the operations are identical.
//
// UpdateStatus is a compare-and-set: the write only lands if the stored
// status still equals `from`, so two racing terminal transitions cannot both
// succeed. Signature may be empty for transitions that carry none.

type IProposalRepository interface {
	Create(ctx context.Context, p entities.Proposal) (entities.Proposal, error)
	GetByID(ctx context.Context, kind entities.ProposalKind, id string) (entities.Proposal, error)
	ListByNFTID(ctx context.Context, kind entities.ProposalKind, nftID string, status entities.ProposalStatus) ([]entities.Proposal, error)
	UpdateStatus(ctx context.Context, kind entities.ProposalKind, id string, from, to entities.ProposalStatus, signature string, updatedAt time.Time) (entities.Proposal, error)
}
