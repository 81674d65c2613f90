package interfaces

import (
	"context"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
)

// ITransactionRepository abstracts the append-only transaction log.
// Records are created once and never mutated; Create enforces signature
// uniqueness.

type ITransactionRepository interface {
	Create(ctx context.Context, t entities.Transaction) (entities.Transaction, error)
	ListByNFTID(ctx context.Context, nftID string) ([]entities.Transaction, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Transaction, error)
}
