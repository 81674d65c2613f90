package interfaces

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
)

// NFTFilter narrows Browse queries. Zero values mean "no constraint".

type NFTFilter struct {
	OwnerID      string
	CollectionID string
	Listed       *bool
}

// INFTRepository abstracts DynamoDB persistence for NFTs.
//
// UpdateListing conditions the write on the current owner so only the owner's
// state at read time can be listed or unlisted; a lost condition surfaces as
// ErrConditionFailed.

type INFTRepository interface {
	Create(ctx context.Context, n entities.NFT) (entities.NFT, error)
	GetByID(ctx context.Context, id string) (entities.NFT, error)
	GetByMintAddress(ctx context.Context, mintAddress string) (entities.NFT, error)
	List(ctx context.Context, f NFTFilter) ([]entities.NFT, error)
	UpdateListing(ctx context.Context, id, ownerID string, listed bool, price *decimal.Decimal, updatedAt time.Time) (entities.NFT, error)
}
