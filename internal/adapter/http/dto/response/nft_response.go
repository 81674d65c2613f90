package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
)

type NFTResponse struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Description       string           `json:"description,omitempty"`
	Image             string           `json:"image"`
	CollectionID      string           `json:"collection_id,omitempty"`
	CreatorID         string           `json:"creator_id"`
	OwnerID           string           `json:"owner_id"`
	Creator           *UserResponse    `json:"creator,omitempty"`
	Owner             *UserResponse    `json:"owner,omitempty"`
	MintAddress       string           `json:"mint_address"`
	RoyaltyPercentage float64          `json:"royalty_percentage,omitempty"`
	Listed            bool             `json:"listed"`
	Price             *decimal.Decimal `json:"price,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

func FromNFT(n entities.NFT) NFTResponse {
	return NFTResponse{
		ID:                n.ID,
		Name:              n.Name,
		Description:       n.Description,
		Image:             n.Image,
		CollectionID:      n.CollectionID,
		CreatorID:         n.CreatorID,
		OwnerID:           n.OwnerID,
		Creator:           fromUserPtr(n.Creator),
		Owner:             fromUserPtr(n.Owner),
		MintAddress:       n.MintAddress,
		RoyaltyPercentage: n.RoyaltyPercentage,
		Listed:            n.Listed,
		Price:             n.Price,
		CreatedAt:         n.CreatedAt,
		UpdatedAt:         n.UpdatedAt,
	}
}

func FromNFTs(list []entities.NFT) []NFTResponse {
	out := make([]NFTResponse, 0, len(list))
	for _, n := range list {
		out = append(out, FromNFT(n))
	}
	return out
}
