package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// NFT is a minted token tracked by the marketplace.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id
//   - GSI2 (mint_address-index): mint_address
//
// OwnerID is mutable only through accept-offer/accept-bid/buy/transfer, and
// those paths condition the write on the current owner so two concurrent
// sales of the same token cannot both succeed.

type NFT struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	Description       string           `json:"description,omitempty"`
	Image             string           `json:"image"`
	CollectionID      string           `json:"collection_id,omitempty"`
	CreatorID         string           `json:"creator_id"`
	OwnerID           string           `json:"owner_id"`
	MintAddress       string           `json:"mint_address"`
	RoyaltyPercentage float64          `json:"royalty_percentage,omitempty"`
	Listed            bool             `json:"listed"`
	Price             *decimal.Decimal `json:"price,omitempty"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`

	// Populated user records for read paths; never persisted.
	Creator *User `json:"creator,omitempty"`
	Owner   *User `json:"owner,omitempty"`
}
