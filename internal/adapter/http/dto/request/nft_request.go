package request

import "github.com/shopspring/decimal"

// CreateNFTRequest is the mint payload. MintAddress is optional: when the
// client already minted on-chain it passes the address through, otherwise
// the ledger signature stands in.

type CreateNFTRequest struct {
	Name              string  `json:"name" binding:"required"`
	Description       string  `json:"description"`
	Image             string  `json:"image" binding:"required"`
	MintAddress       string  `json:"mint_address"`
	CollectionID      string  `json:"collection_id"`
	RoyaltyPercentage float64 `json:"royalty_percentage"`
}

// ListNFTRequest puts a token up for sale.

type ListNFTRequest struct {
	Price decimal.Decimal `json:"price" binding:"required"`
}

// TransferNFTRequest moves a token to another wallet.

type TransferNFTRequest struct {
	ToWalletAddress string `json:"to_wallet_address" binding:"required"`
}
