package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType enumerates the marketplace events worth recording.

type TransactionType string

const (
	TransactionTypeMint        TransactionType = "MINT"
	TransactionTypeList        TransactionType = "LIST"
	TransactionTypeUnlist      TransactionType = "UNLIST"
	TransactionTypeSale        TransactionType = "SALE"
	TransactionTypeTransfer    TransactionType = "TRANSFER"
	TransactionTypeOffer       TransactionType = "OFFER"
	TransactionTypeAcceptOffer TransactionType = "ACCEPT_OFFER"
	TransactionTypeCancelOffer TransactionType = "CANCEL_OFFER"
	TransactionTypeBid         TransactionType = "BID"
	TransactionTypeAcceptBid   TransactionType = "ACCEPT_BID"
	TransactionTypeCancelBid   TransactionType = "CANCEL_BID"
)

// Transaction is the append-only audit record of a settled marketplace
// action. Created once per state-transition event, never mutated.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (nft_id-index): nft_id
//   - GSI2 (from_id-index): from_id
//   - GSI3 (to_id-index): to_id
//
// Signature is the opaque chain settlement signature and is unique across
// the table.

type Transaction struct {
	ID        string           `json:"id"`
	Type      TransactionType  `json:"type"`
	NFTID     string           `json:"nft_id"`
	FromID    string           `json:"from_id,omitempty"`
	ToID      string           `json:"to_id,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Signature string           `json:"signature"`
	Timestamp time.Time        `json:"timestamp"`

	NFT  *NFT  `json:"nft,omitempty"`
	From *User `json:"from,omitempty"`
	To   *User `json:"to,omitempty"`
}
