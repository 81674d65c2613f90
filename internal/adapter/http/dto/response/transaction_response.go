package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
)

type TransactionResponse struct {
	ID        string           `json:"id"`
	Type      string           `json:"type"`
	NFTID     string           `json:"nft_id"`
	FromID    string           `json:"from_id,omitempty"`
	ToID      string           `json:"to_id,omitempty"`
	NFT       *NFTResponse     `json:"nft,omitempty"`
	From      *UserResponse    `json:"from,omitempty"`
	To        *UserResponse    `json:"to,omitempty"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Signature string           `json:"signature"`
	Timestamp time.Time        `json:"timestamp"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	r := TransactionResponse{
		ID:        t.ID,
		Type:      string(t.Type),
		NFTID:     t.NFTID,
		FromID:    t.FromID,
		ToID:      t.ToID,
		From:      fromUserPtr(t.From),
		To:        fromUserPtr(t.To),
		Price:     t.Price,
		Signature: t.Signature,
		Timestamp: t.Timestamp,
	}
	if t.NFT != nil {
		n := FromNFT(*t.NFT)
		r.NFT = &n
	}
	return r
}

func FromTransactions(list []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, FromTransaction(t))
	}
	return out
}
