package response

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
)

type ProposalResponse struct {
	ID                  string          `json:"id"`
	Kind                string          `json:"kind"`
	NFTID               string          `json:"nft_id"`
	ProposerID          string          `json:"proposer_id"`
	Proposer            *UserResponse   `json:"proposer,omitempty"`
	Price               decimal.Decimal `json:"price"`
	Status              string          `json:"status"`
	ExpiresAt           time.Time       `json:"expires_at"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`
	EscrowAccount       string          `json:"escrow_account,omitempty"`
	SettlementSignature string          `json:"settlement_signature,omitempty"`
}

func FromProposal(p entities.Proposal) ProposalResponse {
	return ProposalResponse{
		ID:                  p.ID,
		Kind:                string(p.Kind),
		NFTID:               p.NFTID,
		ProposerID:          p.ProposerID,
		Proposer:            fromUserPtr(p.Proposer),
		Price:               p.Price,
		Status:              string(p.Status),
		ExpiresAt:           p.ExpiresAt,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
		EscrowAccount:       p.EscrowAccount,
		SettlementSignature: p.SettlementSignature,
	}
}

func FromProposals(list []entities.Proposal) []ProposalResponse {
	out := make([]ProposalResponse, 0, len(list))
	for _, p := range list {
		out = append(out, FromProposal(p))
	}
	return out
}
