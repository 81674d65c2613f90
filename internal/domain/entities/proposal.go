package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ProposalKind discriminates the two proposal flavors the marketplace
// supports. Offers and bids share one state machine; bids additionally
// carry an escrow account reference.

type ProposalKind string

const (
	ProposalKindOffer ProposalKind = "OFFER"
	ProposalKindBid   ProposalKind = "BID"
)

// ProposalStatus represents the proposal lifecycle.
//
// Transitions are one-directional: ACTIVE is the only non-terminal state,
// and a proposal leaves it exactly once (accept, cancel, or expiry).

type ProposalStatus string

const (
	ProposalStatusActive    ProposalStatus = "ACTIVE"
	ProposalStatusAccepted  ProposalStatus = "ACCEPTED"
	ProposalStatusCancelled ProposalStatus = "CANCELLED"
	ProposalStatusExpired   ProposalStatus = "EXPIRED"
)

// Terminal reports whether no further transition is permitted out of s.
func (s ProposalStatus) Terminal() bool {
	switch s {
	case ProposalStatusAccepted, ProposalStatusCancelled, ProposalStatusExpired:
		return true
	}
	return false
}

// Proposal is a priced, expiring buy proposal on an NFT (an offer or a bid).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (nft_id-index): nft_id
//
// Every field except Status, SettlementSignature and UpdatedAt is immutable
// after creation. A proposal whose ExpiresAt has passed is treated as EXPIRED
// for all decisions even before the stored status catches up; the stored row
// is updated opportunistically on read and at the top of accept.

type Proposal struct {
	ID         string          `json:"id"`
	Kind       ProposalKind    `json:"kind"`
	NFTID      string          `json:"nft_id"`
	ProposerID string          `json:"proposer_id"`
	Price      decimal.Decimal `json:"price"`
	Status     ProposalStatus  `json:"status"`
	ExpiresAt  time.Time       `json:"expires_at"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	// EscrowAccount is set for bids only: the chain account holding the
	// bidder's funds until the bid resolves.
	EscrowAccount string `json:"escrow_account,omitempty"`

	// SettlementSignature is populated when the proposal is accepted.
	SettlementSignature string `json:"settlement_signature,omitempty"`

	// Proposer is the populated user record; filled on read paths that
	// return proposals to clients, never persisted with the proposal.
	Proposer *User `json:"proposer,omitempty"`
}

// ExpiredAt reports whether the proposal is logically expired at now,
// regardless of the stored status.
func (p Proposal) ExpiredAt(now time.Time) bool {
	return p.ExpiresAt.Before(now)
}
