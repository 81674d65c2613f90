package request

import "github.com/shopspring/decimal"

// CreateProposalRequest is the payload for making an offer or placing a bid.
// Expiration is given in calendar days from now.

type CreateProposalRequest struct {
	Price          decimal.Decimal `json:"price" binding:"required"`
	ExpirationDays int             `json:"expiration_days" binding:"required"`
}
