package interfaces

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
)

// LedgerAction describes the chain-side effect a marketplace operation needs
// settled. Amount is zero for actions that move no funds; OpenEscrow asks the
// ledger to reserve the amount in a new escrow account (bids); EscrowAccount
// names an existing escrow to release or capture.

type LedgerAction struct {
	Type          entities.TransactionType
	NFTID         string
	Wallet        string
	Amount        decimal.Decimal
	OpenEscrow    bool
	EscrowAccount string
}

// LedgerReceipt is what the chain hands back for a settled action.

type LedgerReceipt struct {
	Signature     string
	EscrowAccount string
}

// ILedger abstracts the blockchain. A failed or timed-out Settle means the
// action did not happen: callers must not commit any local state for it.

type ILedger interface {
	Settle(ctx context.Context, action LedgerAction) (LedgerReceipt, error)
}
