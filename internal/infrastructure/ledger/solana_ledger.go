package ledger

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/umeshgehlot/SolanaMarket/internal/usecase/interfaces"
)

var ErrLedgerNotConfigured = errors.New("ledger not configured")

const defaultSettleTimeout = 5 * time.Second

// SolanaLedger is the chain collaborator behind interfaces.ILedger. On-chain
// submission is out of scope for this service: the ledger runs in mock mode
// and hands back opaque settlement signatures (and escrow accounts for fund
// reserving actions) shaped like the real thing. Every call carries a
// deadline; a settle that does not come back in time is a failure, never a
// success.

type SolanaLedger struct {
	endpoint string
	timeout  time.Duration
	mockMode bool
}

var _ interfaces.ILedger = (*SolanaLedger)(nil)

// NewSolanaLedger builds the ledger from the environment:
//   - LEDGER_MOCK: mock mode toggle (default on)
//   - SOLANA_RPC_ENDPOINT: informational, logged for operators
//   - LEDGER_TIMEOUT_MS: per-settle deadline (default 5000)
func NewSolanaLedger() (*SolanaLedger, error) {
	l := &SolanaLedger{
		endpoint: strings.TrimSpace(os.Getenv("SOLANA_RPC_ENDPOINT")),
		timeout:  settleTimeoutFromEnv(),
		mockMode: isLedgerMockEnabled(),
	}
	if !l.mockMode {
		log.Printf("[ledger] mock mode disabled but no chain client is wired endpoint=%s", l.endpoint)
		return nil, ErrLedgerNotConfigured
	}
	log.Printf("[ledger] initialized mock=%v timeout=%s endpoint=%s", l.mockMode, l.timeout, l.endpoint)
	return l, nil
}

func (l *SolanaLedger) Settle(ctx context.Context, action interfaces.LedgerAction) (interfaces.LedgerReceipt, error) {
	if l == nil || !l.mockMode {
		return interfaces.LedgerReceipt{}, ErrLedgerNotConfigured
	}

	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()
	if err := ctx.Err(); err != nil {
		log.Printf("[ledger] settle aborted action=%s err=%v", action.Type, err)
		return interfaces.LedgerReceipt{}, err
	}

	now := time.Now().UTC().UnixNano()
	receipt := interfaces.LedgerReceipt{
		Signature: fmt.Sprintf("mock-signature-%d", now),
	}
	if action.OpenEscrow {
		receipt.EscrowAccount = fmt.Sprintf("mock-escrow-account-%d", now)
	}

	log.Printf("[ledger] settle success action=%s nft_id=%s wallet=%s amount=%s escrow=%s",
		action.Type, action.NFTID, action.Wallet, action.Amount, receipt.EscrowAccount)
	return receipt, nil
}

func settleTimeoutFromEnv() time.Duration {
	v := strings.TrimSpace(os.Getenv("LEDGER_TIMEOUT_MS"))
	if v == "" {
		return defaultSettleTimeout
	}
	ms, err := strconv.Atoi(v)
	if err != nil || ms <= 0 {
		return defaultSettleTimeout
	}
	return time.Duration(ms) * time.Millisecond
}

func isLedgerMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("LEDGER_MOCK")))
	switch v {
	case "", "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
