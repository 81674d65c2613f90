package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
	"github.com/umeshgehlot/SolanaMarket/internal/usecase/interfaces"
)

var (
	ErrProposalNotFound  = errors.New("proposal not found")
	ErrProposalExpired   = errors.New("proposal has expired")
	ErrProposalNotActive = errors.New("proposal is not active")
	ErrInvalidProposalID = errors.New("invalid proposal id")
	ErrInvalidPrice      = errors.New("invalid price")
	ErrInvalidExpiration = errors.New("invalid expiration days")
	ErrNotNFTOwner       = errors.New("only the NFT owner can accept proposals")
	ErrNotProposer       = errors.New("only the proposer can cancel a proposal")
	ErrSettlementFailed  = errors.New("ledger settlement failed")
	ErrInvalidWallet     = errors.New("invalid wallet address")
	ErrInvalidStatus     = errors.New("invalid status filter")
)

// ProposalStateError reports a transition attempted against a proposal that
// already left ACTIVE. It carries the status observed so clients can explain
// the conflict ("already sold", "was cancelled") instead of a generic error.

type ProposalStateError struct {
	Status entities.ProposalStatus
}

func (e *ProposalStateError) Error() string {
	return fmt.Sprintf("proposal is not active, current status: %s", e.Status)
}

func (e *ProposalStateError) Is(target error) bool { return target == ErrProposalNotActive }

// IProposalUseCase is the offer/bid lifecycle engine. One engine serves both
// kinds: the state machine, authorization rules and settlement flow are
// identical, bids just settle through an escrow account.

type IProposalUseCase interface {
	ListForNFT(ctx context.Context, kind entities.ProposalKind, nftID string, status entities.ProposalStatus) ([]entities.Proposal, error)
	Get(ctx context.Context, kind entities.ProposalKind, id string) (entities.Proposal, error)
	Create(ctx context.Context, kind entities.ProposalKind, nftID, proposerWallet string, price decimal.Decimal, expirationDays int) (entities.Proposal, error)
	Accept(ctx context.Context, kind entities.ProposalKind, id, actingWallet string) (entities.Transaction, error)
	Cancel(ctx context.Context, kind entities.ProposalKind, id, actingWallet string) (entities.Transaction, error)
}

type ProposalUseCase struct {
	proposals   interfaces.IProposalRepository
	nfts        interfaces.INFTRepository
	users       interfaces.IUserRepository
	txs         interfaces.ITransactionRepository
	settlements interfaces.ISettlementRepository
	ledger      interfaces.ILedger
	activity    interfaces.IActivityPublisher

	now func() time.Time
}

var _ IProposalUseCase = (*ProposalUseCase)(nil)

func NewProposalUseCase(
	proposals interfaces.IProposalRepository,
	nfts interfaces.INFTRepository,
	users interfaces.IUserRepository,
	txs interfaces.ITransactionRepository,
	settlements interfaces.ISettlementRepository,
	ledger interfaces.ILedger,
	activity interfaces.IActivityPublisher,
) *ProposalUseCase {
	return &ProposalUseCase{
		proposals:   proposals,
		nfts:        nfts,
		users:       users,
		txs:         txs,
		settlements: settlements,
		ledger:      ledger,
		activity:    activity,
		now:         time.Now,
	}
}

// ListForNFT returns proposals for an NFT ordered best-first: price
// descending, then recency. Stale ACTIVE rows are swept to EXPIRED before
// filtering; with no explicit status filter only ACTIVE proposals return.
func (u *ProposalUseCase) ListForNFT(ctx context.Context, kind entities.ProposalKind, nftID string, status entities.ProposalStatus) ([]entities.Proposal, error) {
	nftID = strings.TrimSpace(nftID)
	if nftID == "" {
		return nil, ErrNFTNotFound
	}
	if status != "" && !validStatus(status) {
		return nil, ErrInvalidStatus
	}

	if err := u.sweepExpired(ctx, kind, nftID); err != nil {
		return nil, err
	}

	effective := status
	if effective == "" {
		effective = entities.ProposalStatusActive
	}

	list, err := u.proposals.ListByNFTID(ctx, kind, nftID, effective)
	if err != nil {
		return nil, err
	}

	sort.Slice(list, func(i, j int) bool {
		if c := list[i].Price.Cmp(list[j].Price); c != 0 {
			return c > 0
		}
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})

	for i := range list {
		u.populateProposer(ctx, &list[i])
	}
	return list, nil
}

func (u *ProposalUseCase) Get(ctx context.Context, kind entities.ProposalKind, id string) (entities.Proposal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Proposal{}, ErrInvalidProposalID
	}

	p, err := u.proposals.GetByID(ctx, kind, id)
	if err != nil {
		return entities.Proposal{}, err
	}
	if p.ID == "" {
		return entities.Proposal{}, ErrProposalNotFound
	}

	// Opportunistic expiry on read.
	if p.Status == entities.ProposalStatusActive && p.ExpiredAt(u.now()) {
		if flipped, err := u.expire(ctx, kind, p); err == nil {
			p = flipped
		}
	}

	u.populateProposer(ctx, &p)
	return p, nil
}

// Create validates and persists a new ACTIVE proposal. The ledger settles
// first (reserving escrow for bids); nothing is persisted if that fails.
func (u *ProposalUseCase) Create(ctx context.Context, kind entities.ProposalKind, nftID, proposerWallet string, price decimal.Decimal, expirationDays int) (entities.Proposal, error) {
	nftID = strings.TrimSpace(nftID)
	proposerWallet = strings.TrimSpace(proposerWallet)
	log.Printf("[proposal][usecase] create start kind=%s nft_id=%s wallet=%s price=%s days=%d", kind, nftID, proposerWallet, price, expirationDays)

	if proposerWallet == "" {
		return entities.Proposal{}, ErrInvalidWallet
	}
	if !price.IsPositive() {
		return entities.Proposal{}, ErrInvalidPrice
	}
	if expirationDays <= 0 {
		return entities.Proposal{}, ErrInvalidExpiration
	}

	nft, err := u.nfts.GetByID(ctx, nftID)
	if err != nil {
		return entities.Proposal{}, err
	}
	if nft.ID == "" {
		return entities.Proposal{}, ErrNFTNotFound
	}

	proposer, err := findOrCreateUser(ctx, u.users, proposerWallet, u.now)
	if err != nil {
		return entities.Proposal{}, err
	}

	receipt, err := u.ledger.Settle(ctx, interfaces.LedgerAction{
		Type:       createType(kind),
		NFTID:      nft.ID,
		Wallet:     proposerWallet,
		Amount:     price,
		OpenEscrow: kind == entities.ProposalKindBid,
	})
	if err != nil {
		log.Printf("[proposal][usecase] ledger settle failed kind=%s nft_id=%s err=%v", kind, nftID, err)
		return entities.Proposal{}, fmt.Errorf("%w: %v", ErrSettlementFailed, err)
	}

	now := u.now().UTC()
	p := entities.Proposal{
		ID:            uuid.NewString(),
		Kind:          kind,
		NFTID:         nft.ID,
		ProposerID:    proposer.ID,
		Price:         price,
		Status:        entities.ProposalStatusActive,
		ExpiresAt:     now.AddDate(0, 0, expirationDays),
		CreatedAt:     now,
		UpdatedAt:     now,
		EscrowAccount: receipt.EscrowAccount,
	}

	created, err := u.proposals.Create(ctx, p)
	if err != nil {
		return entities.Proposal{}, err
	}

	u.record(ctx, entities.Transaction{
		ID:        uuid.NewString(),
		Type:      createType(kind),
		NFTID:     nft.ID,
		FromID:    proposer.ID,
		Price:     &price,
		Signature: receipt.Signature,
		Timestamp: now,
	})

	created.Proposer = &proposer
	log.Printf("[proposal][usecase] create success kind=%s proposal_id=%s nft_id=%s", kind, created.ID, nftID)
	return created, nil
}

// Accept resolves a proposal in the proposer's favor: ownership moves to the
// proposer and the proposal becomes ACCEPTED. Only the NFT's current owner
// may accept; an expired proposal is flipped to EXPIRED and refused. The
// ledger settles before any local write, and the local writes commit
// atomically, conditioned on the exact state read here.
func (u *ProposalUseCase) Accept(ctx context.Context, kind entities.ProposalKind, id, actingWallet string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	actingWallet = strings.TrimSpace(actingWallet)
	log.Printf("[proposal][usecase] accept start kind=%s proposal_id=%s wallet=%s", kind, id, actingWallet)

	if id == "" {
		return entities.Transaction{}, ErrInvalidProposalID
	}
	if actingWallet == "" {
		return entities.Transaction{}, ErrInvalidWallet
	}

	p, err := u.proposals.GetByID(ctx, kind, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if p.ID == "" {
		return entities.Transaction{}, ErrProposalNotFound
	}
	if p.Status != entities.ProposalStatusActive {
		return entities.Transaction{}, &ProposalStateError{Status: p.Status}
	}
	if p.ExpiredAt(u.now()) {
		if _, err := u.expire(ctx, kind, p); err != nil {
			log.Printf("[proposal][usecase] expire flip failed proposal_id=%s err=%v", p.ID, err)
		}
		return entities.Transaction{}, ErrProposalExpired
	}

	nft, err := u.nfts.GetByID(ctx, p.NFTID)
	if err != nil {
		return entities.Transaction{}, err
	}
	if nft.ID == "" {
		return entities.Transaction{}, ErrNFTNotFound
	}

	owner, err := findOrCreateUser(ctx, u.users, actingWallet, u.now)
	if err != nil {
		return entities.Transaction{}, err
	}
	if nft.OwnerID != owner.ID {
		return entities.Transaction{}, ErrNotNFTOwner
	}

	receipt, err := u.ledger.Settle(ctx, interfaces.LedgerAction{
		Type:          acceptType(kind),
		NFTID:         nft.ID,
		Wallet:        actingWallet,
		Amount:        p.Price,
		EscrowAccount: p.EscrowAccount,
	})
	if err != nil {
		log.Printf("[proposal][usecase] ledger settle failed kind=%s proposal_id=%s err=%v", kind, p.ID, err)
		return entities.Transaction{}, fmt.Errorf("%w: %v", ErrSettlementFailed, err)
	}

	now := u.now().UTC()
	price := p.Price
	tx := entities.Transaction{
		ID:        uuid.NewString(),
		Type:      acceptType(kind),
		NFTID:     nft.ID,
		FromID:    owner.ID,
		ToID:      p.ProposerID,
		Price:     &price,
		Signature: receipt.Signature,
		Timestamp: now,
	}

	err = u.settlements.AcceptProposal(ctx, interfaces.AcceptSettlement{
		Kind:                kind,
		ProposalID:          p.ID,
		SettlementSignature: receipt.Signature,
		NFTID:               nft.ID,
		FromOwnerID:         owner.ID,
		ToOwnerID:           p.ProposerID,
		Transaction:         tx,
		UpdatedAt:           now,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			// Lost the race: the proposal or the token moved under us.
			return entities.Transaction{}, u.stateConflict(ctx, kind, p)
		}
		return entities.Transaction{}, err
	}

	u.publish(tx)
	tx.From = &owner
	u.populateTransaction(ctx, &tx)
	log.Printf("[proposal][usecase] accept success kind=%s proposal_id=%s nft_id=%s new_owner=%s", kind, p.ID, nft.ID, p.ProposerID)
	return tx, nil
}

// Cancel resolves a proposal in nobody's favor. Only the original proposer
// may cancel; any escrow is released on the ledger before the local write.
func (u *ProposalUseCase) Cancel(ctx context.Context, kind entities.ProposalKind, id, actingWallet string) (entities.Transaction, error) {
	id = strings.TrimSpace(id)
	actingWallet = strings.TrimSpace(actingWallet)
	log.Printf("[proposal][usecase] cancel start kind=%s proposal_id=%s wallet=%s", kind, id, actingWallet)

	if id == "" {
		return entities.Transaction{}, ErrInvalidProposalID
	}
	if actingWallet == "" {
		return entities.Transaction{}, ErrInvalidWallet
	}

	p, err := u.proposals.GetByID(ctx, kind, id)
	if err != nil {
		return entities.Transaction{}, err
	}
	if p.ID == "" {
		return entities.Transaction{}, ErrProposalNotFound
	}
	if p.Status != entities.ProposalStatusActive {
		return entities.Transaction{}, &ProposalStateError{Status: p.Status}
	}
	if p.ExpiredAt(u.now()) {
		if _, err := u.expire(ctx, kind, p); err != nil {
			log.Printf("[proposal][usecase] expire flip failed proposal_id=%s err=%v", p.ID, err)
		}
		return entities.Transaction{}, ErrProposalExpired
	}

	proposer, err := u.users.GetByWalletAddress(ctx, actingWallet)
	if err != nil {
		return entities.Transaction{}, err
	}
	if proposer.ID == "" {
		return entities.Transaction{}, ErrUserNotFound
	}
	if p.ProposerID != proposer.ID {
		return entities.Transaction{}, ErrNotProposer
	}

	receipt, err := u.ledger.Settle(ctx, interfaces.LedgerAction{
		Type:          cancelType(kind),
		NFTID:         p.NFTID,
		Wallet:        actingWallet,
		Amount:        p.Price,
		EscrowAccount: p.EscrowAccount,
	})
	if err != nil {
		log.Printf("[proposal][usecase] ledger settle failed kind=%s proposal_id=%s err=%v", kind, p.ID, err)
		return entities.Transaction{}, fmt.Errorf("%w: %v", ErrSettlementFailed, err)
	}

	now := u.now().UTC()
	if _, err := u.proposals.UpdateStatus(ctx, kind, p.ID, entities.ProposalStatusActive, entities.ProposalStatusCancelled, "", now); err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Transaction{}, u.stateConflict(ctx, kind, p)
		}
		return entities.Transaction{}, err
	}

	price := p.Price
	tx := entities.Transaction{
		ID:        uuid.NewString(),
		Type:      cancelType(kind),
		NFTID:     p.NFTID,
		FromID:    proposer.ID,
		Price:     &price,
		Signature: receipt.Signature,
		Timestamp: now,
	}
	u.record(ctx, tx)

	tx.From = &proposer
	u.populateTransaction(ctx, &tx)
	log.Printf("[proposal][usecase] cancel success kind=%s proposal_id=%s", kind, p.ID)
	return tx, nil
}

// sweepExpired flips stale ACTIVE proposals for an NFT to EXPIRED. Each flip
// is a compare-and-set, so a sweep racing an accept or a second sweep is
// harmless; running it twice changes nothing.
func (u *ProposalUseCase) sweepExpired(ctx context.Context, kind entities.ProposalKind, nftID string) error {
	active, err := u.proposals.ListByNFTID(ctx, kind, nftID, entities.ProposalStatusActive)
	if err != nil {
		return err
	}

	now := u.now()
	for _, p := range active {
		if !p.ExpiredAt(now) {
			continue
		}
		if _, err := u.expire(ctx, kind, p); err != nil && !errors.Is(err, interfaces.ErrConditionFailed) {
			return err
		}
	}
	return nil
}

func (u *ProposalUseCase) expire(ctx context.Context, kind entities.ProposalKind, p entities.Proposal) (entities.Proposal, error) {
	flipped, err := u.proposals.UpdateStatus(ctx, kind, p.ID, entities.ProposalStatusActive, entities.ProposalStatusExpired, "", u.now().UTC())
	if err != nil {
		return entities.Proposal{}, err
	}
	log.Printf("[proposal][usecase] expired kind=%s proposal_id=%s", kind, p.ID)
	return flipped, nil
}

// stateConflict re-reads a proposal that lost a conditional write and
// reports the status that beat it.
func (u *ProposalUseCase) stateConflict(ctx context.Context, kind entities.ProposalKind, p entities.Proposal) error {
	current, err := u.proposals.GetByID(ctx, kind, p.ID)
	if err != nil || current.ID == "" {
		return &ProposalStateError{Status: p.Status}
	}
	return &ProposalStateError{Status: current.Status}
}

func (u *ProposalUseCase) record(ctx context.Context, tx entities.Transaction) {
	if u.txs == nil {
		return
	}
	if _, err := u.txs.Create(ctx, tx); err != nil {
		log.Printf("[proposal][usecase] transaction record failed tx_id=%s type=%s err=%v", tx.ID, tx.Type, err)
		return
	}
	u.publish(tx)
}

func (u *ProposalUseCase) publish(tx entities.Transaction) {
	if u.activity != nil {
		u.activity.Publish(tx)
	}
}

func (u *ProposalUseCase) populateProposer(ctx context.Context, p *entities.Proposal) {
	if u.users == nil || p.ProposerID == "" {
		return
	}
	proposer, err := u.users.GetByID(ctx, p.ProposerID)
	if err != nil || proposer.ID == "" {
		return
	}
	p.Proposer = &proposer
}

func (u *ProposalUseCase) populateTransaction(ctx context.Context, tx *entities.Transaction) {
	if u.users != nil {
		if tx.From == nil && tx.FromID != "" {
			if from, err := u.users.GetByID(ctx, tx.FromID); err == nil && from.ID != "" {
				tx.From = &from
			}
		}
		if tx.To == nil && tx.ToID != "" {
			if to, err := u.users.GetByID(ctx, tx.ToID); err == nil && to.ID != "" {
				tx.To = &to
			}
		}
	}
	if u.nfts != nil && tx.NFT == nil && tx.NFTID != "" {
		if nft, err := u.nfts.GetByID(ctx, tx.NFTID); err == nil && nft.ID != "" {
			tx.NFT = &nft
		}
	}
}

func validStatus(s entities.ProposalStatus) bool {
	switch s {
	case entities.ProposalStatusActive, entities.ProposalStatusAccepted,
		entities.ProposalStatusCancelled, entities.ProposalStatusExpired:
		return true
	}
	return false
}

func createType(kind entities.ProposalKind) entities.TransactionType {
	if kind == entities.ProposalKindBid {
		return entities.TransactionTypeBid
	}
	return entities.TransactionTypeOffer
}

func acceptType(kind entities.ProposalKind) entities.TransactionType {
	if kind == entities.ProposalKindBid {
		return entities.TransactionTypeAcceptBid
	}
	return entities.TransactionTypeAcceptOffer
}

func cancelType(kind entities.ProposalKind) entities.TransactionType {
	if kind == entities.ProposalKindBid {
		return entities.TransactionTypeCancelBid
	}
	return entities.TransactionTypeCancelOffer
}
