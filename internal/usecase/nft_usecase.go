package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
	"github.com/umeshgehlot/SolanaMarket/internal/usecase/interfaces"
)

var (
	ErrNFTNotFound        = errors.New("nft not found")
	ErrInvalidNFTID       = errors.New("invalid nft id")
	ErrInvalidNFTName     = errors.New("invalid nft name")
	ErrInvalidNFTImage    = errors.New("invalid nft image")
	ErrInvalidRoyalty     = errors.New("invalid royalty percentage")
	ErrNFTNotListed       = errors.New("nft is not listed for sale")
	ErrAlreadyOwner       = errors.New("wallet already owns this nft")
	ErrOwnershipConflict  = errors.New("nft ownership changed")
	ErrCollectionNotFound = errors.New("collection not found")
)

// INFTUseCase exposes the NFT operations: minting, listing state, direct
// sale and transfer. Ownership mutations go through conditional settlement
// writes so a token cannot be sold twice.

type INFTUseCase interface {
	Create(ctx context.Context, cmd CreateNFTCommand) (entities.NFT, error)
	Get(ctx context.Context, id string) (entities.NFT, error)
	GetByMintAddress(ctx context.Context, mintAddress string) (entities.NFT, error)
	Browse(ctx context.Context, f interfaces.NFTFilter) ([]entities.NFT, error)
	List(ctx context.Context, nftID, ownerWallet string, price decimal.Decimal) (entities.NFT, error)
	Unlist(ctx context.Context, nftID, ownerWallet string) (entities.NFT, error)
	Buy(ctx context.Context, nftID, buyerWallet string) (entities.Transaction, error)
	Transfer(ctx context.Context, nftID, fromWallet, toWallet string) (entities.Transaction, error)
}

// CreateNFTCommand carries the mint inputs.

type CreateNFTCommand struct {
	CreatorWallet     string
	Name              string
	Description       string
	Image             string
	MintAddress       string
	CollectionID      string
	RoyaltyPercentage float64
}

type NFTUseCase struct {
	nfts        interfaces.INFTRepository
	users       interfaces.IUserRepository
	collections interfaces.ICollectionRepository
	txs         interfaces.ITransactionRepository
	settlements interfaces.ISettlementRepository
	ledger      interfaces.ILedger
	activity    interfaces.IActivityPublisher

	now func() time.Time
}

var _ INFTUseCase = (*NFTUseCase)(nil)

func NewNFTUseCase(
	nfts interfaces.INFTRepository,
	users interfaces.IUserRepository,
	collections interfaces.ICollectionRepository,
	txs interfaces.ITransactionRepository,
	settlements interfaces.ISettlementRepository,
	ledger interfaces.ILedger,
	activity interfaces.IActivityPublisher,
) *NFTUseCase {
	return &NFTUseCase{
		nfts:        nfts,
		users:       users,
		collections: collections,
		txs:         txs,
		settlements: settlements,
		ledger:      ledger,
		activity:    activity,
		now:         time.Now,
	}
}

// Create mints a token. The creator becomes the initial owner.
func (u *NFTUseCase) Create(ctx context.Context, cmd CreateNFTCommand) (entities.NFT, error) {
	cmd.CreatorWallet = strings.TrimSpace(cmd.CreatorWallet)
	cmd.Name = strings.TrimSpace(cmd.Name)
	cmd.Image = strings.TrimSpace(cmd.Image)
	cmd.MintAddress = strings.TrimSpace(cmd.MintAddress)
	log.Printf("[nft][usecase] create start name=%q wallet=%s", cmd.Name, cmd.CreatorWallet)

	if cmd.CreatorWallet == "" {
		return entities.NFT{}, ErrInvalidWallet
	}
	if cmd.Name == "" {
		return entities.NFT{}, ErrInvalidNFTName
	}
	if cmd.Image == "" {
		return entities.NFT{}, ErrInvalidNFTImage
	}
	if cmd.RoyaltyPercentage < 0 || cmd.RoyaltyPercentage > 100 {
		return entities.NFT{}, ErrInvalidRoyalty
	}

	if cmd.CollectionID != "" {
		c, err := u.collections.GetByID(ctx, cmd.CollectionID)
		if err != nil {
			return entities.NFT{}, err
		}
		if c.ID == "" {
			return entities.NFT{}, ErrCollectionNotFound
		}
	}

	creator, err := findOrCreateUser(ctx, u.users, cmd.CreatorWallet, u.now)
	if err != nil {
		return entities.NFT{}, err
	}

	receipt, err := u.ledger.Settle(ctx, interfaces.LedgerAction{
		Type:   entities.TransactionTypeMint,
		Wallet: cmd.CreatorWallet,
	})
	if err != nil {
		log.Printf("[nft][usecase] ledger settle failed action=mint wallet=%s err=%v", cmd.CreatorWallet, err)
		return entities.NFT{}, fmt.Errorf("%w: %v", ErrSettlementFailed, err)
	}

	now := u.now().UTC()
	mintAddress := cmd.MintAddress
	if mintAddress == "" {
		mintAddress = receipt.Signature
	}
	n := entities.NFT{
		ID:                uuid.NewString(),
		Name:              cmd.Name,
		Description:       cmd.Description,
		Image:             cmd.Image,
		CollectionID:      cmd.CollectionID,
		CreatorID:         creator.ID,
		OwnerID:           creator.ID,
		MintAddress:       mintAddress,
		RoyaltyPercentage: cmd.RoyaltyPercentage,
		Listed:            false,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.nfts.Create(ctx, n)
	if err != nil {
		return entities.NFT{}, err
	}

	u.record(ctx, entities.Transaction{
		ID:        uuid.NewString(),
		Type:      entities.TransactionTypeMint,
		NFTID:     created.ID,
		ToID:      creator.ID,
		Signature: receipt.Signature,
		Timestamp: now,
	})

	created.Creator = &creator
	created.Owner = &creator
	log.Printf("[nft][usecase] create success nft_id=%s mint_address=%s", created.ID, created.MintAddress)
	return created, nil
}

func (u *NFTUseCase) Get(ctx context.Context, id string) (entities.NFT, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.NFT{}, ErrInvalidNFTID
	}

	n, err := u.nfts.GetByID(ctx, id)
	if err != nil {
		return entities.NFT{}, err
	}
	if n.ID == "" {
		return entities.NFT{}, ErrNFTNotFound
	}
	u.populateNFT(ctx, &n)
	return n, nil
}

func (u *NFTUseCase) GetByMintAddress(ctx context.Context, mintAddress string) (entities.NFT, error) {
	mintAddress = strings.TrimSpace(mintAddress)
	if mintAddress == "" {
		return entities.NFT{}, ErrInvalidNFTID
	}

	n, err := u.nfts.GetByMintAddress(ctx, mintAddress)
	if err != nil {
		return entities.NFT{}, err
	}
	if n.ID == "" {
		return entities.NFT{}, ErrNFTNotFound
	}
	u.populateNFT(ctx, &n)
	return n, nil
}

func (u *NFTUseCase) Browse(ctx context.Context, f interfaces.NFTFilter) ([]entities.NFT, error) {
	list, err := u.nfts.List(ctx, f)
	if err != nil {
		return nil, err
	}
	for i := range list {
		u.populateNFT(ctx, &list[i])
	}
	return list, nil
}

// List puts a token up for sale at a fixed price. Owner-only.
func (u *NFTUseCase) List(ctx context.Context, nftID, ownerWallet string, price decimal.Decimal) (entities.NFT, error) {
	nftID = strings.TrimSpace(nftID)
	ownerWallet = strings.TrimSpace(ownerWallet)
	log.Printf("[nft][usecase] list start nft_id=%s wallet=%s price=%s", nftID, ownerWallet, price)

	if !price.IsPositive() {
		return entities.NFT{}, ErrInvalidPrice
	}

	nft, owner, err := u.loadOwned(ctx, nftID, ownerWallet)
	if err != nil {
		return entities.NFT{}, err
	}

	receipt, err := u.ledger.Settle(ctx, interfaces.LedgerAction{
		Type:   entities.TransactionTypeList,
		NFTID:  nft.ID,
		Wallet: ownerWallet,
		Amount: price,
	})
	if err != nil {
		log.Printf("[nft][usecase] ledger settle failed action=list nft_id=%s err=%v", nftID, err)
		return entities.NFT{}, fmt.Errorf("%w: %v", ErrSettlementFailed, err)
	}

	now := u.now().UTC()
	updated, err := u.nfts.UpdateListing(ctx, nft.ID, owner.ID, true, &price, now)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.NFT{}, ErrOwnershipConflict
		}
		return entities.NFT{}, err
	}

	u.record(ctx, entities.Transaction{
		ID:        uuid.NewString(),
		Type:      entities.TransactionTypeList,
		NFTID:     nft.ID,
		FromID:    owner.ID,
		Price:     &price,
		Signature: receipt.Signature,
		Timestamp: now,
	})

	u.populateNFT(ctx, &updated)
	log.Printf("[nft][usecase] list success nft_id=%s price=%s", nft.ID, price)
	return updated, nil
}

// Unlist takes a listed token off the market. Owner-only.
func (u *NFTUseCase) Unlist(ctx context.Context, nftID, ownerWallet string) (entities.NFT, error) {
	nftID = strings.TrimSpace(nftID)
	ownerWallet = strings.TrimSpace(ownerWallet)
	log.Printf("[nft][usecase] unlist start nft_id=%s wallet=%s", nftID, ownerWallet)

	nft, owner, err := u.loadOwned(ctx, nftID, ownerWallet)
	if err != nil {
		return entities.NFT{}, err
	}
	if !nft.Listed {
		return entities.NFT{}, ErrNFTNotListed
	}

	receipt, err := u.ledger.Settle(ctx, interfaces.LedgerAction{
		Type:   entities.TransactionTypeUnlist,
		NFTID:  nft.ID,
		Wallet: ownerWallet,
	})
	if err != nil {
		log.Printf("[nft][usecase] ledger settle failed action=unlist nft_id=%s err=%v", nftID, err)
		return entities.NFT{}, fmt.Errorf("%w: %v", ErrSettlementFailed, err)
	}

	now := u.now().UTC()
	updated, err := u.nfts.UpdateListing(ctx, nft.ID, owner.ID, false, nil, now)
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.NFT{}, ErrOwnershipConflict
		}
		return entities.NFT{}, err
	}

	u.record(ctx, entities.Transaction{
		ID:        uuid.NewString(),
		Type:      entities.TransactionTypeUnlist,
		NFTID:     nft.ID,
		FromID:    owner.ID,
		Signature: receipt.Signature,
		Timestamp: now,
	})

	u.populateNFT(ctx, &updated)
	log.Printf("[nft][usecase] unlist success nft_id=%s", nft.ID)
	return updated, nil
}

// Buy purchases a listed token at its asking price. The ledger settles
// first; ownership then moves atomically, conditioned on the seller still
// owning the token.
func (u *NFTUseCase) Buy(ctx context.Context, nftID, buyerWallet string) (entities.Transaction, error) {
	nftID = strings.TrimSpace(nftID)
	buyerWallet = strings.TrimSpace(buyerWallet)
	log.Printf("[nft][usecase] buy start nft_id=%s wallet=%s", nftID, buyerWallet)

	if nftID == "" {
		return entities.Transaction{}, ErrInvalidNFTID
	}
	if buyerWallet == "" {
		return entities.Transaction{}, ErrInvalidWallet
	}

	nft, err := u.nfts.GetByID(ctx, nftID)
	if err != nil {
		return entities.Transaction{}, err
	}
	if nft.ID == "" {
		return entities.Transaction{}, ErrNFTNotFound
	}
	if !nft.Listed || nft.Price == nil {
		return entities.Transaction{}, ErrNFTNotListed
	}

	buyer, err := findOrCreateUser(ctx, u.users, buyerWallet, u.now)
	if err != nil {
		return entities.Transaction{}, err
	}
	if buyer.ID == nft.OwnerID {
		return entities.Transaction{}, ErrAlreadyOwner
	}

	seller, err := u.users.GetByID(ctx, nft.OwnerID)
	if err != nil {
		return entities.Transaction{}, err
	}
	if seller.ID == "" {
		return entities.Transaction{}, ErrUserNotFound
	}

	price := *nft.Price
	receipt, err := u.ledger.Settle(ctx, interfaces.LedgerAction{
		Type:   entities.TransactionTypeSale,
		NFTID:  nft.ID,
		Wallet: buyerWallet,
		Amount: price,
	})
	if err != nil {
		log.Printf("[nft][usecase] ledger settle failed action=sale nft_id=%s err=%v", nftID, err)
		return entities.Transaction{}, fmt.Errorf("%w: %v", ErrSettlementFailed, err)
	}

	now := u.now().UTC()
	tx := entities.Transaction{
		ID:        uuid.NewString(),
		Type:      entities.TransactionTypeSale,
		NFTID:     nft.ID,
		FromID:    seller.ID,
		ToID:      buyer.ID,
		Price:     &price,
		Signature: receipt.Signature,
		Timestamp: now,
	}

	err = u.settlements.TransferNFT(ctx, interfaces.TransferSettlement{
		NFTID:       nft.ID,
		FromOwnerID: seller.ID,
		ToOwnerID:   buyer.ID,
		Transaction: tx,
		UpdatedAt:   now,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Transaction{}, ErrOwnershipConflict
		}
		return entities.Transaction{}, err
	}

	u.publish(tx)
	tx.From = &seller
	tx.To = &buyer
	u.populateTx(ctx, &tx)
	log.Printf("[nft][usecase] buy success nft_id=%s buyer=%s price=%s", nft.ID, buyer.ID, price)
	return tx, nil
}

// Transfer moves a token to another wallet without payment. Owner-only; the
// recipient is created on first sight.
func (u *NFTUseCase) Transfer(ctx context.Context, nftID, fromWallet, toWallet string) (entities.Transaction, error) {
	nftID = strings.TrimSpace(nftID)
	fromWallet = strings.TrimSpace(fromWallet)
	toWallet = strings.TrimSpace(toWallet)
	log.Printf("[nft][usecase] transfer start nft_id=%s from=%s to=%s", nftID, fromWallet, toWallet)

	if toWallet == "" {
		return entities.Transaction{}, ErrInvalidWallet
	}

	nft, from, err := u.loadOwned(ctx, nftID, fromWallet)
	if err != nil {
		return entities.Transaction{}, err
	}

	to, err := findOrCreateUser(ctx, u.users, toWallet, u.now)
	if err != nil {
		return entities.Transaction{}, err
	}

	receipt, err := u.ledger.Settle(ctx, interfaces.LedgerAction{
		Type:   entities.TransactionTypeTransfer,
		NFTID:  nft.ID,
		Wallet: fromWallet,
	})
	if err != nil {
		log.Printf("[nft][usecase] ledger settle failed action=transfer nft_id=%s err=%v", nftID, err)
		return entities.Transaction{}, fmt.Errorf("%w: %v", ErrSettlementFailed, err)
	}

	now := u.now().UTC()
	tx := entities.Transaction{
		ID:        uuid.NewString(),
		Type:      entities.TransactionTypeTransfer,
		NFTID:     nft.ID,
		FromID:    from.ID,
		ToID:      to.ID,
		Signature: receipt.Signature,
		Timestamp: now,
	}

	err = u.settlements.TransferNFT(ctx, interfaces.TransferSettlement{
		NFTID:       nft.ID,
		FromOwnerID: from.ID,
		ToOwnerID:   to.ID,
		Transaction: tx,
		UpdatedAt:   now,
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrConditionFailed) {
			return entities.Transaction{}, ErrOwnershipConflict
		}
		return entities.Transaction{}, err
	}

	u.publish(tx)
	tx.From = &from
	tx.To = &to
	u.populateTx(ctx, &tx)
	log.Printf("[nft][usecase] transfer success nft_id=%s to=%s", nft.ID, to.ID)
	return tx, nil
}

// loadOwned resolves an NFT and asserts the wallet is its current owner.
func (u *NFTUseCase) loadOwned(ctx context.Context, nftID, wallet string) (entities.NFT, entities.User, error) {
	if nftID == "" {
		return entities.NFT{}, entities.User{}, ErrInvalidNFTID
	}
	if wallet == "" {
		return entities.NFT{}, entities.User{}, ErrInvalidWallet
	}

	nft, err := u.nfts.GetByID(ctx, nftID)
	if err != nil {
		return entities.NFT{}, entities.User{}, err
	}
	if nft.ID == "" {
		return entities.NFT{}, entities.User{}, ErrNFTNotFound
	}

	owner, err := u.users.GetByWalletAddress(ctx, wallet)
	if err != nil {
		return entities.NFT{}, entities.User{}, err
	}
	if owner.ID == "" {
		return entities.NFT{}, entities.User{}, ErrUserNotFound
	}
	if nft.OwnerID != owner.ID {
		return entities.NFT{}, entities.User{}, ErrNotNFTOwner
	}
	return nft, owner, nil
}

func (u *NFTUseCase) record(ctx context.Context, tx entities.Transaction) {
	if u.txs == nil {
		return
	}
	if _, err := u.txs.Create(ctx, tx); err != nil {
		log.Printf("[nft][usecase] transaction record failed tx_id=%s type=%s err=%v", tx.ID, tx.Type, err)
		return
	}
	u.publish(tx)
}

func (u *NFTUseCase) publish(tx entities.Transaction) {
	if u.activity != nil {
		u.activity.Publish(tx)
	}
}

func (u *NFTUseCase) populateNFT(ctx context.Context, n *entities.NFT) {
	if u.users == nil {
		return
	}
	if n.CreatorID != "" {
		if creator, err := u.users.GetByID(ctx, n.CreatorID); err == nil && creator.ID != "" {
			n.Creator = &creator
		}
	}
	if n.OwnerID != "" {
		if n.OwnerID == n.CreatorID && n.Creator != nil {
			n.Owner = n.Creator
		} else if owner, err := u.users.GetByID(ctx, n.OwnerID); err == nil && owner.ID != "" {
			n.Owner = &owner
		}
	}
}

func (u *NFTUseCase) populateTx(ctx context.Context, tx *entities.Transaction) {
	if u.nfts == nil || tx.NFT != nil || tx.NFTID == "" {
		return
	}
	if nft, err := u.nfts.GetByID(ctx, tx.NFTID); err == nil && nft.ID != "" {
		tx.NFT = &nft
	}
}
