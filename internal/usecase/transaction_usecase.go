package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
	"github.com/umeshgehlot/SolanaMarket/internal/usecase/interfaces"
)

// ITransactionUseCase exposes the marketplace history.

type ITransactionUseCase interface {
	ListByNFT(ctx context.Context, nftID string) ([]entities.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Transaction, error)
}

type TransactionUseCase struct {
	repo interfaces.ITransactionRepository
}

var _ ITransactionUseCase = (*TransactionUseCase)(nil)

func NewTransactionUseCase(repo interfaces.ITransactionRepository) *TransactionUseCase {
	return &TransactionUseCase{repo: repo}
}

func (u *TransactionUseCase) ListByNFT(ctx context.Context, nftID string) ([]entities.Transaction, error) {
	nftID = strings.TrimSpace(nftID)
	if nftID == "" {
		return nil, ErrInvalidNFTID
	}

	list, err := u.repo.ListByNFTID(ctx, nftID)
	if err != nil {
		return nil, err
	}
	sortByTimestampDesc(list)
	return list, nil
}

func (u *TransactionUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Transaction, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}

	list, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortByTimestampDesc(list)
	return list, nil
}

func sortByTimestampDesc(list []entities.Transaction) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].Timestamp.After(list[j].Timestamp)
	})
}
