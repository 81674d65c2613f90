package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
	"github.com/umeshgehlot/SolanaMarket/internal/usecase/interfaces"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrInvalidUserID = errors.New("invalid user id")
)

// IUserUseCase exposes wallet-identity operations. There is no signup:
// a wallet becomes a user the first time it acts.

type IUserUseCase interface {
	GetOrCreateByWallet(ctx context.Context, walletAddress string) (entities.User, error)
	GetByWallet(ctx context.Context, walletAddress string) (entities.User, error)
	Get(ctx context.Context, id string) (entities.User, error)
	UpdateProfile(ctx context.Context, walletAddress string, profile ProfileUpdate) (entities.User, error)
}

// ProfileUpdate carries the mutable profile fields. Nil means "leave as is".

type ProfileUpdate struct {
	Username *string
	Avatar   *string
	Bio      *string
	Website  *string
	Twitter  *string
	Discord  *string
}

type UserUseCase struct {
	repo interfaces.IUserRepository

	now func() time.Time
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{repo: repo, now: time.Now}
}

func (u *UserUseCase) GetOrCreateByWallet(ctx context.Context, walletAddress string) (entities.User, error) {
	walletAddress = strings.TrimSpace(walletAddress)
	if walletAddress == "" {
		return entities.User{}, ErrInvalidWallet
	}
	return findOrCreateUser(ctx, u.repo, walletAddress, u.now)
}

func (u *UserUseCase) GetByWallet(ctx context.Context, walletAddress string) (entities.User, error) {
	walletAddress = strings.TrimSpace(walletAddress)
	if walletAddress == "" {
		return entities.User{}, ErrInvalidWallet
	}

	user, err := u.repo.GetByWalletAddress(ctx, walletAddress)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) Get(ctx context.Context, id string) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	return user, nil
}

func (u *UserUseCase) UpdateProfile(ctx context.Context, walletAddress string, profile ProfileUpdate) (entities.User, error) {
	user, err := u.GetByWallet(ctx, walletAddress)
	if err != nil {
		return entities.User{}, err
	}

	if profile.Username != nil {
		user.Username = strings.TrimSpace(*profile.Username)
	}
	if profile.Avatar != nil {
		user.Avatar = strings.TrimSpace(*profile.Avatar)
	}
	if profile.Bio != nil {
		user.Bio = strings.TrimSpace(*profile.Bio)
	}
	if profile.Website != nil {
		user.Website = strings.TrimSpace(*profile.Website)
	}
	if profile.Twitter != nil {
		user.Twitter = strings.TrimSpace(*profile.Twitter)
	}
	if profile.Discord != nil {
		user.Discord = strings.TrimSpace(*profile.Discord)
	}
	user.UpdatedAt = u.now().UTC()

	return u.repo.Update(ctx, user)
}

// findOrCreateUser resolves a wallet address to its user record, creating
// one the first time the wallet is seen. Shared by every use case that takes
// a wallet identity.
func findOrCreateUser(ctx context.Context, repo interfaces.IUserRepository, walletAddress string, now func() time.Time) (entities.User, error) {
	user, err := repo.GetByWalletAddress(ctx, walletAddress)
	if err != nil {
		return entities.User{}, err
	}
	if user.ID != "" {
		return user, nil
	}

	ts := now().UTC()
	return repo.Create(ctx, entities.User{
		ID:            uuid.NewString(),
		WalletAddress: walletAddress,
		CreatedAt:     ts,
		UpdatedAt:     ts,
	})
}
