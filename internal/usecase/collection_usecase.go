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
	ErrInvalidCollectionID   = errors.New("invalid collection id")
	ErrInvalidCollectionName = errors.New("invalid collection name")
)

// ICollectionUseCase exposes collection CRUD.

type ICollectionUseCase interface {
	Create(ctx context.Context, creatorWallet, name, description, image string) (entities.Collection, error)
	Get(ctx context.Context, id string) (entities.Collection, error)
	List(ctx context.Context) ([]entities.Collection, error)
}

type CollectionUseCase struct {
	repo  interfaces.ICollectionRepository
	users interfaces.IUserRepository

	now func() time.Time
}

var _ ICollectionUseCase = (*CollectionUseCase)(nil)

func NewCollectionUseCase(repo interfaces.ICollectionRepository, users interfaces.IUserRepository) *CollectionUseCase {
	return &CollectionUseCase{repo: repo, users: users, now: time.Now}
}

func (u *CollectionUseCase) Create(ctx context.Context, creatorWallet, name, description, image string) (entities.Collection, error) {
	creatorWallet = strings.TrimSpace(creatorWallet)
	name = strings.TrimSpace(name)
	if creatorWallet == "" {
		return entities.Collection{}, ErrInvalidWallet
	}
	if name == "" {
		return entities.Collection{}, ErrInvalidCollectionName
	}

	creator, err := findOrCreateUser(ctx, u.users, creatorWallet, u.now)
	if err != nil {
		return entities.Collection{}, err
	}

	ts := u.now().UTC()
	c := entities.Collection{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(description),
		Image:       strings.TrimSpace(image),
		CreatorID:   creator.ID,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	created, err := u.repo.Create(ctx, c)
	if err != nil {
		return entities.Collection{}, err
	}
	created.Creator = &creator
	return created, nil
}

func (u *CollectionUseCase) Get(ctx context.Context, id string) (entities.Collection, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Collection{}, ErrInvalidCollectionID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Collection{}, err
	}
	if c.ID == "" {
		return entities.Collection{}, ErrCollectionNotFound
	}

	if u.users != nil && c.CreatorID != "" {
		if creator, err := u.users.GetByID(ctx, c.CreatorID); err == nil && creator.ID != "" {
			c.Creator = &creator
		}
	}
	return c, nil
}

func (u *CollectionUseCase) List(ctx context.Context) ([]entities.Collection, error) {
	return u.repo.List(ctx)
}
