package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
	mock_interfaces "github.com/umeshgehlot/SolanaMarket/internal/usecase/interfaces/mocks"
)

func newCollectionUseCaseForTest(t *testing.T) (*CollectionUseCase, *mock_interfaces.MockICollectionRepository, *mock_interfaces.MockIUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockICollectionRepository(ctrl)
	users := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewCollectionUseCase(repo, users)
	uc.now = func() time.Time { return testNow }
	return uc, repo, users
}

func TestCollectionUseCase_Create(t *testing.T) {
	t.Run("empty name", func(t *testing.T) {
		uc, _, _ := newCollectionUseCaseForTest(t)
		_, err := uc.Create(context.Background(), "wallet-1", "  ", "", "")
		if !errors.Is(err, ErrInvalidCollectionName) {
			t.Fatalf("expected ErrInvalidCollectionName, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, repo, users := newCollectionUseCaseForTest(t)
		users.EXPECT().GetByWalletAddress(gomock.Any(), "wallet-1").Return(entities.User{ID: "user-1", WalletAddress: "wallet-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Collection{})).DoAndReturn(
			func(_ context.Context, c entities.Collection) (entities.Collection, error) {
				if c.ID == "" || c.Name != "Degen Apes" || c.CreatorID != "user-1" {
					t.Fatalf("unexpected collection: %+v", c)
				}
				return c, nil
			},
		)

		created, err := uc.Create(context.Background(), "wallet-1", " Degen Apes ", "desc", "ipfs://img")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Creator == nil || created.Creator.ID != "user-1" {
			t.Fatalf("expected populated creator")
		}
	})
}

func TestCollectionUseCase_Get(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		uc, repo, _ := newCollectionUseCaseForTest(t)
		repo.EXPECT().GetByID(gomock.Any(), "col-404").Return(entities.Collection{}, nil)

		_, err := uc.Get(context.Background(), "col-404")
		if !errors.Is(err, ErrCollectionNotFound) {
			t.Fatalf("expected ErrCollectionNotFound, got %v", err)
		}
	})

	t.Run("populates creator", func(t *testing.T) {
		uc, repo, users := newCollectionUseCaseForTest(t)
		repo.EXPECT().GetByID(gomock.Any(), "col-1").Return(entities.Collection{ID: "col-1", CreatorID: "user-1"}, nil)
		users.EXPECT().GetByID(gomock.Any(), "user-1").Return(entities.User{ID: "user-1"}, nil)

		c, err := uc.Get(context.Background(), "col-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Creator == nil || c.Creator.ID != "user-1" {
			t.Fatalf("expected populated creator, got %+v", c)
		}
	})
}
