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

func newUserUseCaseForTest(t *testing.T, at time.Time) (*UserUseCase, *mock_interfaces.MockIUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIUserRepository(ctrl)
	uc := NewUserUseCase(repo)
	uc.now = func() time.Time { return at }
	return uc, repo
}

func TestUserUseCase_GetOrCreateByWallet(t *testing.T) {
	t.Run("empty wallet", func(t *testing.T) {
		uc, _ := newUserUseCaseForTest(t, testNow)
		_, err := uc.GetOrCreateByWallet(context.Background(), "   ")
		if !errors.Is(err, ErrInvalidWallet) {
			t.Fatalf("expected ErrInvalidWallet, got %v", err)
		}
	})

	t.Run("existing wallet returns as is", func(t *testing.T) {
		uc, repo := newUserUseCaseForTest(t, testNow)
		repo.EXPECT().GetByWalletAddress(gomock.Any(), "wallet-1").Return(entities.User{ID: "user-1", WalletAddress: "wallet-1"}, nil)

		u, err := uc.GetOrCreateByWallet(context.Background(), " wallet-1 ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if u.ID != "user-1" {
			t.Fatalf("expected user-1, got %+v", u)
		}
	})

	t.Run("new wallet creates a user", func(t *testing.T) {
		uc, repo := newUserUseCaseForTest(t, testNow)
		repo.EXPECT().GetByWalletAddress(gomock.Any(), "wallet-new").Return(entities.User{}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.ID == "" || u.WalletAddress != "wallet-new" {
					t.Fatalf("unexpected user: %+v", u)
				}
				if !u.CreatedAt.Equal(testNow) {
					t.Fatalf("expected clock timestamp, got %s", u.CreatedAt)
				}
				return u, nil
			},
		)

		if _, err := uc.GetOrCreateByWallet(context.Background(), "wallet-new"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestUserUseCase_GetByWallet(t *testing.T) {
	t.Run("unknown wallet", func(t *testing.T) {
		uc, repo := newUserUseCaseForTest(t, testNow)
		repo.EXPECT().GetByWalletAddress(gomock.Any(), "wallet-ghost").Return(entities.User{}, nil)

		_, err := uc.GetByWallet(context.Background(), "wallet-ghost")
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}

func TestUserUseCase_UpdateProfile(t *testing.T) {
	t.Run("nil fields leave profile untouched", func(t *testing.T) {
		uc, repo := newUserUseCaseForTest(t, testNow)
		existing := entities.User{ID: "user-1", WalletAddress: "wallet-1", Username: "keep-me", Bio: "old bio"}
		repo.EXPECT().GetByWalletAddress(gomock.Any(), "wallet-1").Return(existing, nil)

		bio := "  new bio  "
		repo.EXPECT().Update(gomock.Any(), gomock.AssignableToTypeOf(entities.User{})).DoAndReturn(
			func(_ context.Context, u entities.User) (entities.User, error) {
				if u.Username != "keep-me" {
					t.Fatalf("nil field must not clear username, got %q", u.Username)
				}
				if u.Bio != "new bio" {
					t.Fatalf("expected trimmed bio, got %q", u.Bio)
				}
				if !u.UpdatedAt.Equal(testNow) {
					t.Fatalf("expected updated_at bump")
				}
				return u, nil
			},
		)

		if _, err := uc.UpdateProfile(context.Background(), "wallet-1", ProfileUpdate{Bio: &bio}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown wallet", func(t *testing.T) {
		uc, repo := newUserUseCaseForTest(t, testNow)
		repo.EXPECT().GetByWalletAddress(gomock.Any(), "wallet-ghost").Return(entities.User{}, nil)

		_, err := uc.UpdateProfile(context.Background(), "wallet-ghost", ProfileUpdate{})
		if !errors.Is(err, ErrUserNotFound) {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})
}
