package interfaces

import (
	"context"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
)

// IUserRepository abstracts DynamoDB persistence for users.

type IUserRepository interface {
	Create(ctx context.Context, u entities.User) (entities.User, error)
	GetByID(ctx context.Context, id string) (entities.User, error)
	GetByWalletAddress(ctx context.Context, walletAddress string) (entities.User, error)
	Update(ctx context.Context, u entities.User) (entities.User, error)
}
