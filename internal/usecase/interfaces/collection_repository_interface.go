package interfaces

import (
	"context"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
)

// ICollectionRepository abstracts DynamoDB persistence for collections.

type ICollectionRepository interface {
	Create(ctx context.Context, c entities.Collection) (entities.Collection, error)
	GetByID(ctx context.Context, id string) (entities.Collection, error)
	List(ctx context.Context) ([]entities.Collection, error)
}
