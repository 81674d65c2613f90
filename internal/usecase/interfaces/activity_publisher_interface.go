package interfaces

import "github.com/umeshgehlot/SolanaMarket/internal/domain/entities"

// IActivityPublisher receives every transaction record the use cases commit,
// for fan-out to live-feed subscribers. Publish must not block the caller.

type IActivityPublisher interface {
	Publish(t entities.Transaction)
}
