package response

import (
	"time"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
)

type CollectionResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Image       string        `json:"image,omitempty"`
	CreatorID   string        `json:"creator_id"`
	Creator     *UserResponse `json:"creator,omitempty"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

func FromCollection(c entities.Collection) CollectionResponse {
	return CollectionResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Image:       c.Image,
		CreatorID:   c.CreatorID,
		Creator:     fromUserPtr(c.Creator),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func FromCollections(list []entities.Collection) []CollectionResponse {
	out := make([]CollectionResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromCollection(c))
	}
	return out
}
