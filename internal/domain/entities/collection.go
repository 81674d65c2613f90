package entities

import "time"

// Collection groups NFTs under a creator-owned brand.
//
// Storage model (DynamoDB):
//   - PK: id

type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	CreatorID   string    `json:"creator_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Creator *User `json:"creator,omitempty"`
}
