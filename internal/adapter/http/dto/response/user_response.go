package response

import (
	"time"

	"github.com/umeshgehlot/SolanaMarket/internal/domain/entities"
)

type UserResponse struct {
	ID            string    `json:"id"`
	WalletAddress string    `json:"wallet_address"`
	Username      string    `json:"username,omitempty"`
	Avatar        string    `json:"avatar,omitempty"`
	Bio           string    `json:"bio,omitempty"`
	Website       string    `json:"website,omitempty"`
	Twitter       string    `json:"twitter,omitempty"`
	Discord       string    `json:"discord,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromUser(u entities.User) UserResponse {
	return UserResponse{
		ID:            u.ID,
		WalletAddress: u.WalletAddress,
		Username:      u.Username,
		Avatar:        u.Avatar,
		Bio:           u.Bio,
		Website:       u.Website,
		Twitter:       u.Twitter,
		Discord:       u.Discord,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func fromUserPtr(u *entities.User) *UserResponse {
	if u == nil {
		return nil
	}
	r := FromUser(*u)
	return &r
}
