package entities

import "time"

// User is a marketplace identity keyed by wallet address.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (wallet_address-index): wallet_address
//
// There is no signup step: users are created lazily the first time a wallet
// address shows up in a mutating call.

type User struct {
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
