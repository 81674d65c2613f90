package request

// CreateCollectionRequest is the payload for creating a collection.

type CreateCollectionRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       string `json:"image"`
}
