package response

import (
	"time"

	"store-rating/internal/data/entity"
)

type StoreResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Address    string    `json:"address"`
	OwnerID    string    `json:"owner_id"`
	OwnerName  string    `json:"owner_name,omitempty"`
	OwnerEmail string    `json:"owner_email,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// StoreViewResponse is the user-facing listing item: the overall average
// (0 when no ratings exist) plus the requester's own rating, if any
type StoreViewResponse struct {
	StoreResponse
	OverallRating float64 `json:"overall_rating"`
	MyRating      *int    `json:"my_rating"`
}

// AdminStoreResponse is the admin listing item with the derived average
type AdminStoreResponse struct {
	StoreResponse
	Rating float64 `json:"rating"`
}

// Helper converter
func StoreToResponse(store *entity.Store, ownerName, ownerEmail string) StoreResponse {
	return StoreResponse{
		ID:         store.ID.String(),
		Name:       store.Name,
		Email:      store.Email,
		Address:    store.Address,
		OwnerID:    store.OwnerID.String(),
		OwnerName:  ownerName,
		OwnerEmail: ownerEmail,
		CreatedAt:  store.CreatedAt,
	}
}
