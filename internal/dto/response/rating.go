package response

import (
	"time"

	"store-rating/internal/data/entity"
)

type RatingResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	StoreID   string    `json:"store_id"`
	Rating    int       `json:"rating"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Helper converter
func RatingToResponse(rating *entity.Rating, userName string) RatingResponse {
	return RatingResponse{
		ID:        rating.ID.String(),
		UserID:    rating.UserID.String(),
		UserName:  userName,
		StoreID:   rating.StoreID.String(),
		Rating:    rating.Rating,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}
