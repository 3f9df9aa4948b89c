package response

type AdminDashboardResponse struct {
	TotalUsers   int64 `json:"total_users"`
	TotalStores  int64 `json:"total_stores"`
	TotalRatings int64 `json:"total_ratings"`
}

type OwnerDashboardResponse struct {
	Store         StoreResponse    `json:"store"`
	AverageRating float64          `json:"average_rating"`
	Ratings       []RatingResponse `json:"ratings"`
}
