package response

// AdminUserResponse decorates the public user view with the derived
// average rating of the user's store, present only for STORE_OWNER users
// that have a store.
type AdminUserResponse struct {
	UserResponse
	StoreRating *float64 `json:"store_rating,omitempty"`
}
