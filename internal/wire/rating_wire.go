package wire

import (
	"store-rating/internal/adaptor"
	"store-rating/internal/data/entity"
	"store-rating/pkg/middleware"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRating(
	r chi.Router,
	ratingHandler *adaptor.RatingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))

		// Owners and admins read a store's rating list
		r.With(middleware.RequireRole(log,
			string(entity.RoleStoreOwner), string(entity.RoleAdmin))).
			Get("/api/ratings/store/{storeId}", ratingHandler.GetStoreRatings)

		// Plain users submit and delete their own ratings
		r.With(middleware.RequireRole(log, string(entity.RoleUser))).
			Post("/api/ratings/store/{storeId}", ratingHandler.SubmitRating)
		r.With(middleware.RequireRole(log, string(entity.RoleUser))).
			Delete("/api/ratings/{id}", ratingHandler.DeleteRating)
	})
}
