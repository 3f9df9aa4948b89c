package wire

import (
	"store-rating/internal/adaptor"
	"store-rating/internal/data/entity"
	"store-rating/pkg/middleware"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOwner(
	r chi.Router,
	ownerHandler *adaptor.OwnerHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleStoreOwner)))

		r.Get("/api/owner/dashboard", ownerHandler.GetDashboard)
	})
}
