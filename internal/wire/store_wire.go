package wire

import (
	"store-rating/internal/adaptor"
	"store-rating/internal/data/entity"
	"store-rating/pkg/middleware"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireStore(
	r chi.Router,
	storeHandler *adaptor.StoreHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// All store routes require authentication
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))

		// Browsing is open to every authenticated role
		r.With(middleware.RequireRole(log,
			string(entity.RoleUser), string(entity.RoleStoreOwner), string(entity.RoleAdmin))).
			Get("/api/stores", storeHandler.GetAllStores)
		r.With(middleware.RequireRole(log,
			string(entity.RoleUser), string(entity.RoleStoreOwner), string(entity.RoleAdmin))).
			Get("/api/stores/{id}", storeHandler.GetStore)

		// Mutations are admin only
		r.With(middleware.RequireRole(log, string(entity.RoleAdmin))).
			Post("/api/stores", storeHandler.CreateStore)
		r.With(middleware.RequireRole(log, string(entity.RoleAdmin))).
			Delete("/api/stores/{id}", storeHandler.DeleteStore)
	})
}
