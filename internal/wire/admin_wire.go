package wire

import (
	"store-rating/internal/adaptor"
	"store-rating/internal/data/entity"
	"store-rating/pkg/middleware"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAdmin(
	r chi.Router,
	adminHandler *adaptor.AdminHandler,
	storeHandler *adaptor.StoreHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// Entire family is admin only
	r.Group(func(r chi.Router) {
		r.Use(middleware.Authenticate(config.JWT, log))
		r.Use(middleware.RequireRole(log, string(entity.RoleAdmin)))

		r.Get("/api/admin/dashboard", adminHandler.GetDashboard)
		r.Post("/api/admin/users", adminHandler.CreateUser)
		r.Get("/api/admin/users", adminHandler.GetAllUsers)
		r.Get("/api/admin/users/{id}", adminHandler.GetUserDetail)
		r.Post("/api/admin/stores", storeHandler.CreateStore)
		r.Get("/api/admin/stores", adminHandler.GetAllStores)
	})
}
