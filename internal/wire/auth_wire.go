package wire

import (
	"store-rating/internal/adaptor"
	"store-rating/pkg/middleware"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	config *utils.Config,
	rdb *redis.Client,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// The whole auth family carries the per-IP request quota
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(config.RateLimit, rdb, log))

		r.Post("/api/auth/signup", authHandler.Signup)
		r.Post("/api/auth/login", authHandler.Login)
		r.Post("/api/auth/logout", authHandler.Logout)

		// ==================== PROTECTED ROUTES ====================
		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(config.JWT, log))

			r.Get("/api/auth/me", authHandler.GetMe)
			r.Patch("/api/auth/password", authHandler.ChangePassword)
		})
	})
}
