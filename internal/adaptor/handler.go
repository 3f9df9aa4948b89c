package adaptor

import (
	"store-rating/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth   *AuthHandler
	Store  *StoreHandler
	Rating *RatingHandler
	Admin  *AdminHandler
	Owner  *OwnerHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:   NewAuthHandler(service.Auth, log),
		Store:  NewStoreHandler(service.Store, log),
		Rating: NewRatingHandler(service.Rating, log),
		Admin:  NewAdminHandler(service.Admin, log),
		Owner:  NewOwnerHandler(service.Owner, log),
	}
}
