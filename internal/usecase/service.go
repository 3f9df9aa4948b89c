package usecase

import (
	"store-rating/internal/data/repository"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth   AuthService
	Store  StoreService
	Rating RatingService
	Admin  AdminService
	Owner  OwnerService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:   NewAuthService(repo, config, log),
		Store:  NewStoreService(repo, log),
		Rating: NewRatingService(repo, log),
		Admin:  NewAdminService(repo, log),
		Owner:  NewOwnerService(repo, log),
	}
}
