package usecase

import (
	"context"
	"fmt"

	"store-rating/internal/data/repository"
	"store-rating/internal/dto/response"
	"store-rating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OwnerService interface {
	GetDashboard(ctx context.Context, ownerID uuid.UUID) (*response.OwnerDashboardResponse, error)
}

type ownerService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOwnerService(repo *repository.Repository, log *zap.Logger) OwnerService {
	return &ownerService{
		repo: repo,
		log:  log.With(zap.String("service", "owner")),
	}
}

// GetDashboard returns the authenticated owner's store, its average
// rating and every individual rating with the rater's name, newest first
func (s *ownerService) GetDashboard(ctx context.Context, ownerID uuid.UUID) (*response.OwnerDashboardResponse, error) {
	store, err := s.repo.Store.FindByOwnerID(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to find store by owner", zap.Error(err), zap.String("owner_id", ownerID.String()))
		return nil, fmt.Errorf("find store by owner: %w", err)
	}
	if store == nil {
		return nil, fmt.Errorf("no store found")
	}

	avg, err := s.repo.Rating.GetStoreAverageRating(ctx, store.ID)
	if err != nil {
		s.log.Error("Failed to get average rating", zap.Error(err), zap.String("store_id", store.ID.String()))
		return nil, fmt.Errorf("get average rating: %w", err)
	}

	ratings, err := s.repo.Rating.FindByStoreID(ctx, store.ID)
	if err != nil {
		s.log.Error("Failed to get store ratings", zap.Error(err), zap.String("store_id", store.ID.String()))
		return nil, fmt.Errorf("get store ratings: %w", err)
	}

	ratingResponses := make([]response.RatingResponse, len(ratings))
	for i, rating := range ratings {
		user, _ := s.repo.User.FindByID(ctx, rating.UserID)
		userName := ""
		if user != nil {
			userName = user.Name
		}
		ratingResponses[i] = response.RatingToResponse(rating, userName)
	}

	owner, _ := s.repo.User.FindByID(ctx, ownerID)
	ownerName, ownerEmail := "", ""
	if owner != nil {
		ownerName = owner.Name
		ownerEmail = owner.Email
	}

	s.log.Info("Owner dashboard retrieved",
		zap.String("owner_id", ownerID.String()),
		zap.String("store_id", store.ID.String()),
		zap.Int("rating_count", len(ratingResponses)))

	return &response.OwnerDashboardResponse{
		Store:         response.StoreToResponse(store, ownerName, ownerEmail),
		AverageRating: utils.RoundRating(avg),
		Ratings:       ratingResponses,
	}, nil
}
