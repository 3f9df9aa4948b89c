package usecase

import (
	"context"
	"fmt"
	"time"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/internal/dto/request"
	"store-rating/internal/dto/response"
	"store-rating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type RatingService interface {
	GetStoreRatings(ctx context.Context, storeID string) ([]response.RatingResponse, error)
	SubmitRating(ctx context.Context, userID uuid.UUID, storeID string, req *request.SubmitRatingRequest) (*response.RatingResponse, error)
	DeleteRating(ctx context.Context, ratingID string, userID uuid.UUID) error
}

type ratingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRatingService(repo *repository.Repository, log *zap.Logger) RatingService {
	return &ratingService{
		repo: repo,
		log:  log.With(zap.String("service", "rating")),
	}
}

// GetStoreRatings lists a store's ratings newest first, each with the
// rater's name
func (s *ratingService) GetStoreRatings(ctx context.Context, storeID string) ([]response.RatingResponse, error) {
	storeUUID, err := uuid.Parse(storeID)
	if err != nil {
		return nil, fmt.Errorf("invalid store ID format %s: %w", storeID, err)
	}

	ratings, err := s.repo.Rating.FindByStoreID(ctx, storeUUID)
	if err != nil {
		s.log.Error("Failed to get store ratings", zap.Error(err), zap.String("store_id", storeID))
		return nil, fmt.Errorf("get store ratings: %w", err)
	}

	responses := make([]response.RatingResponse, len(ratings))
	for i, rating := range ratings {
		user, _ := s.repo.User.FindByID(ctx, rating.UserID)
		userName := ""
		if user != nil {
			userName = user.Name
		}
		responses[i] = response.RatingToResponse(rating, userName)
	}

	s.log.Info("Store ratings retrieved",
		zap.String("store_id", storeID),
		zap.Int("count", len(responses)))

	return responses, nil
}

// SubmitRating upserts the caller's rating for a store: created when
// absent, overwritten otherwise. One record per (user, store) pair.
func (s *ratingService) SubmitRating(ctx context.Context, userID uuid.UUID, storeID string, req *request.SubmitRatingRequest) (*response.RatingResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Submit rating validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	storeUUID, err := uuid.Parse(storeID)
	if err != nil {
		return nil, fmt.Errorf("invalid store ID format %s: %w", storeID, err)
	}

	// 2. Store must exist
	store, err := s.repo.Store.FindByID(ctx, storeUUID)
	if err != nil {
		s.log.Error("Failed to check store", zap.Error(err), zap.String("store_id", storeID))
		return nil, fmt.Errorf("failed to check store")
	}
	if store == nil {
		return nil, fmt.Errorf("store not found")
	}

	// 3. Upsert, keyed on (user, store)
	now := time.Now()
	rating := &entity.Rating{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:  userID,
		StoreID: storeUUID,
		Rating:  req.Rating,
	}

	if err := s.repo.Rating.Upsert(ctx, rating); err != nil {
		s.log.Error("Failed to submit rating",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("store_id", storeID),
		)
		return nil, fmt.Errorf("submit rating: %w", err)
	}

	s.log.Info("Rating submitted",
		zap.String("rating_id", rating.ID.String()),
		zap.String("user_id", userID.String()),
		zap.String("store_id", storeID),
		zap.Int("rating", req.Rating),
	)

	user, _ := s.repo.User.FindByID(ctx, userID)
	userName := ""
	if user != nil {
		userName = user.Name
	}

	resp := response.RatingToResponse(rating, userName)
	return &resp, nil
}

// DeleteRating removes the caller's own rating. When the id does not
// exist or belongs to another user nothing happens and no error is
// reported, matching the upstream behavior.
func (s *ratingService) DeleteRating(ctx context.Context, ratingID string, userID uuid.UUID) error {
	ratingUUID, err := uuid.Parse(ratingID)
	if err != nil {
		return fmt.Errorf("invalid rating ID format %s: %w", ratingID, err)
	}

	if err := s.repo.Rating.DeleteOwn(ctx, ratingUUID, userID); err != nil {
		s.log.Error("Failed to delete rating",
			zap.Error(err),
			zap.String("rating_id", ratingID),
			zap.String("user_id", userID.String()),
		)
		return fmt.Errorf("delete rating: %w", err)
	}

	return nil
}
