package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"store-rating/internal/data/entity"
	"store-rating/internal/data/repository"
	"store-rating/internal/dto/request"
	"store-rating/internal/dto/response"
	"store-rating/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type StoreService interface {
	GetAllStores(ctx context.Context, requesterID uuid.UUID, query request.ListQuery) ([]response.StoreViewResponse, error)
	GetStore(ctx context.Context, storeID string, requesterID uuid.UUID) (*response.StoreViewResponse, error)
	CreateStore(ctx context.Context, req *request.CreateStoreRequest) (*response.StoreResponse, error)
	DeleteStore(ctx context.Context, storeID string) error
}

type storeService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewStoreService(repo *repository.Repository, log *zap.Logger) StoreService {
	return &storeService{
		repo: repo,
		log:  log.With(zap.String("service", "store")),
	}
}

// GetAllStores lists stores for any authenticated role, each decorated
// with the overall average and the requester's own rating
func (s *storeService) GetAllStores(ctx context.Context, requesterID uuid.UUID, query request.ListQuery) ([]response.StoreViewResponse, error) {
	sortField, sortDir := query.SortBy()

	stores, err := s.repo.Store.FindAll(ctx, query.Search, sortField, sortDir)
	if err != nil {
		s.log.Error("Failed to get stores", zap.Error(err), zap.String("search", query.Search))
		return nil, fmt.Errorf("get stores: %w", err)
	}

	views := make([]response.StoreViewResponse, 0, len(stores))
	for _, store := range stores {
		view, err := s.buildStoreView(ctx, store, requesterID)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}

	s.log.Info("Stores retrieved",
		zap.Int("count", len(views)),
		zap.String("search", query.Search))

	return views, nil
}

func (s *storeService) GetStore(ctx context.Context, storeID string, requesterID uuid.UUID) (*response.StoreViewResponse, error) {
	storeUUID, err := uuid.Parse(storeID)
	if err != nil {
		return nil, fmt.Errorf("invalid store ID format %s: %w", storeID, err)
	}

	store, err := s.repo.Store.FindByID(ctx, storeUUID)
	if err != nil {
		s.log.Error("Failed to get store", zap.Error(err), zap.String("store_id", storeID))
		return nil, fmt.Errorf("get store: %w", err)
	}
	if store == nil {
		return nil, fmt.Errorf("store not found")
	}

	return s.buildStoreView(ctx, store, requesterID)
}

// CreateStore is admin-only; the target owner must hold the STORE_OWNER
// role at creation time
func (s *storeService) CreateStore(ctx context.Context, req *request.CreateStoreRequest) (*response.StoreResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create store validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ownerID, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID format %s: %w", req.OwnerID, err)
	}

	// 2. Owner must exist with role STORE_OWNER
	owner, err := s.repo.User.FindByID(ctx, ownerID)
	if err != nil {
		s.log.Error("Failed to check owner", zap.Error(err), zap.String("owner_id", req.OwnerID))
		return nil, fmt.Errorf("failed to check owner")
	}
	if owner == nil || owner.Role != entity.RoleStoreOwner {
		s.log.Warn("Store creation with invalid owner", zap.String("owner_id", req.OwnerID))
		return nil, fmt.Errorf("invalid owner")
	}

	// 3. Store email must be unique
	email := normalizeEmail(req.Email)
	existing, err := s.repo.Store.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check store email", zap.Error(err))
		return nil, fmt.Errorf("failed to check store email")
	}
	if existing != nil {
		return nil, fmt.Errorf("store email already registered")
	}

	// 4. Create store entity
	now := time.Now()
	store := &entity.Store{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:    strings.TrimSpace(req.Name),
		Email:   email,
		Address: strings.TrimSpace(req.Address),
		OwnerID: ownerID,
	}

	if err := s.repo.Store.Create(ctx, store); err != nil {
		s.log.Error("Failed to create store", zap.Error(err), zap.String("email", email))
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("store email already registered")
		}
		return nil, fmt.Errorf("failed to create store")
	}

	s.log.Info("Store created",
		zap.String("store_id", store.ID.String()),
		zap.String("owner_id", ownerID.String()))

	resp := response.StoreToResponse(store, owner.Name, owner.Email)
	return &resp, nil
}

func (s *storeService) DeleteStore(ctx context.Context, storeID string) error {
	storeUUID, err := uuid.Parse(storeID)
	if err != nil {
		return fmt.Errorf("invalid store ID format %s: %w", storeID, err)
	}

	store, err := s.repo.Store.FindByID(ctx, storeUUID)
	if err != nil {
		s.log.Error("Failed to find store", zap.Error(err), zap.String("store_id", storeID))
		return fmt.Errorf("find store: %w", err)
	}
	if store == nil {
		return fmt.Errorf("store not found")
	}

	if err := s.repo.Store.Delete(ctx, storeUUID); err != nil {
		s.log.Error("Failed to delete store", zap.Error(err), zap.String("store_id", storeID))
		return fmt.Errorf("delete store: %w", err)
	}

	return nil
}

// buildStoreView resolves the derived fields for one store: the mean of
// all its ratings rounded to one decimal (0 when none exist) and the
// requester's own rating value, if any
func (s *storeService) buildStoreView(ctx context.Context, store *entity.Store, requesterID uuid.UUID) (*response.StoreViewResponse, error) {
	avg, err := s.repo.Rating.GetStoreAverageRating(ctx, store.ID)
	if err != nil {
		s.log.Error("Failed to get average rating", zap.Error(err), zap.String("store_id", store.ID.String()))
		return nil, fmt.Errorf("get average rating: %w", err)
	}

	var myRating *int
	own, err := s.repo.Rating.FindByUserAndStore(ctx, requesterID, store.ID)
	if err != nil {
		s.log.Error("Failed to get own rating", zap.Error(err), zap.String("store_id", store.ID.String()))
		return nil, fmt.Errorf("get own rating: %w", err)
	}
	if own != nil {
		myRating = &own.Rating
	}

	// Owner info for the listing, matching the original's populated view
	ownerName, ownerEmail := "", ""
	if owner, err := s.repo.User.FindByID(ctx, store.OwnerID); err == nil && owner != nil {
		ownerName = owner.Name
		ownerEmail = owner.Email
	}

	return &response.StoreViewResponse{
		StoreResponse: response.StoreToResponse(store, ownerName, ownerEmail),
		OverallRating: utils.RoundRating(avg),
		MyRating:      myRating,
	}, nil
}
