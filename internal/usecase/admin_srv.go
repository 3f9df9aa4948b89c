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

type AdminService interface {
	GetDashboard(ctx context.Context) (*response.AdminDashboardResponse, error)
	CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error)
	GetAllUsers(ctx context.Context, query request.ListQuery) ([]response.AdminUserResponse, error)
	GetUserDetail(ctx context.Context, userID string) (*response.AdminUserResponse, error)
	GetAllStores(ctx context.Context, query request.ListQuery) ([]response.AdminStoreResponse, error)
}

type adminService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewAdminService(repo *repository.Repository, log *zap.Logger) AdminService {
	return &adminService{
		repo: repo,
		log:  log.With(zap.String("service", "admin")),
	}
}

func (s *adminService) GetDashboard(ctx context.Context) (*response.AdminDashboardResponse, error) {
	totalUsers, err := s.repo.User.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count users", zap.Error(err))
		return nil, fmt.Errorf("count users: %w", err)
	}

	totalStores, err := s.repo.Store.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count stores", zap.Error(err))
		return nil, fmt.Errorf("count stores: %w", err)
	}

	totalRatings, err := s.repo.Rating.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count ratings", zap.Error(err))
		return nil, fmt.Errorf("count ratings: %w", err)
	}

	return &response.AdminDashboardResponse{
		TotalUsers:   totalUsers,
		TotalStores:  totalStores,
		TotalRatings: totalRatings,
	}, nil
}

// CreateUser lets an admin create an account with any role
func (s *adminService) CreateUser(ctx context.Context, req *request.CreateUserRequest) (*response.UserResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create user validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	email := normalizeEmail(req.Email)

	// 2. Check email not yet registered
	existingUser, err := s.repo.User.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existingUser != nil {
		return nil, fmt.Errorf("email already registered")
	}

	// 3. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	// 4. Create user entity
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		PasswordHash: hashedPassword,
		Address:      strings.TrimSpace(req.Address),
		Role:         entity.UserRole(req.Role),
	}

	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		if repository.IsUniqueViolation(err) {
			return nil, fmt.Errorf("email already registered")
		}
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User created by admin",
		zap.String("user_id", user.ID.String()),
		zap.String("role", req.Role))

	resp := response.UserToResponse(user)
	return &resp, nil
}

// GetAllUsers lists users with optional search, role filter and sort;
// STORE_OWNER entries carry their store's derived average rating
func (s *adminService) GetAllUsers(ctx context.Context, query request.ListQuery) ([]response.AdminUserResponse, error) {
	sortField, sortDir := query.SortBy()

	users, err := s.repo.User.FindAll(ctx, query.Search, query.Role, sortField, sortDir)
	if err != nil {
		s.log.Error("Failed to get users", zap.Error(err), zap.String("search", query.Search))
		return nil, fmt.Errorf("get users: %w", err)
	}

	responses := make([]response.AdminUserResponse, 0, len(users))
	for _, user := range users {
		item := response.AdminUserResponse{UserResponse: response.UserToResponse(user)}

		if user.Role == entity.RoleStoreOwner {
			if rating, err := s.ownerStoreRating(ctx, user.ID); err == nil && rating != nil {
				item.StoreRating = rating
			}
		}

		responses = append(responses, item)
	}

	s.log.Info("Users retrieved",
		zap.Int("count", len(responses)),
		zap.String("search", query.Search),
		zap.String("role", query.Role))

	return responses, nil
}

func (s *adminService) GetUserDetail(ctx context.Context, userID string) (*response.AdminUserResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	user, err := s.repo.User.FindByID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	detail := &response.AdminUserResponse{UserResponse: response.UserToResponse(user)}

	if user.Role == entity.RoleStoreOwner {
		if rating, err := s.ownerStoreRating(ctx, user.ID); err == nil && rating != nil {
			detail.StoreRating = rating
		}
	}

	return detail, nil
}

// GetAllStores lists stores for the admin views, each with owner info
// and the derived average rating
func (s *adminService) GetAllStores(ctx context.Context, query request.ListQuery) ([]response.AdminStoreResponse, error) {
	sortField, sortDir := query.SortBy()

	stores, err := s.repo.Store.FindAll(ctx, query.Search, sortField, sortDir)
	if err != nil {
		s.log.Error("Failed to get stores", zap.Error(err), zap.String("search", query.Search))
		return nil, fmt.Errorf("get stores: %w", err)
	}

	responses := make([]response.AdminStoreResponse, 0, len(stores))
	for _, store := range stores {
		avg, err := s.repo.Rating.GetStoreAverageRating(ctx, store.ID)
		if err != nil {
			s.log.Error("Failed to get average rating", zap.Error(err), zap.String("store_id", store.ID.String()))
			return nil, fmt.Errorf("get average rating: %w", err)
		}

		ownerName, ownerEmail := "", ""
		if owner, err := s.repo.User.FindByID(ctx, store.OwnerID); err == nil && owner != nil {
			ownerName = owner.Name
			ownerEmail = owner.Email
		}

		responses = append(responses, response.AdminStoreResponse{
			StoreResponse: response.StoreToResponse(store, ownerName, ownerEmail),
			Rating:        utils.RoundRating(avg),
		})
	}

	s.log.Info("Stores retrieved for admin",
		zap.Int("count", len(responses)),
		zap.String("search", query.Search))

	return responses, nil
}

// ownerStoreRating resolves the average rating of the store owned by the
// given user, or nil when the owner has no store yet
func (s *adminService) ownerStoreRating(ctx context.Context, ownerID uuid.UUID) (*float64, error) {
	store, err := s.repo.Store.FindByOwnerID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, nil
	}

	avg, err := s.repo.Rating.GetStoreAverageRating(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	rounded := utils.RoundRating(avg)
	return &rounded, nil
}
