package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"store-rating/internal/dto/request"
	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service usecase.AdminService
	log     *zap.Logger
}

func NewAdminHandler(service usecase.AdminService, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		log:     log.With(zap.String("handler", "admin")),
	}
}

// GetDashboard handles GET /api/admin/dashboard (admin only)
func (h *AdminHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := h.service.GetDashboard(r.Context())
	if err != nil {
		h.handleServiceError(w, err, "get dashboard")
		return
	}

	utils.ResponseSuccess(w, "Dashboard retrieved successfully", dashboard)
}

// CreateUser handles POST /api/admin/users (admin only)
func (h *AdminHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req request.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.service.CreateUser(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create user")
		return
	}

	utils.ResponseCreated(w, "User created successfully", user)
}

// GetAllUsers handles GET /api/admin/users (admin only)
func (h *AdminHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	listQuery := request.ListQuery{
		Search: query.Get("search"),
		Role:   query.Get("role"),
		Sort:   query.Get("sort"),
	}

	users, err := h.service.GetAllUsers(r.Context(), listQuery)
	if err != nil {
		h.handleServiceError(w, err, "get all users")
		return
	}

	utils.ResponseSuccess(w, "Users retrieved successfully", users)
}

// GetUserDetail handles GET /api/admin/users/{id} (admin only)
func (h *AdminHandler) GetUserDetail(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	user, err := h.service.GetUserDetail(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get user detail")
		return
	}

	utils.ResponseSuccess(w, "User retrieved successfully", user)
}

// GetAllStores handles GET /api/admin/stores (admin only)
func (h *AdminHandler) GetAllStores(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	listQuery := request.ListQuery{
		Search: query.Get("search"),
		Sort:   query.Get("sort"),
	}

	stores, err := h.service.GetAllStores(r.Context(), listQuery)
	if err != nil {
		h.handleServiceError(w, err, "get all stores")
		return
	}

	utils.ResponseSuccess(w, "Stores retrieved successfully", stores)
}

// handleServiceError maps admin service errors onto the HTTP taxonomy
func (h *AdminHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "already registered"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" failed - bad request",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
