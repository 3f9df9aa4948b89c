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

type StoreHandler struct {
	service usecase.StoreService
	log     *zap.Logger
}

func NewStoreHandler(service usecase.StoreService, log *zap.Logger) *StoreHandler {
	return &StoreHandler{
		service: service,
		log:     log.With(zap.String("handler", "store")),
	}
}

// GetAllStores handles GET /api/stores (any authenticated role)
func (h *StoreHandler) GetAllStores(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	query := r.URL.Query()
	listQuery := request.ListQuery{
		Search: query.Get("search"),
		Sort:   query.Get("sort"),
	}

	stores, err := h.service.GetAllStores(r.Context(), userID, listQuery)
	if err != nil {
		h.handleServiceError(w, err, "get stores")
		return
	}

	utils.ResponseSuccess(w, "Stores retrieved successfully", stores)
}

// GetStore handles GET /api/stores/{id} (any authenticated role)
func (h *StoreHandler) GetStore(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	storeID := chi.URLParam(r, "id")
	if storeID == "" {
		utils.ResponseBadRequest(w, "Store ID is required", nil)
		return
	}

	store, err := h.service.GetStore(r.Context(), storeID, userID)
	if err != nil {
		h.handleServiceError(w, err, "get store")
		return
	}

	utils.ResponseSuccess(w, "Store retrieved successfully", store)
}

// CreateStore handles POST /api/stores (admin only)
func (h *StoreHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var req request.CreateStoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	store, err := h.service.CreateStore(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create store")
		return
	}

	utils.ResponseCreated(w, "Store created successfully", store)
}

// DeleteStore handles DELETE /api/stores/{id} (admin only)
func (h *StoreHandler) DeleteStore(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "id")
	if storeID == "" {
		utils.ResponseBadRequest(w, "Store ID is required", nil)
		return
	}

	if err := h.service.DeleteStore(r.Context(), storeID); err != nil {
		h.handleServiceError(w, err, "delete store")
		return
	}

	utils.ResponseSuccess(w, "Store deleted", nil)
}

// handleServiceError maps store service errors onto the HTTP taxonomy
func (h *StoreHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid owner"),
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
