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

type RatingHandler struct {
	service usecase.RatingService
	log     *zap.Logger
}

func NewRatingHandler(service usecase.RatingService, log *zap.Logger) *RatingHandler {
	return &RatingHandler{
		service: service,
		log:     log.With(zap.String("handler", "rating")),
	}
}

// GetStoreRatings handles GET /api/ratings/store/{storeId} (owner/admin)
func (h *RatingHandler) GetStoreRatings(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeId")
	if storeID == "" {
		utils.ResponseBadRequest(w, "Store ID is required", nil)
		return
	}

	ratings, err := h.service.GetStoreRatings(r.Context(), storeID)
	if err != nil {
		h.handleServiceError(w, err, "get store ratings")
		return
	}

	utils.ResponseSuccess(w, "Ratings retrieved successfully", ratings)
}

// SubmitRating handles POST /api/ratings/store/{storeId} (user only).
// Submitting twice overwrites the previous value.
func (h *RatingHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	storeID := chi.URLParam(r, "storeId")
	if storeID == "" {
		utils.ResponseBadRequest(w, "Store ID is required", nil)
		return
	}

	var req request.SubmitRatingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	// Validate request
	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	rating, err := h.service.SubmitRating(r.Context(), userID, storeID, &req)
	if err != nil {
		h.handleServiceError(w, err, "submit rating")
		return
	}

	utils.ResponseCreated(w, "Rating submitted successfully", rating)
}

// DeleteRating handles DELETE /api/ratings/{id} (user only)
func (h *RatingHandler) DeleteRating(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	ratingID := chi.URLParam(r, "id")
	if ratingID == "" {
		utils.ResponseBadRequest(w, "Rating ID is required", nil)
		return
	}

	if err := h.service.DeleteRating(r.Context(), ratingID, userID); err != nil {
		h.handleServiceError(w, err, "delete rating")
		return
	}

	utils.ResponseSuccess(w, "Rating deleted", nil)
}

// handleServiceError maps rating service errors onto the HTTP taxonomy
func (h *RatingHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
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
