package adaptor

import (
	"net/http"
	"strings"

	"store-rating/internal/usecase"
	"store-rating/pkg/utils"

	"go.uber.org/zap"
)

type OwnerHandler struct {
	service usecase.OwnerService
	log     *zap.Logger
}

func NewOwnerHandler(service usecase.OwnerService, log *zap.Logger) *OwnerHandler {
	return &OwnerHandler{
		service: service,
		log:     log.With(zap.String("handler", "owner")),
	}
}

// GetDashboard handles GET /api/owner/dashboard (store owner only)
func (h *OwnerHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	dashboard, err := h.service.GetDashboard(r.Context(), ownerID)
	if err != nil {
		h.handleServiceError(w, err, "get owner dashboard")
		return
	}

	utils.ResponseSuccess(w, "Dashboard retrieved successfully", dashboard)
}

// handleServiceError maps owner service errors onto the HTTP taxonomy
func (h *OwnerHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "no store found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
