package get_blocked_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/TableBookingService/internal/api/handlers"
	"github.com/m04kA/TableBookingService/internal/api/middleware"
	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/permission"
)

const (
	msgInvalidBranchID = "некорректный ID филиала"
	msgInvalidDate     = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	service BlockedSlotService
	logger  Logger
}

func NewHandler(service BlockedSlotService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branchId}/blocked-slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchID, err := handlers.PathID(r, "branchId")
	if err != nil {
		h.logger.Warn("GET /branches/{id}/blocked-slots - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	date, err := time.Parse(domain.DateFormat, r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /branches/{id}/blocked-slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slots, err := h.service.List(r.Context(), actor, branchID, date)
	if err != nil {
		switch {
		case errors.Is(err, permission.ErrPermissionDenied):
			h.logger.Warn("GET /branches/{id}/blocked-slots - Access denied: branch_id=%d, user_id=%d",
				branchID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /branches/{id}/blocked-slots - Failed to list blocked slots: branch_id=%d, error=%v",
				branchID, err)
			handlers.RespondServiceError(w, err)
		}
		return
	}

	h.logger.Info("GET /branches/{id}/blocked-slots - Blocked slots retrieved: branch_id=%d, count=%d", branchID, len(slots))
	handlers.RespondJSON(w, http.StatusOK, slots)
}
