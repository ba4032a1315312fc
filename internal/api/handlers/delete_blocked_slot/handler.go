package delete_blocked_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/TableBookingService/internal/api/handlers"
	"github.com/m04kA/TableBookingService/internal/api/middleware"
	"github.com/m04kA/TableBookingService/internal/service/blockedslots"
	"github.com/m04kA/TableBookingService/internal/service/permission"
)

const (
	msgInvalidBranchID = "некорректный ID филиала"
	msgInvalidSlotID   = "некорректный ID блокировки"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgNotFound        = "блокировка не найдена"
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

// Handle DELETE /api/v1/branches/{branchId}/blocked-slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchID, err := handlers.PathID(r, "branchId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	slotID, err := handlers.PathID(r, "slotId")
	if err != nil {
		h.logger.Warn("DELETE /branches/{id}/blocked-slots/{slotId} - Invalid slot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	err = h.service.Delete(r.Context(), actor, branchID, slotID)
	if err != nil {
		switch {
		case errors.Is(err, blockedslots.ErrBlockedSlotNotFound):
			h.logger.Warn("DELETE /branches/{id}/blocked-slots/{slotId} - Not found: branch_id=%d, slot_id=%d",
				branchID, slotID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, permission.ErrPermissionDenied):
			h.logger.Warn("DELETE /branches/{id}/blocked-slots/{slotId} - Access denied: branch_id=%d, user_id=%d",
				branchID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("DELETE /branches/{id}/blocked-slots/{slotId} - Failed to delete: slot_id=%d, error=%v",
				slotID, err)
			handlers.RespondServiceError(w, err)
		}
		return
	}

	h.logger.Info("DELETE /branches/{id}/blocked-slots/{slotId} - Blocked slot deleted: slot_id=%d, user_id=%d",
		slotID, actor.UserID)
	w.WriteHeader(http.StatusNoContent)
}
