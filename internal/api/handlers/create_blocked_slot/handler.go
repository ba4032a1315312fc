package create_blocked_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/TableBookingService/internal/api/handlers"
	"github.com/m04kA/TableBookingService/internal/api/middleware"
	"github.com/m04kA/TableBookingService/internal/service/blockedslots"
	"github.com/m04kA/TableBookingService/internal/service/blockedslots/models"
	"github.com/m04kA/TableBookingService/internal/service/permission"
)

const (
	msgInvalidBranchID    = "некорректный ID филиала"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFields      = "некорректные поля запроса: date (YYYY-MM-DD), startTime и endTime (HH:MM)"
	msgInvalidInterval    = "время окончания должно быть позже начала"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
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

// Handle POST /api/v1/branches/{branchId}/blocked-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchID, err := handlers.PathID(r, "branchId")
	if err != nil {
		h.logger.Warn("POST /branches/{id}/blocked-slots - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /branches/{id}/blocked-slots - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req models.CreateBlockedSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /branches/{id}/blocked-slots - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.BranchID = branchID

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /branches/{id}/blocked-slots - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	slot, err := h.service.Create(r.Context(), actor, &req)
	if err != nil {
		switch {
		case errors.Is(err, permission.ErrPermissionDenied):
			h.logger.Warn("POST /branches/{id}/blocked-slots - Access denied: branch_id=%d, user_id=%d",
				branchID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, blockedslots.ErrInvalidInterval):
			handlers.RespondBadRequest(w, msgInvalidInterval)

		case errors.Is(err, blockedslots.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidFields)

		default:
			h.logger.Error("POST /branches/{id}/blocked-slots - Failed to create blocked slot: branch_id=%d, error=%v",
				branchID, err)
			handlers.RespondServiceError(w, err)
		}
		return
	}

	h.logger.Info("POST /branches/{id}/blocked-slots - Blocked slot created: slot_id=%d, branch_id=%d, user_id=%d",
		slot.ID, branchID, actor.UserID)
	handlers.RespondJSON(w, http.StatusCreated, slot)
}
