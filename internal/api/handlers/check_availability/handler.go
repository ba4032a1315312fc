package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/TableBookingService/internal/api/handlers"
	"github.com/m04kA/TableBookingService/internal/api/middleware"
	"github.com/m04kA/TableBookingService/internal/service/permission"
	checkAvailability "github.com/m04kA/TableBookingService/internal/usecase/check_availability"
)

const (
	msgInvalidBranchID = "некорректный ID филиала"
	msgMissingUserID   = "отсутствует ID пользователя"
	msgInvalidParams   = "некорректные параметры: ожидаются date (YYYY-MM-DD), partySize, time (HH:MM)"
	msgInvalidDate     = "дата в прошлом"
	msgDateTooFar      = "дата дальше горизонта бронирования"
	msgForbidden       = "доступ запрещен"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/branches/{branchId}/availability
// Query params: date (required), partySize (required), time (опционально), step (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	branchID, err := handlers.PathID(r, "branchId")
	if err != nil {
		h.logger.Warn("GET /branches/{id}/availability - Invalid branch ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBranchID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /branches/{id}/availability - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	useCaseReq, err := ToUseCaseRequest(actor, branchID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /branches/{id}/availability - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, permission.ErrPermissionDenied):
			h.logger.Warn("GET /branches/{id}/availability - Access denied: branch_id=%d, user_id=%d",
				branchID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, checkAvailability.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, checkAvailability.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		default:
			h.logger.Error("GET /branches/{id}/availability - Failed to check availability: branch_id=%d, error=%v",
				branchID, err)
			handlers.RespondServiceError(w, err)
		}
		return
	}

	h.logger.Info("GET /branches/{id}/availability - Availability checked: branch_id=%d, date=%s, party_size=%d, open=%t, tables=%d",
		branchID, result.Date.Format("2006-01-02"), result.PartySize, result.Open, result.AvailableTables)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
