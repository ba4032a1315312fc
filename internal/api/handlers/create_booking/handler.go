package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/TableBookingService/internal/api/handlers"
	"github.com/m04kA/TableBookingService/internal/api/middleware"
	"github.com/m04kA/TableBookingService/internal/service/permission"
	createBooking "github.com/m04kA/TableBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFields      = "некорректные поля запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgInvalidBookingDate = "дата бронирования в прошлом"
	msgDateTooFar         = "бронировать можно не более чем на 30 дней вперед"
	msgBranchClosed       = "филиал закрыт в выбранное время"
	msgBlacklisted        = "клиент находится в черном списке"
	msgTableNotFound      = "стол не найден"
	msgTableInactive      = "стол недоступен"
	msgTableTooSmall      = "стол не вмещает компанию"
	msgSlotNotAvailable   = "выбранное время уже занято"
	msgSlotLocked         = "это время сейчас бронирует другой сотрудник, повторите попытку"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /bookings - Validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, permission.ErrPermissionDenied):
			h.logger.Warn("POST /bookings - Access denied: user_id=%d, branch_id=%d", actor.UserID, req.BranchID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createBooking.ErrSlotLocked):
			h.logger.Warn("POST /bookings - Slot locked: branch_id=%d, date=%s", req.BranchID, req.BookingDate)
			handlers.RespondConflict(w, msgSlotLocked)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: branch_id=%d, date=%s, time=%s",
				req.BranchID, req.BookingDate, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrCustomerBlacklisted):
			h.logger.Warn("POST /bookings - Customer blacklisted: branch_id=%d", req.BranchID)
			handlers.RespondConflict(w, msgBlacklisted)

		case errors.Is(err, createBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, createBooking.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, createBooking.ErrBranchClosed):
			handlers.RespondBadRequest(w, msgBranchClosed)

		case errors.Is(err, createBooking.ErrTableNotFound):
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, createBooking.ErrTableInactive):
			handlers.RespondBadRequest(w, msgTableInactive)

		case errors.Is(err, createBooking.ErrTableTooSmall):
			handlers.RespondBadRequest(w, msgTableTooSmall)

		default:
			status, _ := handlers.StatusFor(err)
			if status == http.StatusInternalServerError {
				h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, branch_id=%d, error=%v",
					actor.UserID, req.BranchID, err)
			}
			handlers.RespondServiceError(w, err)
		}
		return
	}

	response := FromUseCaseResponse(result)

	status := http.StatusOK
	if result.Booking != nil {
		status = http.StatusCreated
		h.logger.Info("POST /bookings - Booking created: booking_id=%d, outcome=%s, user_id=%d",
			result.Booking.ID, result.Outcome, actor.UserID)
	} else {
		h.logger.Info("POST /bookings - No booking created: outcome=%s, branch_id=%d", result.Outcome, req.BranchID)
	}
	handlers.RespondJSON(w, status, response)
}
