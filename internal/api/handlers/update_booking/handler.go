package update_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/TableBookingService/internal/api/handlers"
	"github.com/m04kA/TableBookingService/internal/api/middleware"
	"github.com/m04kA/TableBookingService/internal/service/permission"
	updateBooking "github.com/m04kA/TableBookingService/internal/usecase/update_booking"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidFields      = "некорректные поля запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgNotFound           = "бронирование не найдено"
	msgNoChanges          = "запрос не содержит изменений"
	msgNotUpdatable       = "бронирование в текущем статусе нельзя изменить"
	msgInvalidBookingDate = "дата бронирования в прошлом"
	msgDateTooFar         = "бронировать можно не более чем на 30 дней вперед"
	msgBranchClosed       = "филиал закрыт в выбранное время"
	msgTableNotFound      = "стол не найден"
	msgTableInactive      = "стол недоступен"
	msgTableTooSmall      = "стол не вмещает компанию"
	msgSlotNotAvailable   = "выбранное время уже занято"
)

type Handler struct {
	useCase UpdateBookingUseCase
	logger  Logger
}

func NewHandler(useCase UpdateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("PATCH /bookings/{id} - Validation failed: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(actor, bookingID)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidFields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id} - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, permission.ErrPermissionDenied):
			h.logger.Warn("PATCH /bookings/{id} - Access denied: booking_id=%d, user_id=%d", bookingID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, updateBooking.ErrNoChanges):
			handlers.RespondBadRequest(w, msgNoChanges)

		case errors.Is(err, updateBooking.ErrNotUpdatable):
			handlers.RespondConflict(w, msgNotUpdatable)

		case errors.Is(err, updateBooking.ErrSlotNotAvailable):
			h.logger.Warn("PATCH /bookings/{id} - Slot not available: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, updateBooking.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidBookingDate)

		case errors.Is(err, updateBooking.ErrDateTooFarInFuture):
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, updateBooking.ErrBranchClosed):
			handlers.RespondBadRequest(w, msgBranchClosed)

		case errors.Is(err, updateBooking.ErrTableNotFound):
			handlers.RespondNotFound(w, msgTableNotFound)

		case errors.Is(err, updateBooking.ErrTableInactive):
			handlers.RespondBadRequest(w, msgTableInactive)

		case errors.Is(err, updateBooking.ErrTableTooSmall):
			handlers.RespondBadRequest(w, msgTableTooSmall)

		default:
			h.logger.Error("PATCH /bookings/{id} - Failed to update booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondServiceError(w, err)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id} - Booking updated: booking_id=%d, rescheduled=%t, user_id=%d",
		bookingID, result.Rescheduled, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, result.Booking)
}
