package get_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/TableBookingService/internal/api/handlers"
	"github.com/m04kA/TableBookingService/internal/api/middleware"
	"github.com/m04kA/TableBookingService/internal/service/bookings"
	"github.com/m04kA/TableBookingService/internal/service/permission"
)

const (
	msgInvalidBookingID = "некорректный ID бронирования"
	msgInvalidCode      = "некорректный код бронирования"
	msgNotFound         = "бронирование не найдено"
	msgMissingUserID    = "отсутствует ID пользователя"
	msgForbidden        = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	booking, err := h.service.GetByID(r.Context(), actor, bookingID)
	if err != nil {
		h.respondError(w, "GET /bookings/{id}", err, actor.UserID)
		return
	}

	h.logger.Info("GET /bookings/{id} - Booking retrieved successfully: booking_id=%d, user_id=%d",
		bookingID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}

// HandleByCode GET /api/v1/bookings/code/{code}
func (h *Handler) HandleByCode(w http.ResponseWriter, r *http.Request) {
	code := strings.TrimSpace(mux.Vars(r)["code"])
	if code == "" || len(code) > 16 {
		handlers.RespondBadRequest(w, msgInvalidCode)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("GET /bookings/code/{code} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	booking, err := h.service.GetByCode(r.Context(), actor, code)
	if err != nil {
		h.respondError(w, "GET /bookings/code/{code}", err, actor.UserID)
		return
	}

	h.logger.Info("GET /bookings/code/{code} - Booking retrieved successfully: booking_id=%d", booking.ID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}

// HandleHistory GET /api/v1/bookings/{bookingId}/history
func (h *Handler) HandleHistory(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathID(r, "bookingId")
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/history - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	history, err := h.service.History(r.Context(), actor, bookingID)
	if err != nil {
		h.respondError(w, "GET /bookings/{id}/history", err, actor.UserID)
		return
	}

	h.logger.Info("GET /bookings/{id}/history - History retrieved: booking_id=%d, count=%d", bookingID, len(history))
	handlers.RespondJSON(w, http.StatusOK, history)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error, userID int64) {
	switch {
	case errors.Is(err, bookings.ErrBookingNotFound):
		h.logger.Warn("%s - Booking not found: user_id=%d", route, userID)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, permission.ErrPermissionDenied):
		h.logger.Warn("%s - Access denied: user_id=%d", route, userID)
		handlers.RespondForbidden(w, msgForbidden)

	default:
		h.logger.Error("%s - Failed to get booking: user_id=%d, error=%v", route, userID, err)
		handlers.RespondServiceError(w, err)
	}
}
