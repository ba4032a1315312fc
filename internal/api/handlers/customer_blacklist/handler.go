package customer_blacklist

import (
	"errors"
	"net/http"

	"github.com/m04kA/TableBookingService/internal/api/handlers"
	"github.com/m04kA/TableBookingService/internal/api/middleware"
	"github.com/m04kA/TableBookingService/internal/service/customers"
	"github.com/m04kA/TableBookingService/internal/service/permission"
)

const (
	msgInvalidCustomerID  = "некорректный ID клиента"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgNotFound           = "клиент не найден"
	msgInactive           = "профиль клиента деактивирован"
	msgInvalidReason      = "причина должна содержать не менее 5 символов"
)

type Handler struct {
	service CustomerService
	logger  Logger
}

func NewHandler(service CustomerService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleAdd POST /api/v1/customers/{customerId}/blacklist
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "POST /customers/{id}/blacklist", true)
}

// HandleRemove DELETE /api/v1/customers/{customerId}/blacklist
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "DELETE /customers/{id}/blacklist", false)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, route string, blacklist bool) {
	customerID, err := handlers.PathID(r, "customerId")
	if err != nil {
		h.logger.Warn("%s - Invalid customer ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req BlacklistRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := handlers.ValidateStruct(&req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidReason)
		return
	}

	if blacklist {
		err = h.service.Blacklist(r.Context(), actor, customerID, req.Reason)
	} else {
		err = h.service.RemoveBlacklist(r.Context(), actor, customerID, req.Reason)
	}
	if err != nil {
		switch {
		case errors.Is(err, customers.ErrCustomerNotFound):
			h.logger.Warn("%s - Customer not found: customer_id=%d", route, customerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, permission.ErrPermissionDenied):
			h.logger.Warn("%s - Access denied: customer_id=%d, user_id=%d", route, customerID, actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, customers.ErrInvalidReason):
			handlers.RespondBadRequest(w, msgInvalidReason)

		case errors.Is(err, customers.ErrCustomerInactive):
			handlers.RespondConflict(w, msgInactive)

		default:
			h.logger.Error("%s - Failed to update blacklist: customer_id=%d, error=%v", route, customerID, err)
			handlers.RespondServiceError(w, err)
		}
		return
	}

	h.logger.Info("%s - Blacklist updated: customer_id=%d, blacklisted=%t, user_id=%d",
		route, customerID, blacklist, actor.UserID)
	w.WriteHeader(http.StatusNoContent)
}
