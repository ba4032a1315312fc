package merge_customers

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
	msgForbidden          = "слияние доступно только главному администратору"
	msgNotFound           = "клиент не найден"
	msgSameCustomer       = "нельзя объединить профиль с самим собой"
	msgInactive           = "один из профилей уже деактивирован"
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

// Handle POST /api/v1/customers/{customerId}/merge
// Body: {"duplicateId": 15}. Дубликат деактивируется, его брони переходят к customerId
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	primaryID, err := handlers.PathID(r, "customerId")
	if err != nil {
		h.logger.Warn("POST /customers/{id}/merge - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req MergeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customers/{id}/merge - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	merged, err := h.service.Merge(r.Context(), actor, primaryID, req.DuplicateID)
	if err != nil {
		switch {
		case errors.Is(err, permission.ErrPermissionDenied):
			h.logger.Warn("POST /customers/{id}/merge - Access denied: user_id=%d", actor.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, customers.ErrMergeSameCustomer):
			handlers.RespondBadRequest(w, msgSameCustomer)

		case errors.Is(err, customers.ErrCustomerNotFound):
			h.logger.Warn("POST /customers/{id}/merge - Customer not found: primary_id=%d, duplicate_id=%d",
				primaryID, req.DuplicateID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, customers.ErrCustomerInactive):
			handlers.RespondConflict(w, msgInactive)

		default:
			h.logger.Error("POST /customers/{id}/merge - Failed to merge: primary_id=%d, duplicate_id=%d, error=%v",
				primaryID, req.DuplicateID, err)
			handlers.RespondServiceError(w, err)
		}
		return
	}

	h.logger.Info("POST /customers/{id}/merge - Customers merged: primary_id=%d, duplicate_id=%d, user_id=%d",
		primaryID, req.DuplicateID, actor.UserID)
	handlers.RespondJSON(w, http.StatusOK, FromDomainCustomer(merged))
}
