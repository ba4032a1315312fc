package get_loyalty

import (
	"errors"
	"net/http"

	"github.com/m04kA/TableBookingService/internal/api/handlers"
	"github.com/m04kA/TableBookingService/internal/api/middleware"
	"github.com/m04kA/TableBookingService/internal/service/loyalty"
	"github.com/m04kA/TableBookingService/internal/service/permission"
)

const (
	msgInvalidCustomerID = "некорректный ID клиента"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
	msgNotFound          = "клиент не найден"
)

type Handler struct {
	service     LoyaltyService
	permissions PermissionChecker
	logger      Logger
}

func NewHandler(service LoyaltyService, permissions PermissionChecker, logger Logger) *Handler {
	return &Handler{
		service:     service,
		permissions: permissions,
		logger:      logger,
	}
}

// Handle GET /api/v1/customers/{customerId}/loyalty
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	customerID, err := handlers.PathID(r, "customerId")
	if err != nil {
		h.logger.Warn("GET /customers/{id}/loyalty - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	actor, ok := middleware.GetActor(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Профили клиентов общие для всех филиалов
	if err := h.permissions.AssertAllowed(actor, permission.Customers, permission.Read, nil); err != nil {
		h.logger.Warn("GET /customers/{id}/loyalty - Access denied: user_id=%d", actor.UserID)
		handlers.RespondForbidden(w, msgForbidden)
		return
	}

	status, err := h.service.GetStatus(r.Context(), customerID)
	if err != nil {
		switch {
		case errors.Is(err, loyalty.ErrCustomerNotFound):
			h.logger.Warn("GET /customers/{id}/loyalty - Customer not found: customer_id=%d", customerID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("GET /customers/{id}/loyalty - Failed to get loyalty status: customer_id=%d, error=%v",
				customerID, err)
			handlers.RespondServiceError(w, err)
		}
		return
	}

	h.logger.Info("GET /customers/{id}/loyalty - Loyalty status retrieved: customer_id=%d, balance=%d",
		customerID, status.Account.PointsBalance)
	handlers.RespondJSON(w, http.StatusOK, FromServiceStatus(status))
}
