package get_loyalty

import (
	"context"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/loyalty"
	"github.com/m04kA/TableBookingService/internal/service/permission"
)

type LoyaltyService interface {
	GetStatus(ctx context.Context, customerID int64) (*loyalty.Status, error)
}

type PermissionChecker interface {
	AssertAllowed(actor domain.Actor, resource permission.Resource, action permission.Action, branchID *int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
