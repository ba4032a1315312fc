package customer_blacklist

import (
	"context"

	"github.com/m04kA/TableBookingService/internal/domain"
)

type CustomerService interface {
	Blacklist(ctx context.Context, actor domain.Actor, customerID int64, reason string) error
	RemoveBlacklist(ctx context.Context, actor domain.Actor, customerID int64, reason string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
