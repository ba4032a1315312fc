package merge_customers

import (
	"context"

	"github.com/m04kA/TableBookingService/internal/domain"
)

type CustomerService interface {
	Merge(ctx context.Context, actor domain.Actor, primaryID, duplicateID int64) (*domain.Customer, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
