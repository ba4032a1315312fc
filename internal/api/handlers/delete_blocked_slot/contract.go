package delete_blocked_slot

import (
	"context"

	"github.com/m04kA/TableBookingService/internal/domain"
)

type BlockedSlotService interface {
	Delete(ctx context.Context, actor domain.Actor, branchID, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
