package get_blocked_slots

import (
	"context"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/blockedslots/models"
)

type BlockedSlotService interface {
	List(ctx context.Context, actor domain.Actor, branchID int64, date time.Time) ([]models.BlockedSlotResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
