package blockedslots

import (
	"context"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/permission"
)

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	CreateBlockedSlot(ctx context.Context, slot *domain.BlockedSlot) (*domain.BlockedSlot, error)
	GetBlockedSlot(ctx context.Context, id int64) (*domain.BlockedSlot, error)
	ListBlockedSlots(ctx context.Context, branchID int64, date time.Time) ([]*domain.BlockedSlot, error)
	DeleteBlockedSlot(ctx context.Context, id int64) error
}

// PermissionChecker интерфейс проверки прав
type PermissionChecker interface {
	AssertAllowed(actor domain.Actor, resource permission.Resource, action permission.Action, branchID *int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
