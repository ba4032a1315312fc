package availability

import (
	"context"
	"time"

	"github.com/m04kA/TableBookingService/internal/domain"
	bookingRepo "github.com/m04kA/TableBookingService/internal/infra/storage/booking"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetOccupying(ctx context.Context, filter bookingRepo.OccupancyFilter) ([]*domain.Booking, error)
}

// BlockedSlotRepository интерфейс репозитория блокировок
type BlockedSlotRepository interface {
	ListBlockedSlots(ctx context.Context, branchID int64, date time.Time) ([]*domain.BlockedSlot, error)
}
