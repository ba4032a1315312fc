package availability

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/TableBookingService/internal/domain"
	bookingRepo "github.com/m04kA/TableBookingService/internal/infra/storage/booking"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetOccupying(ctx context.Context, filter bookingRepo.OccupancyFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type MockBlockedSlotRepository struct {
	mock.Mock
}

func (m *MockBlockedSlotRepository) ListBlockedSlots(ctx context.Context, branchID int64, date time.Time) ([]*domain.BlockedSlot, error) {
	args := m.Called(ctx, branchID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BlockedSlot), args.Error(1)
}
