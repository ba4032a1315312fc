package calendar

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/availability"
)

type MockBranchRepository struct {
	mock.Mock
}

func (m *MockBranchRepository) GetOperatingHours(ctx context.Context, branchID int64, dayOfWeek int) (*domain.OperatingHour, error) {
	args := m.Called(ctx, branchID, dayOfWeek)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OperatingHour), args.Error(1)
}

type MockTableRepository struct {
	mock.Mock
}

func (m *MockTableRepository) ListFitting(ctx context.Context, branchID int64, partySize int) ([]*domain.Table, error) {
	args := m.Called(ctx, branchID, partySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Table), args.Error(1)
}

type MockAvailabilityChecker struct {
	mock.Mock
}

func (m *MockAvailabilityChecker) CheckAvailability(ctx context.Context, q availability.Query) (bool, error) {
	args := m.Called(ctx, q)
	return args.Bool(0), args.Error(1)
}
