package check_availability

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/pkg/types"
)

type MockHoursRepository struct {
	mock.Mock
}

func (m *MockHoursRepository) GetOperatingHours(ctx context.Context, branchID int64, dayOfWeek int) (*domain.OperatingHour, error) {
	args := m.Called(ctx, branchID, dayOfWeek)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OperatingHour), args.Error(1)
}

type MockCalendar struct {
	mock.Mock
}

func (m *MockCalendar) IsOpen(ctx context.Context, branchID int64, date time.Time, t types.TimeString) (bool, error) {
	args := m.Called(ctx, branchID, date, t)
	return args.Bool(0), args.Error(1)
}

func (m *MockCalendar) GetAvailableTables(ctx context.Context, branchID int64, date time.Time, t types.TimeString, partySize int) ([]*domain.Table, error) {
	args := m.Called(ctx, branchID, date, t, partySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Table), args.Error(1)
}

type MockSuggester struct {
	mock.Mock
}

func (m *MockSuggester) SuggestAlternativeSlots(ctx context.Context, branchID int64, date time.Time, t types.TimeString, partySize int) ([]types.TimeString, error) {
	args := m.Called(ctx, branchID, date, t, partySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.TimeString), args.Error(1)
}

type MockLogger struct{}

func (MockLogger) Info(string, ...interface{})  {}
func (MockLogger) Warn(string, ...interface{})  {}
func (MockLogger) Error(string, ...interface{}) {}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}
