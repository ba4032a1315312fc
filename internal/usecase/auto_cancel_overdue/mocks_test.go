package auto_cancel_overdue

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/timeline"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) ListConfirmedUpTo(ctx context.Context, date time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) MarkNoShowBulk(ctx context.Context, ids []int64, at time.Time) ([]*domain.Booking, error) {
	args := m.Called(ctx, ids, at)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) AddHistory(ctx context.Context, entry *domain.BookingHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) UpdateStats(ctx context.Context, customerID int64) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

type MockTimelineRecorder struct {
	mock.Mock
}

func (m *MockTimelineRecorder) Record(ctx context.Context, entry timeline.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockReminderCanceller struct {
	mock.Mock
}

func (m *MockReminderCanceller) CancelReminders(bookingID int64) {
	m.Called(bookingID)
}

type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) AddSweepNoShows(n int) {
	m.Called(n)
}

type MockTransactionManager struct{}

func (MockTransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
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
