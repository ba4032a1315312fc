package bookings

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/TableBookingService/internal/domain"
	bookingRepo "github.com/m04kA/TableBookingService/internal/infra/storage/booking"
	"github.com/m04kA/TableBookingService/internal/service/timeline"
	"github.com/m04kA/TableBookingService/pkg/types"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) GetByCode(ctx context.Context, code string) (*domain.Booking, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) List(ctx context.Context, filter domain.BookingsFilter) (*domain.BookingsPage, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BookingsPage), args.Error(1)
}

func (m *MockBookingRepository) GetUpcoming(ctx context.Context, branchID int64, from time.Time, limit int) ([]*domain.Booking, error) {
	args := m.Called(ctx, branchID, from, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) TransitionStatus(ctx context.Context, id int64, change bookingRepo.StatusChange) error {
	args := m.Called(ctx, id, change)
	return args.Error(0)
}

func (m *MockBookingRepository) AddHistory(ctx context.Context, entry *domain.BookingHistory) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockBookingRepository) ListHistory(ctx context.Context, bookingID int64) ([]*domain.BookingHistory, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.BookingHistory), args.Error(1)
}

type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerService) UpdateStats(ctx context.Context, customerID int64) (*domain.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

type MockLoyaltyService struct {
	mock.Mock
}

func (m *MockLoyaltyService) AwardPoints(ctx context.Context, customerID int64, base int, bookingID *int64, reason string) (int, error) {
	args := m.Called(ctx, customerID, base, bookingID, reason)
	return args.Int(0), args.Error(1)
}

func (m *MockLoyaltyService) AdjustTier(ctx context.Context, customerID int64) (domain.LoyaltyTier, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(domain.LoyaltyTier), args.Error(1)
}

type MockTimelineRecorder struct {
	mock.Mock
}

func (m *MockTimelineRecorder) Record(ctx context.Context, entry timeline.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockAutomation struct {
	mock.Mock
}

func (m *MockAutomation) ScheduleReminders(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockAutomation) CancelReminders(bookingID int64) {
	m.Called(bookingID)
}

func (m *MockAutomation) PromoteWaitlist(ctx context.Context, branchID int64, date time.Time, t types.TimeString) (*domain.WaitlistEntry, error) {
	args := m.Called(ctx, branchID, date, t)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WaitlistEntry), args.Error(1)
}

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendEmail(ctx context.Context, to, subject, body string) {
	m.Called(ctx, to, subject, body)
}

type MockTransactionManager struct{}

func (MockTransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type MockLogger struct{}

func (MockLogger) Info(string, ...interface{})  {}
func (MockLogger) Warn(string, ...interface{})  {}
func (MockLogger) Error(string, ...interface{}) {}
