package automation

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/infra/events"
	"github.com/m04kA/TableBookingService/internal/infra/scheduler"
	"github.com/m04kA/TableBookingService/internal/service/availability"
	"github.com/m04kA/TableBookingService/internal/service/notifications"
	"github.com/m04kA/TableBookingService/internal/service/timeline"
	"github.com/m04kA/TableBookingService/pkg/types"
)

type MockCalendar struct {
	mock.Mock
}

func (m *MockCalendar) GetAvailableTables(ctx context.Context, branchID int64, date time.Time, t types.TimeString, partySize int) ([]*domain.Table, error) {
	args := m.Called(ctx, branchID, date, t, partySize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Table), args.Error(1)
}

func (m *MockCalendar) CountActiveTables(ctx context.Context, branchID int64) (int, error) {
	args := m.Called(ctx, branchID)
	return args.Int(0), args.Error(1)
}

type MockAvailabilityChecker struct {
	mock.Mock
}

func (m *MockAvailabilityChecker) CheckAvailability(ctx context.Context, q availability.Query) (bool, error) {
	args := m.Called(ctx, q)
	return args.Bool(0), args.Error(1)
}

type MockWaitlistRepository struct {
	mock.Mock
}

func (m *MockWaitlistRepository) Create(ctx context.Context, entry *domain.WaitlistEntry) (*domain.WaitlistEntry, error) {
	args := m.Called(ctx, entry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WaitlistEntry), args.Error(1)
}

func (m *MockWaitlistRepository) PromoteNext(ctx context.Context, branchID int64, date time.Time, at types.TimeString, now time.Time) (*domain.WaitlistEntry, error) {
	args := m.Called(ctx, branchID, date, at, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WaitlistEntry), args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
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

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(ctx context.Context, msg notifications.Message) (domain.Delivery, error) {
	args := m.Called(ctx, msg)
	return args.Get(0).(domain.Delivery), args.Error(1)
}

type scheduledCall struct {
	key   string
	runAt time.Time
	task  scheduler.Task
	tags  []string
}

// fakeScheduler запоминает таймеры без запуска
type fakeScheduler struct {
	scheduled []scheduledCall
	cancelled []string
}

func (f *fakeScheduler) ScheduleOnce(key string, runAt time.Time, task scheduler.Task, tags ...string) error {
	f.scheduled = append(f.scheduled, scheduledCall{key: key, runAt: runAt, task: task, tags: tags})
	return nil
}

func (f *fakeScheduler) CancelByTag(tag string) {
	f.cancelled = append(f.cancelled, tag)
}

type MockLogger struct{}

func (MockLogger) Info(string, ...interface{})  {}
func (MockLogger) Warn(string, ...interface{})  {}
func (MockLogger) Error(string, ...interface{}) {}

var _ EventPublisher = (*events.MemoryBus)(nil)
