package customers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/permission"
	"github.com/m04kA/TableBookingService/internal/service/timeline"
)

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error) {
	args := m.Called(ctx, customer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindActiveByContact(ctx context.Context, email, phone *string) (*domain.Customer, error) {
	args := m.Called(ctx, email, phone)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

func (m *MockCustomerRepository) SaveStats(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) SetBlacklist(ctx context.Context, id int64, blacklisted bool, reason *string) error {
	args := m.Called(ctx, id, blacklisted, reason)
	return args.Error(0)
}

func (m *MockCustomerRepository) MarkMerged(ctx context.Context, id, intoID int64) error {
	args := m.Called(ctx, id, intoID)
	return args.Error(0)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) CountByStatusForCustomer(ctx context.Context, customerID int64) (domain.StatusCounts, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.StatusCounts), args.Error(1)
}

func (m *MockBookingRepository) ReassignCustomer(ctx context.Context, from, to int64) (int64, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).(int64), args.Error(1)
}

type MockReassigner struct {
	mock.Mock
}

func (m *MockReassigner) ReassignCustomer(ctx context.Context, from, to int64) error {
	args := m.Called(ctx, from, to)
	return args.Error(0)
}

type MockTimelineRecorder struct {
	mock.Mock
}

func (m *MockTimelineRecorder) Record(ctx context.Context, entry timeline.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

type MockLoyaltyService struct {
	mock.Mock
}

func (m *MockLoyaltyService) AdjustTier(ctx context.Context, customerID int64) (domain.LoyaltyTier, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(domain.LoyaltyTier), args.Error(1)
}

type MockTransactionManager struct{}

func (MockTransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type MockLogger struct{}

func (MockLogger) Info(string, ...interface{})  {}
func (MockLogger) Warn(string, ...interface{})  {}
func (MockLogger) Error(string, ...interface{}) {}

var _ PermissionChecker = (*permission.Checker)(nil)
