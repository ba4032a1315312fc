package loyalty

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/timeline"
)

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) GetByCustomer(ctx context.Context, customerID int64) (*domain.LoyaltyAccount, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LoyaltyAccount), args.Error(1)
}

func (m *MockAccountRepository) CreateIfMissing(ctx context.Context, customerID int64) error {
	args := m.Called(ctx, customerID)
	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *domain.LoyaltyAccount) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) AddTransaction(ctx context.Context, tx *domain.LoyaltyTransaction) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockAccountRepository) ListTransactions(ctx context.Context, accountID int64, limit int) ([]*domain.LoyaltyTransaction, error) {
	args := m.Called(ctx, accountID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.LoyaltyTransaction), args.Error(1)
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

type MockTransactionManager struct{}

func (MockTransactionManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type MockLogger struct{}

func (MockLogger) Info(string, ...interface{})  {}
func (MockLogger) Warn(string, ...interface{})  {}
func (MockLogger) Error(string, ...interface{}) {}
