package loyalty

import (
	"context"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/timeline"
)

// AccountRepository интерфейс репозитория счетов лояльности
type AccountRepository interface {
	GetByCustomer(ctx context.Context, customerID int64) (*domain.LoyaltyAccount, error)
	CreateIfMissing(ctx context.Context, customerID int64) error
	Update(ctx context.Context, account *domain.LoyaltyAccount) error
	AddTransaction(ctx context.Context, tx *domain.LoyaltyTransaction) error
	ListTransactions(ctx context.Context, accountID int64, limit int) ([]*domain.LoyaltyTransaction, error)
}

// CustomerRepository интерфейс чтения клиента
type CustomerRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// TimelineRecorder интерфейс записи истории клиента
type TimelineRecorder interface {
	Record(ctx context.Context, entry timeline.Entry) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
