package customers

import (
	"context"

	"github.com/m04kA/TableBookingService/internal/domain"
	"github.com/m04kA/TableBookingService/internal/service/permission"
	"github.com/m04kA/TableBookingService/internal/service/timeline"
)

// CustomerRepository интерфейс репозитория клиентов
type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	FindActiveByContact(ctx context.Context, email, phone *string) (*domain.Customer, error)
	SaveStats(ctx context.Context, customer *domain.Customer) error
	SetBlacklist(ctx context.Context, id int64, blacklisted bool, reason *string) error
	MarkMerged(ctx context.Context, id, intoID int64) error
}

// BookingRepository интерфейс репозитория бронирований (статистика и перенос при слиянии)
type BookingRepository interface {
	CountByStatusForCustomer(ctx context.Context, customerID int64) (domain.StatusCounts, error)
	ReassignCustomer(ctx context.Context, from, to int64) (int64, error)
}

// TimelineRepository перенос истории при слиянии
type TimelineRepository interface {
	ReassignCustomer(ctx context.Context, from, to int64) error
}

// WaitlistRepository перенос листа ожидания при слиянии
type WaitlistRepository interface {
	ReassignCustomer(ctx context.Context, from, to int64) error
}

// TimelineRecorder интерфейс записи истории клиента
type TimelineRecorder interface {
	Record(ctx context.Context, entry timeline.Entry) error
}

// LoyaltyService интерфейс пересчёта уровня лояльности
type LoyaltyService interface {
	AdjustTier(ctx context.Context, customerID int64) (domain.LoyaltyTier, error)
}

// PermissionChecker интерфейс проверки прав
type PermissionChecker interface {
	AssertAllowed(actor domain.Actor, resource permission.Resource, action permission.Action, branchID *int64) error
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
